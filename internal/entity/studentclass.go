package entity

// StudentClass is the many-to-many join between students and classes.
type StudentClass struct {
	ID        int `json:"id"`
	StudentID int `json:"student_id"`
	ClassID   int `json:"class_id"`
}

// StudentClassPatch carries the fields a partial update may change.
// Nil fields are left untouched.
type StudentClassPatch struct {
	StudentID *int `json:"student_id"`
	ClassID   *int `json:"class_id"`
}

func (p StudentClassPatch) Apply(sc *StudentClass) {
	if p.StudentID != nil {
		sc.StudentID = *p.StudentID
	}
	if p.ClassID != nil {
		sc.ClassID = *p.ClassID
	}
}
