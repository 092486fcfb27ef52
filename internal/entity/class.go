package entity

type Class struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SubjectID int    `json:"subject_id"`
}

// ClassPatch carries the fields a partial update may change. Nil
// fields are left untouched.
type ClassPatch struct {
	Name      *string `json:"name"`
	SubjectID *int    `json:"subject_id"`
}

func (p ClassPatch) Apply(c *Class) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.SubjectID != nil {
		c.SubjectID = *p.SubjectID
	}
}
