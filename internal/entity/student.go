package entity

type Student struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StudentPatch carries the fields a partial update may change. Nil
// fields are left untouched.
type StudentPatch struct {
	Name *string `json:"name"`
}

func (p StudentPatch) Apply(s *Student) {
	if p.Name != nil {
		s.Name = *p.Name
	}
}
