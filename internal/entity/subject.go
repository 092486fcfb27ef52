package entity

type Subject struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SubjectPatch carries the fields a partial update may change. Nil
// fields are left untouched.
type SubjectPatch struct {
	Name *string `json:"name"`
}

func (p SubjectPatch) Apply(s *Subject) {
	if p.Name != nil {
		s.Name = *p.Name
	}
}
