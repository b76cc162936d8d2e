package instructors

import "time"

type InstructorDraft struct {
	Name   string
	Skills []string
	Bio    *string
}

// InstructorUpdate holds the fields to overwrite. Nil fields are left unchanged.
type InstructorUpdate struct {
	Name   *string
	Skills *[]string
	Bio    *string
}

type Instructor struct {
	InstructorDraft

	ID        uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}
