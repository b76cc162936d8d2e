package students

import "time"

type StudentDraft struct {
	Name    string
	Reasons []string
	Picture *string
}

// StudentUpdate holds the fields to overwrite. Nil fields are left unchanged.
type StudentUpdate struct {
	Name    *string
	Reasons *[]string
	Picture *string
}

type Student struct {
	StudentDraft

	ID        uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}
