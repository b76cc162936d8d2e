package workshops

import "time"

type WorkshopDraft struct {
	Subject     string
	Date        *time.Time
	Instructors []string
	Students    []string
	Description *string
}

// WorkshopUpdate holds the fields to overwrite. Nil fields are left unchanged.
type WorkshopUpdate struct {
	Subject     *string
	Date        *time.Time
	Instructors *[]string
	Students    *[]string
	Description *string
}

// Workshop references instructors and students by name only.
type Workshop struct {
	WorkshopDraft

	ID        uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}
