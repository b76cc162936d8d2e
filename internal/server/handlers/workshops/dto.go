package workshops

import "time"

// CreateRequest represents the request payload for creating a workshop.
type CreateRequest struct {
	Subject     string     `json:"subject"     validate:"required,min=1,max=100"`
	Date        *time.Time `json:"date"`
	Instructors []string   `json:"instructors"`
	Students    []string   `json:"students"`
	Description *string    `json:"description" validate:"omitempty,max=255"`
}

// UpdateRequest represents the request payload for updating a workshop.
type UpdateRequest struct {
	Subject     *string    `json:"subject,omitempty"     validate:"omitempty,min=1,max=100"`
	Date        *time.Time `json:"date,omitempty"`
	Instructors *[]string  `json:"instructors,omitempty"`
	Students    *[]string  `json:"students,omitempty"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=255"`
}

// WorkshopResponse represents the response payload for a workshop.
type WorkshopResponse struct {
	ID          uint64     `json:"id"`
	Subject     string     `json:"subject"`
	Date        *time.Time `json:"date"`
	Instructors []string   `json:"instructors"`
	Students    []string   `json:"students"`
	Description *string    `json:"description"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
