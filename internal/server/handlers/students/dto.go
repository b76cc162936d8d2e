package students

// CreateRequest represents the request payload for creating a student.
type CreateRequest struct {
	Name    string   `json:"name"    validate:"required,min=1,max=100"`
	Reasons []string `json:"reasons"`
	Picture *string  `json:"picture" validate:"omitempty,max=255"`
}

// UpdateRequest represents the request payload for updating a student.
// Omitted and null fields are left unchanged; unknown fields are ignored.
type UpdateRequest struct {
	Name    *string   `json:"name,omitempty"    validate:"omitempty,min=1,max=100"`
	Reasons *[]string `json:"reasons,omitempty"`
	Picture *string   `json:"picture,omitempty" validate:"omitempty,max=255"`
}

// StudentResponse represents the response payload for a student.
type StudentResponse struct {
	ID      uint64   `json:"id"`
	Name    string   `json:"name"`
	Reasons []string `json:"reasons"`
	Picture *string  `json:"picture"`
}

// MessageResponse represents a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
