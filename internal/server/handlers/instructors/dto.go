package instructors

// CreateRequest represents the request payload for creating an instructor.
type CreateRequest struct {
	Name   string   `json:"name"   validate:"required,min=1,max=100"`
	Skills []string `json:"skills"`
	Bio    *string  `json:"bio"    validate:"omitempty,max=255"`
}

// UpdateRequest represents the request payload for updating an instructor.
type UpdateRequest struct {
	Name   *string   `json:"name,omitempty"   validate:"omitempty,min=1,max=100"`
	Skills *[]string `json:"skills,omitempty"`
	Bio    *string   `json:"bio,omitempty"    validate:"omitempty,max=255"`
}

// InstructorResponse represents the response payload for an instructor.
type InstructorResponse struct {
	ID     uint64   `json:"id"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
	Bio    *string  `json:"bio"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
