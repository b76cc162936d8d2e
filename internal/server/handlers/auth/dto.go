package auth

// RegisterRequest represents the request payload for registering a user.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=72"`
	Role     string `json:"role"     validate:"max=50"`
}

// LoginRequest represents the request payload for logging in.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateMeRequest represents the request payload for updating the current user.
// Omitted and null fields are left unchanged.
type UpdateMeRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1,max=72"`
	Role     *string `json:"role,omitempty"     validate:"omitempty,max=50"`
}

// TokenResponse represents an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse represents a user without credentials.
type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// MessageResponse represents a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
