package auth

import "time"

const TokenTypeBearer = "bearer"

type UserDraft struct {
	Username string
	Password string
	Role     string
}

// UserUpdate holds the fields to overwrite. Nil fields are left unchanged.
type UserUpdate struct {
	Username *string
	Password *string
	Role     *string
}

type User struct {
	ID           uint64
	Username     string
	Role         string
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Token struct {
	AccessToken string
	TokenType   string
}
