package auth

import (
	"github.com/codebar/admin/internal/storage"
)

type userModel struct {
	storage.BaseEntity

	Username     string `json:"username"      gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string `json:"password_hash" gorm:"size:255;not null"`
	Role         string `json:"role"          gorm:"size:50"`
}

func newUserModel(username, passwordHash, role string) *userModel {
	return &userModel{
		BaseEntity:   storage.BaseEntity{},
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
}

func (userModel) TableName() string {
	return usersCollection.Name
}

// UniqueKey implements storage.Entity.
func (u *userModel) UniqueKey() string {
	return u.Username
}

func (u *userModel) toDomain() *User {
	if u == nil {
		return nil
	}

	return &User{
		ID:           u.ID,
		Username:     u.Username,
		Role:         u.Role,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (u *userModel) update(user *User) {
	u.Username = user.Username
	u.Role = user.Role
	u.PasswordHash = user.PasswordHash
}
