package storage

import (
	"time"
)

// BaseEntity provides common fields for all storage entities.
type BaseEntity struct {
	ID        uint64    `json:"id"         gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Base gives stores access to the embedded identity fields.
func (e *BaseEntity) Base() *BaseEntity {
	return e
}
