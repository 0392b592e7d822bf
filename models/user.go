package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account that can authenticate against the API
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName string    `json:"full_name"`
	UserName string    `gorm:"uniqueIndex;not null" json:"user_name"`
	Role     string    `gorm:"not null" json:"role"`

	// Bcrypt hash, never the plaintext and never serialized
	Password string `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
