package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the function a member fulfills inside a project (e.g. developer, tester)
type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"not null" json:"name"`

	// Relations
	ProjectMembers []ProjectMember `gorm:"foreignKey:RoleID" json:"project_members,omitempty"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
