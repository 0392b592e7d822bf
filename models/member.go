package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member represents a person that can be assigned to projects
type Member struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"not null" json:"name"`

	// Relations
	ProjectMembers []ProjectMember `gorm:"foreignKey:MemberID" json:"project_members,omitempty"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
