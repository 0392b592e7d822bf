package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is the top-level tracked entity. Files holds the comma-joined
// generated names of the uploads stored under the project's directory.
type Project struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"not null" json:"name"`
	Notes string    `json:"notes"`
	Files string    `json:"files"`
	State string    `json:"state"`

	// Relations, children removed by the database when the project row goes
	SubProjects    []SubProject    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"sub_projects,omitempty"`
	ProjectMembers []ProjectMember `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project_members,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// SubProject is a phase or version of a project, cannot exist without one
type SubProject struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Notes          string    `json:"notes"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	ProjectVersion string    `json:"project_version"`
	ProjectID      uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`

	Project *Project `json:"-"`
}

func (sp *SubProject) BeforeCreate(tx *gorm.DB) error {
	if sp.ID == uuid.Nil {
		sp.ID = uuid.New()
	}
	return nil
}

// ProjectMember links a member to a project with a role
type ProjectMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID  uuid.UUID `gorm:"type:uuid;not null;index" json:"member_id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	RoleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"role_id"`

	Member  *Member  `json:"member,omitempty"`
	Project *Project `json:"-"`
	Role    *Role    `json:"role,omitempty"`
}

func (pm *ProjectMember) BeforeCreate(tx *gorm.DB) error {
	if pm.ID == uuid.Nil {
		pm.ID = uuid.New()
	}
	return nil
}
