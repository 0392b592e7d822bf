package repository

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"projectview/models"
)

// ProjectMemberRepository manages the member-project-role join rows.
type ProjectMemberRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewProjectMemberRepository(db *gorm.DB, log *logrus.Logger) *ProjectMemberRepository {
	if log == nil {
		log = logrus.New()
	}
	return &ProjectMemberRepository{db: db, log: log}
}

func (r *ProjectMemberRepository) List() ([]models.ProjectMember, error) {
	var projectMembers []models.ProjectMember
	if err := r.db.Preload("Member").Preload("Role").Find(&projectMembers).Error; err != nil {
		return nil, err
	}
	return projectMembers, nil
}

func (r *ProjectMemberRepository) GetByID(id uuid.UUID) (*models.ProjectMember, bool) {
	var projectMember models.ProjectMember
	if err := r.db.First(&projectMember, "id = ?", id).Error; err != nil {
		return nil, false
	}
	return &projectMember, true
}

func (r *ProjectMemberRepository) Exists(id uuid.UUID) bool {
	var count int64
	if err := r.db.Model(&models.ProjectMember{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func (r *ProjectMemberRepository) Create(projectMember *models.ProjectMember) bool {
	if err := r.db.Create(projectMember).Error; err != nil {
		r.log.WithError(err).Error("Failed to create project member")
		return false
	}
	return true
}

// Update replaces member and role of an existing link; the owning project
// stays untouched.
func (r *ProjectMemberRepository) Update(projectMember *models.ProjectMember) bool {
	res := r.db.Model(&models.ProjectMember{}).
		Where("id = ?", projectMember.ID).
		Updates(map[string]interface{}{
			"member_id": projectMember.MemberID,
			"role_id":   projectMember.RoleID,
		})
	if res.Error != nil {
		r.log.WithError(res.Error).Error("Failed to update project member")
		return false
	}
	return res.RowsAffected > 0
}

func (r *ProjectMemberRepository) Delete(id uuid.UUID) bool {
	res := r.db.Delete(&models.ProjectMember{}, "id = ?", id)
	if res.Error != nil {
		r.log.WithError(res.Error).Error("Failed to delete project member")
		return false
	}
	return res.RowsAffected > 0
}
