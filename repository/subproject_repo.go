package repository

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"projectview/models"
)

// SubProjectRepository is a thin CRUD facade over the sub_projects table.
type SubProjectRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewSubProjectRepository(db *gorm.DB, log *logrus.Logger) *SubProjectRepository {
	if log == nil {
		log = logrus.New()
	}
	return &SubProjectRepository{db: db, log: log}
}

func (r *SubProjectRepository) List() ([]models.SubProject, error) {
	var subProjects []models.SubProject
	if err := r.db.Find(&subProjects).Error; err != nil {
		return nil, err
	}
	return subProjects, nil
}

func (r *SubProjectRepository) GetByID(id uuid.UUID) (*models.SubProject, bool) {
	var subProject models.SubProject
	if err := r.db.First(&subProject, "id = ?", id).Error; err != nil {
		return nil, false
	}
	return &subProject, true
}

func (r *SubProjectRepository) Exists(id uuid.UUID) bool {
	var count int64
	if err := r.db.Model(&models.SubProject{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func (r *SubProjectRepository) Create(subProject *models.SubProject) bool {
	if err := r.db.Create(subProject).Error; err != nil {
		r.log.WithError(err).Error("Failed to create sub-project")
		return false
	}
	return true
}

// Update replaces the mutable fields of an existing sub-project. The id and
// owning project id are preserved no matter what the caller passes in.
func (r *SubProjectRepository) Update(subProject *models.SubProject) bool {
	res := r.db.Model(&models.SubProject{}).
		Where("id = ?", subProject.ID).
		Select("notes", "start_date", "end_date", "project_version").
		Updates(map[string]interface{}{
			"notes":           subProject.Notes,
			"start_date":      subProject.StartDate,
			"end_date":        subProject.EndDate,
			"project_version": subProject.ProjectVersion,
		})
	if res.Error != nil {
		r.log.WithError(res.Error).Error("Failed to update sub-project")
		return false
	}
	return res.RowsAffected > 0
}

func (r *SubProjectRepository) Delete(id uuid.UUID) bool {
	res := r.db.Delete(&models.SubProject{}, "id = ?", id)
	if res.Error != nil {
		r.log.WithError(res.Error).Error("Failed to delete sub-project")
		return false
	}
	return res.RowsAffected > 0
}
