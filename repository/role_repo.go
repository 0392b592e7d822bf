package repository

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"projectview/models"
)

// RoleRepository is a thin CRUD facade over the roles table.
type RoleRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewRoleRepository(db *gorm.DB, log *logrus.Logger) *RoleRepository {
	if log == nil {
		log = logrus.New()
	}
	return &RoleRepository{db: db, log: log}
}

func (r *RoleRepository) List() ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *RoleRepository) GetByID(id uuid.UUID) (*models.Role, bool) {
	var role models.Role
	if err := r.db.First(&role, "id = ?", id).Error; err != nil {
		return nil, false
	}
	return &role, true
}

func (r *RoleRepository) Exists(id uuid.UUID) bool {
	var count int64
	if err := r.db.Model(&models.Role{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func (r *RoleRepository) Create(role *models.Role) bool {
	if err := r.db.Create(role).Error; err != nil {
		r.log.WithError(err).Error("Failed to create role")
		return false
	}
	return true
}

func (r *RoleRepository) Update(role *models.Role) bool {
	if err := r.db.Save(role).Error; err != nil {
		r.log.WithError(err).Error("Failed to update role")
		return false
	}
	return true
}

func (r *RoleRepository) Delete(id uuid.UUID) bool {
	res := r.db.Delete(&models.Role{}, "id = ?", id)
	if res.Error != nil {
		r.log.WithError(res.Error).Error("Failed to delete role")
		return false
	}
	return res.RowsAffected > 0
}
