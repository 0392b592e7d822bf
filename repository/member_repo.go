package repository

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"projectview/models"
)

// MemberRepository is a thin CRUD facade over the members table. Simple
// writes swallow storage errors into a boolean so handlers only branch on
// success, as the API contract requires.
type MemberRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewMemberRepository(db *gorm.DB, log *logrus.Logger) *MemberRepository {
	if log == nil {
		log = logrus.New()
	}
	return &MemberRepository{db: db, log: log}
}

func (r *MemberRepository) List() ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, bool) {
	var member models.Member
	if err := r.db.First(&member, "id = ?", id).Error; err != nil {
		return nil, false
	}
	return &member, true
}

func (r *MemberRepository) Exists(id uuid.UUID) bool {
	var count int64
	if err := r.db.Model(&models.Member{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func (r *MemberRepository) Create(member *models.Member) bool {
	if err := r.db.Create(member).Error; err != nil {
		r.log.WithError(err).Error("Failed to create member")
		return false
	}
	return true
}

func (r *MemberRepository) Update(member *models.Member) bool {
	if err := r.db.Save(member).Error; err != nil {
		r.log.WithError(err).Error("Failed to update member")
		return false
	}
	return true
}

func (r *MemberRepository) Delete(id uuid.UUID) bool {
	res := r.db.Delete(&models.Member{}, "id = ?", id)
	if res.Error != nil {
		r.log.WithError(res.Error).Error("Failed to delete member")
		return false
	}
	return res.RowsAffected > 0
}
