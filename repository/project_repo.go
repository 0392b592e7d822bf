package repository

import (
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"projectview/models"
)

// StatusCount is one row of the group-by-state aggregation.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ProjectRepository orchestrates the multi-entity transactional writes and
// the per-project upload directory. File writes and row writes cannot share
// one atomic unit, so a failed transaction removes the files written during
// the same call instead of leaving orphans behind.
type ProjectRepository struct {
	db    *gorm.DB
	files *FileStore
	log   *logrus.Logger
}

func NewProjectRepository(db *gorm.DB, files *FileStore, log *logrus.Logger) *ProjectRepository {
	if log == nil {
		log = logrus.New()
	}
	return &ProjectRepository{db: db, files: files, log: log}
}

// CreateProject stores the accepted uploads, then inserts the project, its
// sub-project and its membership rows in one transaction. Any error rolls
// the rows back and undoes the uploads of this call.
func (r *ProjectRepository) CreateProject(project *models.Project, files []*multipart.FileHeader, subProject *models.SubProject, projectMembers []models.ProjectMember) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}

	var written []string
	if len(files) > 0 {
		names, paths, err := r.files.Store(project.ID.String(), files)
		written = paths
		if err != nil {
			r.files.Remove(written)
			return err
		}
		project.Files = strings.Join(names, ",")
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		subProject.ProjectID = project.ID
		if err := tx.Create(subProject).Error; err != nil {
			return err
		}

		for i := range projectMembers {
			projectMembers[i].ProjectID = project.ID
			if err := tx.Create(&projectMembers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.log.WithError(err).Error("Project create transaction rolled back")
		r.files.Remove(written)
		return err
	}
	return nil
}

// UpdateProject replaces the project row and, when new files are supplied,
// the entire contents of the project's upload directory.
func (r *ProjectRepository) UpdateProject(project *models.Project, files []*multipart.FileHeader) error {
	var written []string
	if len(files) > 0 {
		if err := r.files.Clear(project.ID.String()); err != nil {
			return err
		}
		names, paths, err := r.files.Store(project.ID.String(), files)
		written = paths
		if err != nil {
			r.files.Remove(written)
			return err
		}
		project.Files = strings.Join(names, ",")
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(project).Error
	})
	if err != nil {
		r.log.WithError(err).Error("Project update transaction rolled back")
		r.files.Remove(written)
		return err
	}
	return nil
}

// DeleteProject removes the row (the database cascades sub-projects and
// memberships) and, only after the row is gone, the upload directory.
func (r *ProjectRepository) DeleteProject(id uuid.UUID) bool {
	res := r.db.Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		r.log.WithError(res.Error).Error("Failed to delete project")
		return false
	}
	if res.RowsAffected == 0 {
		return false
	}

	if err := r.files.RemoveAll(id.String()); err != nil {
		r.log.WithError(err).WithField("project_id", id).Warn("Failed to remove project upload directory")
	}
	return true
}

// Search returns projects whose name or state contains the query,
// case-insensitively, with memberships and sub-projects attached. An empty
// query lists everything.
func (r *ProjectRepository) Search(query string) ([]models.Project, error) {
	tx := r.db.
		Preload("ProjectMembers.Member").
		Preload("ProjectMembers.Role").
		Preload("SubProjects")

	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(state) LIKE ?", pattern, pattern)
	}

	var projects []models.Project
	if err := tx.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, bool) {
	var project models.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, false
	}
	return &project, true
}

// GetDetails loads a project with its memberships (member and role rows
// attached) and sub-projects.
func (r *ProjectRepository) GetDetails(id uuid.UUID) (*models.Project, bool) {
	var project models.Project
	err := r.db.
		Preload("ProjectMembers.Member").
		Preload("ProjectMembers.Role").
		Preload("SubProjects").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, false
	}
	return &project, true
}

func (r *ProjectRepository) Exists(id uuid.UUID) bool {
	var count int64
	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

// StatusCounts aggregates projects by their state label.
func (r *ProjectRepository) StatusCounts() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Model(&models.Project{}).
		Select("state AS status, COUNT(*) AS count").
		Group("state").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
