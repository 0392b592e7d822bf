package dto

import (
	"time"

	"github.com/google/uuid"

	"projectview/models"
)

type SubProjectDTO struct {
	ID             uuid.UUID `json:"id"`
	Notes          string    `json:"notes"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	ProjectVersion string    `json:"project_version"`
	ProjectID      uuid.UUID `json:"project_id"`
}

type SubProjectCreateRequest struct {
	Notes          string    `json:"notes"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	ProjectVersion string    `json:"project_version"`
	ProjectID      uuid.UUID `json:"project_id" validate:"required"`
}

// SubProjectUpdateRequest carries the replaceable fields only; id and
// project_id are preserved across updates.
type SubProjectUpdateRequest struct {
	Notes          string    `json:"notes"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	ProjectVersion string    `json:"project_version"`
}

func ToSubProjectDTO(sp models.SubProject) SubProjectDTO {
	return SubProjectDTO{
		ID:             sp.ID,
		Notes:          sp.Notes,
		StartDate:      sp.StartDate,
		EndDate:        sp.EndDate,
		ProjectVersion: sp.ProjectVersion,
		ProjectID:      sp.ProjectID,
	}
}

func ToSubProjectDTOs(subProjects []models.SubProject) []SubProjectDTO {
	out := make([]SubProjectDTO, 0, len(subProjects))
	for _, sp := range subProjects {
		out = append(out, ToSubProjectDTO(sp))
	}
	return out
}

func FromSubProjectCreateRequest(req SubProjectCreateRequest) models.SubProject {
	return models.SubProject{
		Notes:          req.Notes,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		ProjectVersion: req.ProjectVersion,
		ProjectID:      req.ProjectID,
	}
}
