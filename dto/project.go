package dto

import (
	"time"

	"github.com/google/uuid"

	"projectview/models"
)

type ProjectDTO struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Notes          string             `json:"notes"`
	Files          string             `json:"files"`
	State          string             `json:"state"`
	ProjectMembers []ProjectMemberDTO `json:"project_members"`
	SubProjects    []SubProjectDTO    `json:"sub_projects"`
}

type ProjectCreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Notes string `json:"notes"`
	State string `json:"state" validate:"required"`
}

type ProjectUpdateRequest struct {
	Name  string `json:"name" validate:"required"`
	Notes string `json:"notes"`
	State string `json:"state" validate:"required"`
}

// ProjectSubProjectInput is the sub-project part of the multipart create
// form; the project id is filled in by the transactional create itself.
type ProjectSubProjectInput struct {
	Notes          string    `json:"notes"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	ProjectVersion string    `json:"project_version"`
}

// ProjectMemberInput is one membership entry of the multipart create form.
type ProjectMemberInput struct {
	MemberID uuid.UUID `json:"member_id"`
	RoleID   uuid.UUID `json:"role_id"`
}

type ProjectStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func ToProjectDTO(p models.Project) ProjectDTO {
	return ProjectDTO{
		ID:             p.ID,
		Name:           p.Name,
		Notes:          p.Notes,
		Files:          p.Files,
		State:          p.State,
		ProjectMembers: ToProjectMemberDTOs(p.ProjectMembers),
		SubProjects:    ToSubProjectDTOs(p.SubProjects),
	}
}

func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	out := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToProjectDTO(p))
	}
	return out
}

func FromProjectCreateRequest(req ProjectCreateRequest) models.Project {
	return models.Project{
		Name:  req.Name,
		Notes: req.Notes,
		State: req.State,
	}
}

func FromProjectSubProjectInput(in ProjectSubProjectInput) models.SubProject {
	return models.SubProject{
		Notes:          in.Notes,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		ProjectVersion: in.ProjectVersion,
	}
}

func FromProjectMemberInputs(inputs []ProjectMemberInput) []models.ProjectMember {
	out := make([]models.ProjectMember, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, models.ProjectMember{
			MemberID: in.MemberID,
			RoleID:   in.RoleID,
		})
	}
	return out
}
