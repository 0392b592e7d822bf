package dto

import (
	"github.com/google/uuid"

	"projectview/models"
)

type ProjectMemberDTO struct {
	ID        uuid.UUID  `json:"id"`
	ProjectID uuid.UUID  `json:"project_id"`
	RoleID    uuid.UUID  `json:"role_id"`
	MemberID  uuid.UUID  `json:"member_id"`
	Member    *MemberDTO `json:"member,omitempty"`
	Role      *RoleDTO   `json:"role,omitempty"`
}

type ProjectMemberCreateRequest struct {
	MemberID  uuid.UUID `json:"member_id" validate:"required"`
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	RoleID    uuid.UUID `json:"role_id" validate:"required"`
}

// ProjectMemberUpdateRequest replaces member and role only; the owning
// project never changes through an update.
type ProjectMemberUpdateRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	RoleID   uuid.UUID `json:"role_id" validate:"required"`
}

func ToProjectMemberDTO(pm models.ProjectMember) ProjectMemberDTO {
	out := ProjectMemberDTO{
		ID:        pm.ID,
		ProjectID: pm.ProjectID,
		RoleID:    pm.RoleID,
		MemberID:  pm.MemberID,
	}
	if pm.Member != nil {
		member := ToMemberDTO(*pm.Member)
		out.Member = &member
	}
	if pm.Role != nil {
		role := ToRoleDTO(*pm.Role)
		out.Role = &role
	}
	return out
}

func ToProjectMemberDTOs(projectMembers []models.ProjectMember) []ProjectMemberDTO {
	out := make([]ProjectMemberDTO, 0, len(projectMembers))
	for _, pm := range projectMembers {
		out = append(out, ToProjectMemberDTO(pm))
	}
	return out
}
