package dto

import (
	"github.com/google/uuid"

	"projectview/models"
)

type RoleDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type RoleCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

type RoleUpdateRequest struct {
	Name string `json:"name" validate:"required"`
}

func ToRoleDTO(r models.Role) RoleDTO {
	return RoleDTO{ID: r.ID, Name: r.Name}
}

func ToRoleDTOs(roles []models.Role) []RoleDTO {
	out := make([]RoleDTO, 0, len(roles))
	for _, r := range roles {
		out = append(out, ToRoleDTO(r))
	}
	return out
}
