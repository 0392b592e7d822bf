package dto

import (
	"github.com/google/uuid"

	"projectview/models"
)

type MemberDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type MemberCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

type MemberUpdateRequest struct {
	Name string `json:"name" validate:"required"`
}

func ToMemberDTO(m models.Member) MemberDTO {
	return MemberDTO{ID: m.ID, Name: m.Name}
}

func ToMemberDTOs(members []models.Member) []MemberDTO {
	out := make([]MemberDTO, 0, len(members))
	for _, m := range members {
		out = append(out, ToMemberDTO(m))
	}
	return out
}
