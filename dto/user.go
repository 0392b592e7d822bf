package dto

import (
	"github.com/google/uuid"

	"projectview/models"
)

type UserDTO struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	UserName string    `json:"user_name"`
	Role     string    `json:"role"`
}

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  string `json:"user"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// UserUpdateRequest replaces profile fields unconditionally; the password
// is re-hashed only when a non-empty value is supplied.
type UserUpdateRequest struct {
	UserName string `json:"user_name" validate:"required"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func ToUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		FullName: u.FullName,
		UserName: u.UserName,
		Role:     u.Role,
	}
}

func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}
