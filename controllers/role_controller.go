package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"projectview/dto"
	"projectview/models"
	"projectview/repository"
	"projectview/utils"
)

type RoleController struct {
	repo   *repository.RoleRepository
	Logger *log.Logger
}

func NewRoleController(repo *repository.RoleRepository, logger *log.Logger) *RoleController {
	return &RoleController{repo: repo, Logger: logger}
}

func (rc *RoleController) GetRoles(c *fiber.Ctx) error {
	roles, err := rc.repo.List()
	if err != nil {
		rc.Logger.Printf("Failed to list roles: %v", err)
		return utils.Failure(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, dto.ToRoleDTOs(roles))
}

func (rc *RoleController) GetRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid role id")
	}

	role, ok := rc.repo.GetByID(id)
	if !ok {
		return utils.Failure(c, fiber.StatusNotFound, "Role not found")
	}
	return utils.Success(c, fiber.StatusOK, dto.ToRoleDTO(*role))
}

func (rc *RoleController) CreateRole(c *fiber.Ctx) error {
	var req dto.RoleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, err.Error())
	}

	role := models.Role{Name: req.Name}
	if !rc.repo.Create(&role) {
		return utils.Failure(c, fiber.StatusInternalServerError, "Failed to create role.")
	}

	return utils.Created(c, "/API/Role/"+role.ID.String(), dto.ToRoleDTO(role))
}

func (rc *RoleController) UpdateRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid role id")
	}
	if _, ok := rc.repo.GetByID(id); !ok {
		return utils.Failure(c, fiber.StatusNotFound, "Role not found")
	}

	var req dto.RoleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, err.Error())
	}

	role := models.Role{ID: id, Name: req.Name}
	if !rc.repo.Update(&role) {
		return utils.Failure(c, fiber.StatusInternalServerError, "Failed to update role.")
	}
	return utils.NoContent(c)
}

func (rc *RoleController) DeleteRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid role id")
	}
	if !rc.repo.Delete(id) {
		return utils.Failure(c, fiber.StatusNotFound, "Role not found")
	}
	return utils.NoContent(c)
}
