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

type MemberController struct {
	repo   *repository.MemberRepository
	Logger *log.Logger
}

func NewMemberController(repo *repository.MemberRepository, logger *log.Logger) *MemberController {
	return &MemberController{repo: repo, Logger: logger}
}

func (mc *MemberController) GetMembers(c *fiber.Ctx) error {
	members, err := mc.repo.List()
	if err != nil {
		mc.Logger.Printf("Failed to list members: %v", err)
		return utils.Failure(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, dto.ToMemberDTOs(members))
}

func (mc *MemberController) GetMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid member id")
	}

	member, ok := mc.repo.GetByID(id)
	if !ok {
		return utils.Failure(c, fiber.StatusNotFound, "Member not found")
	}
	return utils.Success(c, fiber.StatusOK, dto.ToMemberDTO(*member))
}

func (mc *MemberController) CreateMember(c *fiber.Ctx) error {
	var req dto.MemberCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, err.Error())
	}

	member := models.Member{Name: req.Name}
	if !mc.repo.Create(&member) {
		return utils.Failure(c, fiber.StatusInternalServerError, "Failed to create member.")
	}

	return utils.Created(c, "/API/Member/"+member.ID.String(), dto.ToMemberDTO(member))
}

func (mc *MemberController) UpdateMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid member id")
	}
	if _, ok := mc.repo.GetByID(id); !ok {
		return utils.Failure(c, fiber.StatusNotFound, "Member not found")
	}

	var req dto.MemberUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, err.Error())
	}

	member := models.Member{ID: id, Name: req.Name}
	if !mc.repo.Update(&member) {
		return utils.Failure(c, fiber.StatusInternalServerError, "Failed to update member.")
	}
	return utils.NoContent(c)
}

func (mc *MemberController) DeleteMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid member id")
	}
	if !mc.repo.Delete(id) {
		return utils.Failure(c, fiber.StatusNotFound, "Member not found")
	}
	return utils.NoContent(c)
}
