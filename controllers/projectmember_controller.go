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

type ProjectMemberController struct {
	repo     *repository.ProjectMemberRepository
	members  *repository.MemberRepository
	roles    *repository.RoleRepository
	projects *repository.ProjectRepository
	Logger   *log.Logger
}

func NewProjectMemberController(
	repo *repository.ProjectMemberRepository,
	members *repository.MemberRepository,
	roles *repository.RoleRepository,
	projects *repository.ProjectRepository,
	logger *log.Logger,
) *ProjectMemberController {
	return &ProjectMemberController{
		repo:     repo,
		members:  members,
		roles:    roles,
		projects: projects,
		Logger:   logger,
	}
}

func (pc *ProjectMemberController) GetProjectMembers(c *fiber.Ctx) error {
	projectMembers, err := pc.repo.List()
	if err != nil {
		pc.Logger.Printf("Failed to list project members: %v", err)
		return utils.Failure(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, dto.ToProjectMemberDTOs(projectMembers))
}

func (pc *ProjectMemberController) GetProjectMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid project member id")
	}

	projectMember, ok := pc.repo.GetByID(id)
	if !ok {
		return utils.Failure(c, fiber.StatusNotFound, "Project member not found")
	}
	return utils.Success(c, fiber.StatusOK, dto.ToProjectMemberDTO(*projectMember))
}

func (pc *ProjectMemberController) CreateProjectMember(c *fiber.Ctx) error {
	var req dto.ProjectMemberCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, err.Error())
	}

	// All three foreign keys must reference existing rows
	if !pc.members.Exists(req.MemberID) || !pc.projects.Exists(req.ProjectID) || !pc.roles.Exists(req.RoleID) {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid member, project, or role ID.")
	}

	projectMember := models.ProjectMember{
		MemberID:  req.MemberID,
		ProjectID: req.ProjectID,
		RoleID:    req.RoleID,
	}
	if !pc.repo.Create(&projectMember) {
		return utils.Failure(c, fiber.StatusInternalServerError, "Failed to create project member.")
	}

	return utils.Created(c, "/API/ProjectMember/"+projectMember.ID.String(), dto.ToProjectMemberDTO(projectMember))
}

func (pc *ProjectMemberController) UpdateProjectMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid project member id")
	}

	existing, ok := pc.repo.GetByID(id)
	if !ok {
		return utils.Failure(c, fiber.StatusNotFound, "Project member not found")
	}

	var req dto.ProjectMemberUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, err.Error())
	}

	if !pc.members.Exists(req.MemberID) || !pc.roles.Exists(req.RoleID) {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid member, project, or role ID.")
	}

	existing.MemberID = req.MemberID
	existing.RoleID = req.RoleID
	if !pc.repo.Update(existing) {
		return utils.Failure(c, fiber.StatusInternalServerError, "Failed to update project member.")
	}
	return utils.NoContent(c)
}

func (pc *ProjectMemberController) DeleteProjectMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid project member id")
	}
	if !pc.repo.Delete(id) {
		return utils.Failure(c, fiber.StatusNotFound, "Project member not found")
	}
	return utils.NoContent(c)
}
