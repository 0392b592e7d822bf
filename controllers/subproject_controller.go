package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"projectview/dto"
	"projectview/repository"
	"projectview/utils"
)

type SubProjectController struct {
	repo     *repository.SubProjectRepository
	projects *repository.ProjectRepository
	Logger   *log.Logger
}

func NewSubProjectController(repo *repository.SubProjectRepository, projects *repository.ProjectRepository, logger *log.Logger) *SubProjectController {
	return &SubProjectController{repo: repo, projects: projects, Logger: logger}
}

func (sc *SubProjectController) GetSubProjects(c *fiber.Ctx) error {
	subProjects, err := sc.repo.List()
	if err != nil {
		sc.Logger.Printf("Failed to list sub-projects: %v", err)
		return utils.Failure(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, dto.ToSubProjectDTOs(subProjects))
}

func (sc *SubProjectController) GetSubProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid sub-project id")
	}

	subProject, ok := sc.repo.GetByID(id)
	if !ok {
		return utils.Failure(c, fiber.StatusNotFound, "Sub-project not found")
	}
	return utils.Success(c, fiber.StatusOK, dto.ToSubProjectDTO(*subProject))
}

func (sc *SubProjectController) CreateSubProject(c *fiber.Ctx) error {
	var req dto.SubProjectCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, err.Error())
	}

	// A sub-project cannot exist without its owning project
	if !sc.projects.Exists(req.ProjectID) {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid project ID.")
	}

	subProject := dto.FromSubProjectCreateRequest(req)
	if !sc.repo.Create(&subProject) {
		return utils.Failure(c, fiber.StatusInternalServerError, "Failed to create sub-project.")
	}

	return utils.Created(c, "/API/SubProject/"+subProject.ID.String(), dto.ToSubProjectDTO(subProject))
}

func (sc *SubProjectController) UpdateSubProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid sub-project id")
	}

	existing, ok := sc.repo.GetByID(id)
	if !ok {
		return utils.Failure(c, fiber.StatusNotFound, "Sub-project not found")
	}

	var req dto.SubProjectUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, err.Error())
	}

	existing.Notes = req.Notes
	existing.StartDate = req.StartDate
	existing.EndDate = req.EndDate
	existing.ProjectVersion = req.ProjectVersion

	if !sc.repo.Update(existing) {
		return utils.Failure(c, fiber.StatusInternalServerError, "Failed to update sub-project.")
	}
	return utils.NoContent(c)
}

func (sc *SubProjectController) DeleteSubProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid sub-project id")
	}
	if !sc.repo.Delete(id) {
		return utils.Failure(c, fiber.StatusNotFound, "Sub-project not found")
	}
	return utils.NoContent(c)
}
