package controller

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"projectview/dto"
	"projectview/repository"
	"projectview/utils"
)

type ProjectController struct {
	repo   *repository.ProjectRepository
	files  *repository.FileStore
	Logger *log.Logger
}

func NewProjectController(repo *repository.ProjectRepository, files *repository.FileStore, logger *log.Logger) *ProjectController {
	return &ProjectController{repo: repo, files: files, Logger: logger}
}

func (pc *ProjectController) GetProjects(c *fiber.Ctx) error {
	projects, err := pc.repo.Search("")
	if err != nil {
		pc.Logger.Printf("Failed to list projects: %v", err)
		return utils.Failure(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, dto.ToProjectDTOs(projects))
}

func (pc *ProjectController) SearchProjects(c *fiber.Ctx) error {
	projects, err := pc.repo.Search(c.Query("query"))
	if err != nil {
		pc.Logger.Printf("Project search failed: %v", err)
		return utils.Failure(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(projects) == 0 {
		return utils.Failure(c, fiber.StatusNotFound, "No projects found matching the search criteria.")
	}
	return utils.Success(c, fiber.StatusOK, dto.ToProjectDTOs(projects))
}

func (pc *ProjectController) GetProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid project id")
	}

	project, ok := pc.repo.GetDetails(id)
	if !ok {
		return utils.Failure(c, fiber.StatusNotFound, "Project not found")
	}
	return utils.Success(c, fiber.StatusOK, dto.ToProjectDTO(*project))
}

func (pc *ProjectController) GetProjectStatusCounts(c *fiber.Ctx) error {
	counts, err := pc.repo.StatusCounts()
	if err != nil {
		pc.Logger.Printf("Failed to aggregate project status counts: %v", err)
		return utils.Failure(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.ProjectStatusCount, 0, len(counts))
	for _, sc := range counts {
		out = append(out, dto.ProjectStatusCount{Status: sc.Status, Count: sc.Count})
	}
	return utils.Success(c, fiber.StatusOK, out)
}

// CreateProject accepts a multipart form: a "project" JSON field, a
// "subProject" JSON field, any number of "projectMembers" JSON fields and
// "files" attachments. Rows and accepted files land atomically or not at all.
func (pc *ProjectController) CreateProject(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Expected multipart form data")
	}

	var projectReq dto.ProjectCreateRequest
	if err := json.Unmarshal([]byte(c.FormValue("project")), &projectReq); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid project payload")
	}
	if err := utils.ValidateStruct(projectReq); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, err.Error())
	}

	var subProjectInput dto.ProjectSubProjectInput
	if err := json.Unmarshal([]byte(c.FormValue("subProject")), &subProjectInput); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid subProject payload")
	}

	var memberInputs []dto.ProjectMemberInput
	for _, raw := range form.Value["projectMembers"] {
		var input dto.ProjectMemberInput
		if err := json.Unmarshal([]byte(raw), &input); err != nil {
			return utils.Failure(c, fiber.StatusBadRequest, "Invalid projectMembers payload")
		}
		memberInputs = append(memberInputs, input)
	}

	project := dto.FromProjectCreateRequest(projectReq)
	subProject := dto.FromProjectSubProjectInput(subProjectInput)
	projectMembers := dto.FromProjectMemberInputs(memberInputs)

	if err := pc.repo.CreateProject(&project, form.File["files"], &subProject, projectMembers); err != nil {
		pc.Logger.Printf("Failed to create project: %v", err)
		return utils.Failure(c, fiber.StatusBadRequest, "Failed to create project.")
	}

	return utils.Created(c, "/API/Project/"+project.ID.String(), dto.ToProjectDTO(project))
}

// UpdateProject replaces the project row; when the form carries new files
// the whole upload directory is replaced as well.
func (pc *ProjectController) UpdateProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid project id")
	}

	existing, ok := pc.repo.GetByID(id)
	if !ok {
		return utils.Failure(c, fiber.StatusNotFound, "Project not found")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Expected multipart form data")
	}

	var req dto.ProjectUpdateRequest
	if err := json.Unmarshal([]byte(c.FormValue("project")), &req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid project payload")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, err.Error())
	}

	existing.Name = req.Name
	existing.Notes = req.Notes
	existing.State = req.State

	if err := pc.repo.UpdateProject(existing, form.File["files"]); err != nil {
		pc.Logger.Printf("Failed to update project: %v", err)
		return utils.Failure(c, fiber.StatusBadRequest, "Failed to update project.")
	}
	return utils.NoContent(c)
}

func (pc *ProjectController) DeleteProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid project id")
	}
	if !pc.repo.Exists(id) {
		return utils.Failure(c, fiber.StatusNotFound, "Project not found")
	}
	if !pc.repo.DeleteProject(id) {
		return utils.Failure(c, fiber.StatusInternalServerError, "Failed to delete project.")
	}
	return utils.NoContent(c)
}

// ShowImage streams a previously uploaded file by project and name.
func (pc *ProjectController) ShowImage(c *fiber.Ctx) error {
	path, ok := pc.files.Path(c.Params("projectId"), c.Params("imageName"))
	if !ok {
		return utils.Failure(c, fiber.StatusNotFound, "Image not found.")
	}
	return c.SendFile(path)
}
