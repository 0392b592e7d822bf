package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"projectview/config"
	controller "projectview/controllers"
	"projectview/middleware"
	"projectview/repository"
	"projectview/utils"
)

// SetupRoutes wires every resource under /API plus the upload streaming
// route. Listing and single-item reads for Member, Role, SubProject and
// Project are anonymous; everything else requires a bearer token.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	repoLog := logrus.New()

	jwtManager := utils.NewJWTManager(cfg.JWTSecret)
	fileStore := repository.NewFileStore(cfg.UploadDir, repoLog)

	memberRepo := repository.NewMemberRepository(db, repoLog)
	roleRepo := repository.NewRoleRepository(db, repoLog)
	subProjectRepo := repository.NewSubProjectRepository(db, repoLog)
	projectMemberRepo := repository.NewProjectMemberRepository(db, repoLog)
	projectRepo := repository.NewProjectRepository(db, fileStore, repoLog)
	userRepo := repository.NewUserRepository(db, jwtManager, repoLog)

	memberController := controller.NewMemberController(memberRepo, log.New(os.Stdout, "MEMBER: ", log.LstdFlags))
	roleController := controller.NewRoleController(roleRepo, log.New(os.Stdout, "ROLE: ", log.LstdFlags))
	subProjectController := controller.NewSubProjectController(subProjectRepo, projectRepo, log.New(os.Stdout, "SUBPROJECT: ", log.LstdFlags))
	projectMemberController := controller.NewProjectMemberController(projectMemberRepo, memberRepo, roleRepo, projectRepo, log.New(os.Stdout, "PROJECTMEMBER: ", log.LstdFlags))
	projectController := controller.NewProjectController(projectRepo, fileStore, log.New(os.Stdout, "PROJECT: ", log.LstdFlags))
	userController := controller.NewUserController(userRepo, log.New(os.Stdout, "USER: ", log.LstdFlags))

	protected := middleware.Protected(jwtManager, db)

	api := app.Group("/API", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	member := api.Group("/Member")
	member.Get("/", memberController.GetMembers)
	member.Get("/:id", memberController.GetMember)
	member.Post("/", protected, memberController.CreateMember)
	member.Put("/:id", protected, memberController.UpdateMember)
	member.Delete("/:id", protected, memberController.DeleteMember)

	role := api.Group("/Role")
	role.Get("/", roleController.GetRoles)
	role.Get("/:id", roleController.GetRole)
	role.Post("/", protected, roleController.CreateRole)
	role.Put("/:id", protected, roleController.UpdateRole)
	role.Delete("/:id", protected, roleController.DeleteRole)

	subProject := api.Group("/SubProject")
	subProject.Get("/", subProjectController.GetSubProjects)
	subProject.Get("/:id", subProjectController.GetSubProject)
	subProject.Post("/", protected, subProjectController.CreateSubProject)
	subProject.Put("/:id", protected, subProjectController.UpdateSubProject)
	subProject.Delete("/:id", protected, subProjectController.DeleteSubProject)

	projectMember := api.Group("/ProjectMember", protected)
	projectMember.Get("/", projectMemberController.GetProjectMembers)
	projectMember.Get("/:id", projectMemberController.GetProjectMember)
	projectMember.Post("/", projectMemberController.CreateProjectMember)
	projectMember.Put("/:id", projectMemberController.UpdateProjectMember)
	projectMember.Delete("/:id", projectMemberController.DeleteProjectMember)

	project := api.Group("/Project")
	// Fixed paths first so ":id" does not capture them
	project.Get("/search", projectController.SearchProjects)
	project.Get("/status-counts", projectController.GetProjectStatusCounts)
	project.Get("/", projectController.GetProjects)
	project.Get("/:id", projectController.GetProject)
	project.Post("/", protected, projectController.CreateProject)
	project.Put("/:id", protected, projectController.UpdateProject)
	project.Delete("/:id", protected, projectController.DeleteProject)

	user := api.Group("/User")
	user.Post("/login", userController.Login)
	user.Post("/register", protected, userController.Register)
	user.Get("/", protected, userController.GetUsers)
	user.Get("/:id", protected, userController.GetUser)
	user.Put("/:id", protected, userController.UpdateUser)
	user.Delete("/:id", protected, userController.DeleteUser)

	app.Get("/ProjImg/:projectId/:imageName", projectController.ShowImage)
}
