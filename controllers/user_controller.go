package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"projectview/dto"
	"projectview/repository"
	"projectview/utils"
)

type UserController struct {
	repo   *repository.UserRepository
	Logger *log.Logger
}

func NewUserController(repo *repository.UserRepository, logger *log.Logger) *UserController {
	return &UserController{repo: repo, Logger: logger}
}

func (uc *UserController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, err.Error())
	}

	if !uc.repo.IsUnique(req.UserName) {
		return utils.Failure(c, fiber.StatusBadRequest, "Username already exists")
	}

	user, err := uc.repo.Register(req)
	if err != nil {
		uc.Logger.Printf("Failed to register user: %v", err)
		return utils.Failure(c, fiber.StatusInternalServerError, "Failed to register user.")
	}

	return utils.Created(c, "/API/User/"+user.ID.String(), user)
}

func (uc *UserController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := uc.repo.Login(req)
	if err != nil {
		uc.Logger.Printf("Login failed: %v", err)
		return utils.Failure(c, fiber.StatusInternalServerError, "Login failed.")
	}
	if resp == nil {
		return utils.Failure(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	return utils.Success(c, fiber.StatusOK, resp)
}

func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	users, err := uc.repo.List()
	if err != nil {
		uc.Logger.Printf("Failed to list users: %v", err)
		return utils.Failure(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, dto.ToUserDTOs(users))
}

func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid user id")
	}

	user, ok := uc.repo.GetByID(id)
	if !ok {
		return utils.Failure(c, fiber.StatusNotFound, "User not found")
	}
	return utils.Success(c, fiber.StatusOK, dto.ToUserDTO(*user))
}

func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if _, ok := uc.repo.GetByID(id); !ok {
		return utils.Failure(c, fiber.StatusNotFound, "User not found")
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, err.Error())
	}

	if !uc.repo.Update(id, req) {
		return utils.Failure(c, fiber.StatusInternalServerError, "Failed to update user.")
	}
	return utils.NoContent(c)
}

func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.Failure(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if !uc.repo.Delete(id) {
		return utils.Failure(c, fiber.StatusNotFound, "User not found")
	}
	return utils.NoContent(c)
}
