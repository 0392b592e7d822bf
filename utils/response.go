package utils

import (
	"github.com/gofiber/fiber/v2"
)

// APIResponse is the fixed-shape envelope every handler returns. Clients
// treat IsSuccess as authoritative; StatusCode mirrors the HTTP status.
type APIResponse struct {
	StatusCode    int         `json:"statusCode"`
	IsSuccess     bool        `json:"isSuccess"`
	Result        interface{} `json:"result"`
	ErrorMessages []string    `json:"errorMessages"`
}

// Success writes a success envelope with the given status and payload.
func Success(c *fiber.Ctx, status int, result interface{}) error {
	return c.Status(status).JSON(APIResponse{
		StatusCode:    status,
		IsSuccess:     true,
		Result:        result,
		ErrorMessages: []string{},
	})
}

// Created writes a 201 envelope with a Location header to the new resource.
func Created(c *fiber.Ctx, location string, result interface{}) error {
	c.Location(location)
	return Success(c, fiber.StatusCreated, result)
}

// NoContent acknowledges a successful update or delete with an empty body.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// Failure writes a failure envelope with the given status and messages.
func Failure(c *fiber.Ctx, status int, messages ...string) error {
	if len(messages) == 0 {
		messages = []string{}
	}
	return c.Status(status).JSON(APIResponse{
		StatusCode:    status,
		IsSuccess:     false,
		Result:        nil,
		ErrorMessages: messages,
	})
}
