package utils

import "github.com/gofiber/fiber/v2"

// MessageResponse is the error payload shape used across the API.
type MessageResponse struct {
	Message string `json:"message"`
}

// Message sends a JSON {"message": ...} body with the given status.
func Message(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(MessageResponse{Message: message})
}

// BadRequest sends a 400 Bad Request response.
func BadRequest(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusBadRequest, message)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 Conflict response.
func Conflict(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusInternalServerError, message)
}
