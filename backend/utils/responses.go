package utils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// The wire format keeps the conventions of the previous backend: errors
// are {"detail": ...}, success messages {"message": ...}, so existing
// front-end code keeps working unchanged.

func Detail(c *fiber.Ctx, status int, format string, args ...interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"detail": fmt.Sprintf(format, args...),
	})
}

func Message(c *fiber.Ctx, format string, args ...interface{}) error {
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf(format, args...),
	})
}

func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func NotFound(c *fiber.Ctx, format string, args ...interface{}) error {
	return Detail(c, fiber.StatusNotFound, format, args...)
}

func BadRequest(c *fiber.Ctx, format string, args ...interface{}) error {
	return Detail(c, fiber.StatusBadRequest, format, args...)
}

func Forbidden(c *fiber.Ctx, format string, args ...interface{}) error {
	return Detail(c, fiber.StatusForbidden, format, args...)
}

func InternalError(c *fiber.Ctx, format string, args ...interface{}) error {
	return Detail(c, fiber.StatusInternalServerError, format, args...)
}

// Unauthorized carries the WWW-Authenticate header expected by bearer
// token clients.
func Unauthorized(c *fiber.Ctx, format string, args ...interface{}) error {
	c.Set("WWW-Authenticate", "Bearer")
	return Detail(c, fiber.StatusUnauthorized, format, args...)
}
