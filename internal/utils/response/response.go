// Package response holds the JSON response helpers shared by all handlers.
// Rejections always carry an "errors" array so clients get every violation
// message, not just the first.
package response

import (
	"github.com/gofiber/fiber/v2"
)

func OK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func Errors(c *fiber.Ctx, status int, messages ...string) error {
	return c.Status(status).JSON(fiber.Map{
		"errors": messages,
	})
}

func BadRequest(c *fiber.Ctx, messages ...string) error {
	return Errors(c, fiber.StatusBadRequest, messages...)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Errors(c, fiber.StatusNotFound, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Errors(c, fiber.StatusInternalServerError, message)
}
