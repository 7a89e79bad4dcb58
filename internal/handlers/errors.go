package handlers

import (
	"errors"
	"fmt"
	"log"

	"productorders/internal/shared"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps a service error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, shared.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, shared.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError logs err and writes it with the status it maps to.
func respondError(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// badRequest rejects a request before it reaches a service.
func badRequest(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// pathID reads the numeric :id route parameter.
func pathID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", c.Params("id"), err)
	}
	return int64(id), nil
}
