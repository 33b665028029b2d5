package api

import (
	"github.com/gofiber/fiber/v3"
)

// Envelope helpers for the catalog, session and contribution endpoints.
// /api/translate answers with its own flat {quote, error} shape instead.

func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(envelope("ok", "data", data))
}

// jsonCreated answers 201 with the stored resource.
func jsonCreated(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(envelope("ok", "data", data))
}

func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope("error", "error", message))
}

func envelope(status, key string, value any) fiber.Map {
	return fiber.Map{"status": status, key: value}
}
