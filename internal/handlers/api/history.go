package api

import (
	"github.com/gofiber/fiber/v3"

	"vibr/internal/middleware"
	"vibr/internal/models"
	"vibr/internal/validation"
)

// History returns the phrases recently served to the client for a category.
func History(c fiber.Ctx) error {
	category := validation.NormalizeCategory(c.Params("category"))
	if !validation.ValidateCategory(category) {
		return jsonError(c, fiber.StatusBadRequest, "invalid category")
	}

	client := middleware.Client(c)
	if client == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session unavailable")
	}

	phrases, err := client.Recent(c.Context(), category)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load history")
	}
	if phrases == nil {
		phrases = []string{}
	}
	return jsonSuccess(c, models.HistoryResponse{Category: category, Phrases: phrases})
}
