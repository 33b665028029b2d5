package api

import (
	"github.com/gofiber/fiber/v3"

	"vibr/internal/middleware"
	"vibr/internal/models"
	"vibr/internal/validation"
)

// ContributionHandler manages phrases contributed by the client.
type ContributionHandler struct{}

// NewContributionHandler creates a new contribution handler.
func NewContributionHandler() *ContributionHandler {
	return &ContributionHandler{}
}

type contributionRequest struct {
	Phrase   string `json:"phrase"`
	Category string `json:"category"`
}

// List returns all contributions, or those of one category when ?category= is set.
func (h *ContributionHandler) List(c fiber.Ctx) error {
	client := middleware.Client(c)
	if client == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session unavailable")
	}

	all, err := client.List(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load contributions")
	}

	category := validation.NormalizeCategory(c.Query("category"))
	if category == "" {
		return jsonSuccess(c, all)
	}

	filtered := make([]models.Contribution, 0, len(all))
	for _, contribution := range all {
		if contribution.Category == category {
			filtered = append(filtered, contribution)
		}
	}
	return jsonSuccess(c, filtered)
}

// Create adds a contribution. It wins over the phrase table for its category.
func (h *ContributionHandler) Create(c fiber.Ctx) error {
	client := middleware.Client(c)
	if client == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session unavailable")
	}

	var req contributionRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	category := validation.NormalizeCategory(req.Category)
	if !validation.ValidateCategory(category) {
		return jsonError(c, fiber.StatusBadRequest, "invalid category")
	}
	if valid, msg := validation.ValidatePhrase(req.Phrase); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	contribution, err := client.Add(c.Context(), req.Phrase, category)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save contribution")
	}
	return jsonCreated(c, contribution)
}

// Clear removes every contribution of the client.
func (h *ContributionHandler) Clear(c fiber.Ctx) error {
	client := middleware.Client(c)
	if client == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session unavailable")
	}
	if err := client.Clear(c.Context()); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to clear contributions")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
