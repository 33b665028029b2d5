package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"vibr/internal/llm"
	"vibr/internal/middleware"
	"vibr/internal/models"
)

// SessionHandler manages the model configuration saved for a client.
type SessionHandler struct {
	providers *llm.Registry
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(providers *llm.Registry) *SessionHandler {
	return &SessionHandler{providers: providers}
}

// modelConfigResponse never echoes the API key back.
type modelConfigResponse struct {
	Model      string `json:"model"`
	Configured bool   `json:"configured"`
}

// GetModel returns the saved model id.
func (h *SessionHandler) GetModel(c fiber.Ctx) error {
	client := middleware.Client(c)
	if client == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session unavailable")
	}

	cfg, err := client.ModelConfig(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load model config")
	}
	return jsonSuccess(c, modelConfigResponse{Model: cfg.ModelID, Configured: cfg.IsSet()})
}

// PutModel saves the model id and API key for later translations.
func (h *SessionHandler) PutModel(c fiber.Ctx) error {
	client := middleware.Client(c)
	if client == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session unavailable")
	}

	var cfg models.ModelConfig
	if err := c.Bind().Body(&cfg); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	cfg.ModelID = strings.TrimSpace(cfg.ModelID)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)

	if !cfg.IsSet() {
		return jsonError(c, fiber.StatusBadRequest, "model and api_key are required")
	}
	if cfg.ModelID != llm.AutoModelID {
		if _, err := h.providers.Get(cfg.ModelID); err != nil {
			if errors.Is(err, llm.ErrUnknownProvider) {
				return jsonError(c, fiber.StatusBadRequest, "unknown model")
			}
			return jsonError(c, fiber.StatusInternalServerError, "failed to look up model")
		}
	}

	if err := client.SetModelConfig(c.Context(), cfg); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save model config")
	}
	return jsonSuccess(c, modelConfigResponse{Model: cfg.ModelID, Configured: true})
}

// DeleteModel forgets the saved model config.
func (h *SessionHandler) DeleteModel(c fiber.Ctx) error {
	client := middleware.Client(c)
	if client == nil {
		return jsonError(c, fiber.StatusInternalServerError, "session unavailable")
	}
	if err := client.ClearModelConfig(c.Context()); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to clear model config")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
