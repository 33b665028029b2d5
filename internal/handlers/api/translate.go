package api

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"vibr/internal/metrics"
	"vibr/internal/middleware"
	"vibr/internal/models"
	"vibr/internal/phrasebook"
	"vibr/internal/resolver"
	"vibr/internal/validation"
)

const (
	msgMissingParameters = "Missing required parameters"
	msgTranslateFailed   = "Failed to generate translation"
)

// TranslateHandler turns a feeling into a category phrase.
type TranslateHandler struct {
	engine *resolver.Engine
	book   *phrasebook.Holder
}

// NewTranslateHandler creates a new translate handler. The book decides which
// categories are recorded under their own name in resolution metrics.
func NewTranslateHandler(engine *resolver.Engine, book *phrasebook.Holder) *TranslateHandler {
	return &TranslateHandler{engine: engine, book: book}
}

// Translate resolves a phrase for the request body. The response is always
// {quote} on success; failures after validation still carry the fallback quote,
// including panics raised while resolving.
func (h *TranslateHandler) Translate(c fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("translation panicked", "panic", r)
			err = translateFailed(c)
		}
	}()

	var body models.TranslateRequest
	if err := c.Bind().Body(&body); err != nil {
		slog.Warn("invalid translate body", "error", err)
		return translateFailed(c)
	}

	req := resolver.Request{
		Input:       strings.TrimSpace(body.Input),
		Category:    validation.NormalizeCategory(body.Category),
		Perspective: validation.NormalizePerspective(body.Perspective),
		ModelID:     strings.TrimSpace(body.ModelID),
		APIKey:      strings.TrimSpace(body.APIKey),
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.TranslateResponse{Error: msgMissingParameters})
	}
	if !validation.ValidateInput(req.Input) {
		slog.Warn("translate input too long", "length", len(req.Input))
		return c.Status(fiber.StatusBadRequest).JSON(models.TranslateResponse{Error: msgMissingParameters})
	}

	client := middleware.Client(c)
	if client == nil {
		slog.Error("translate called without client store")
		return translateFailed(c)
	}

	// Fall back to the model the client saved for this session.
	if req.ModelID == "" && req.APIKey == "" {
		saved, err := client.ModelConfig(c.Context())
		if err != nil {
			slog.Warn("failed to load saved model config", "error", err)
		} else if saved.IsSet() {
			req.ModelID, req.APIKey = saved.ModelID, saved.APIKey
		}
	}

	res, err := h.engine.Resolve(c.Context(), req, client, client)
	if err != nil {
		if errors.Is(err, resolver.ErrMissingParameters) {
			return c.Status(fiber.StatusBadRequest).JSON(models.TranslateResponse{Error: msgMissingParameters})
		}
		slog.Error("translation failed", "category", req.Category, "error", err)
		return translateFailed(c)
	}

	metrics.RecordResolution(h.resolutionLabel(req.Category), res.Stage)
	return c.JSON(models.TranslateResponse{Quote: res.Quote})
}

// resolutionLabel keeps metric labels and lookup rows bounded to the
// categories the phrasebook knows.
func (h *TranslateHandler) resolutionLabel(category string) string {
	if h.book == nil || h.book.Table(category) == nil {
		return metrics.UnknownCategory
	}
	return category
}

func translateFailed(c fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(models.TranslateResponse{
		Error: msgTranslateFailed,
		Quote: models.UltimateFallback,
	})
}
