package api

import (
	"github.com/gofiber/fiber/v3"

	"vibr/internal/llm"
	"vibr/internal/models"
	"vibr/internal/phrasebook"
)

// CatalogHandler serves the static catalogs: categories and models.
type CatalogHandler struct {
	book      *phrasebook.Holder
	providers *llm.Registry
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(book *phrasebook.Holder, providers *llm.Registry) *CatalogHandler {
	return &CatalogHandler{book: book, providers: providers}
}

// Categories lists categories in display order.
func (h *CatalogHandler) Categories(c fiber.Ctx) error {
	tables := h.book.Book().Categories()
	infos := make([]models.CategoryInfo, 0, len(tables))
	for _, t := range tables {
		infos = append(infos, t.Info())
	}
	return jsonSuccess(c, infos)
}

// Models lists the selectable LLMs.
func (h *CatalogHandler) Models(c fiber.Ctx) error {
	return jsonSuccess(c, h.providers.Models())
}
