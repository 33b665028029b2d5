// Package handlers holds the handlers that sit outside the JSON API.
package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"vibr/internal/phrasebook"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	db   Pinger
	book *phrasebook.Holder
}

// NewProbeHandler creates a new probe handler. database may be nil when
// analytics are disabled.
func NewProbeHandler(database Pinger, book *phrasebook.Holder) *ProbeHandler {
	return &ProbeHandler{db: database, book: book}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK once the phrasebook is loaded and the database, if any, is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.book == nil || h.book.Book() == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "phrasebook not loaded",
		})
	}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "database unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
