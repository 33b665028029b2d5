package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vibr/internal/handlers"
	"vibr/internal/handlers/api"
	"vibr/internal/llm"
	"vibr/internal/middleware"
	"vibr/internal/models"
	"vibr/internal/phrasebook"
	"vibr/internal/resolver"
)

// Deps are the long-lived services the routes are built on.
type Deps struct {
	Engine    *resolver.Engine
	Book      *phrasebook.Holder
	Providers *llm.Registry
	DB        handlers.Pinger // nil when analytics are disabled
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	// Initialize middleware
	clientMiddleware := middleware.NewClientMiddleware(s.Cfg.HistoryLimit)

	// Initialize handlers
	translateHandler := api.NewTranslateHandler(deps.Engine, deps.Book)
	catalogHandler := api.NewCatalogHandler(deps.Book, deps.Providers)
	sessionHandler := api.NewSessionHandler(deps.Providers)
	contributionHandler := api.NewContributionHandler()
	probeHandler := handlers.NewProbeHandler(deps.DB, deps.Book)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	apiGroup := s.App.Group("/api", clientMiddleware.Attach)

	// Translation is the only route that can reach a paid LLM, so it is the
	// one that gets rate limited.
	apiGroup.Post("/translate", s.translateLimiter(), translateHandler.Translate)

	apiGroup.Get("/categories", catalogHandler.Categories)
	apiGroup.Get("/models", catalogHandler.Models)

	apiGroup.Get("/session/model", sessionHandler.GetModel)
	apiGroup.Put("/session/model", sessionHandler.PutModel)
	apiGroup.Delete("/session/model", sessionHandler.DeleteModel)

	apiGroup.Get("/contributions", contributionHandler.List)
	apiGroup.Post("/contributions", contributionHandler.Create)
	apiGroup.Delete("/contributions", contributionHandler.Clear)

	apiGroup.Get("/history/:category", api.History)
}

// translateLimiter limits translations per client IP. A non-positive max
// disables it.
func (s *Server) translateLimiter() fiber.Handler {
	if s.Cfg.RateLimitMax <= 0 {
		return func(c fiber.Ctx) error { return c.Next() }
	}
	window := s.Cfg.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        s.Cfg.RateLimitMax,
		Expiration: window,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
				"quote": models.UltimateFallback,
			})
		},
	})
}
