package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"vibr/internal/store"
)

const clientKey = "client"

// ClientMiddleware attaches the per-client store, backed by the request's
// session, to the request locals.
type ClientMiddleware struct {
	historyLimit int
}

// NewClientMiddleware creates a new client middleware instance.
// It must run after the session middleware.
func NewClientMiddleware(historyLimit int) *ClientMiddleware {
	return &ClientMiddleware{historyLimit: historyLimit}
}

// Attach loads the client store for the current session.
func (m *ClientMiddleware) Attach(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}
	c.Locals(clientKey, store.Client(store.NewSession(sess, m.historyLimit)))
	return c.Next()
}

// WithClient attaches a fixed client store. Used where sessions are not wanted.
func WithClient(client store.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals(clientKey, client)
		return c.Next()
	}
}

// Client returns the client store attached to the request, or nil.
func Client(c fiber.Ctx) store.Client {
	client, _ := c.Locals(clientKey).(store.Client)
	return client
}
