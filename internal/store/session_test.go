package store

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"vibr/internal/models"
)

func newSessionApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore(session.Config{CookieHTTPOnly: true})
	app.Use(sessionMiddleware)

	app.Post("/add", func(c fiber.Ctx) error {
		s := NewSession(session.FromContext(c), 0)
		if _, err := s.Add(c.Context(), c.Query("phrase"), c.Query("category")); err != nil {
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		if err := s.Append(c.Context(), c.Query("category"), c.Query("phrase")); err != nil {
			return err
		}
		return s.SetModelConfig(c.Context(), models.ModelConfig{ModelID: "openai", APIKey: "sk"})
	})
	app.Get("/count", func(c fiber.Ctx) error {
		s := NewSession(session.FromContext(c), 0)
		phrases, err := s.ListByCategory(c.Context(), c.Query("category"))
		if err != nil {
			return err
		}
		history, err := s.Recent(c.Context(), c.Query("category"))
		if err != nil {
			return err
		}
		cfg, err := s.ModelConfig(c.Context())
		if err != nil {
			return err
		}
		return c.SendString(strconv.Itoa(len(phrases)) + "/" + strconv.Itoa(len(history)) + "/" + cfg.ModelID)
	})
	app.Delete("/clear", func(c fiber.Ctx) error {
		s := NewSession(session.FromContext(c), 0)
		s.Clear(c.Context())
		return s.ClearModelConfig(c.Context())
	})
	return app
}

func doWithCookies(t *testing.T, app *fiber.App, method, target string, cookies []*http.Cookie) (*http.Response, string) {
	t.Helper()
	req, _ := http.NewRequest(method, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestSession_PersistsAcrossRequests(t *testing.T) {
	app := newSessionApp(t)

	resp, _ := doWithCookies(t, app, "POST", "/add?phrase=Offside&category=football", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("add: status %d", resp.StatusCode)
	}
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("add: no session cookie returned")
	}

	resp, _ = doWithCookies(t, app, "POST", "/add?phrase=Relegated&category=football", cookies)
	if resp.StatusCode != 200 {
		t.Fatalf("second add: status %d", resp.StatusCode)
	}

	_, body := doWithCookies(t, app, "GET", "/count?category=football", cookies)
	if body != "2/2/openai" {
		t.Errorf("count = %q, want %q", body, "2/2/openai")
	}

	_, body = doWithCookies(t, app, "GET", "/count?category=church", cookies)
	if body != "0/0/openai" {
		t.Errorf("count(church) = %q, want %q", body, "0/0/openai")
	}

	doWithCookies(t, app, "DELETE", "/clear", cookies)
	_, body = doWithCookies(t, app, "GET", "/count?category=football", cookies)
	if body != "0/2/" {
		t.Errorf("count after clear = %q, want %q", body, "0/2/")
	}
}

func TestSession_RejectsBlankPhrase(t *testing.T) {
	app := newSessionApp(t)

	resp, body := doWithCookies(t, app, "POST", "/add?phrase=%20%20&category=football", nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if !strings.Contains(body, ErrEmptyPhrase.Error()) {
		t.Errorf("body = %q", body)
	}
}

func TestSession_SeparateClients(t *testing.T) {
	app := newSessionApp(t)

	resp, _ := doWithCookies(t, app, "POST", "/add?phrase=Mine&category=street", nil)
	first := resp.Cookies()

	_, body := doWithCookies(t, app, "GET", "/count?category=street", nil)
	if body != "0/0/" {
		t.Errorf("new client sees %q, want empty state", body)
	}
	_, body = doWithCookies(t, app, "GET", "/count?category=street", first)
	if body != "1/1/openai" {
		t.Errorf("first client sees %q", body)
	}
}
