package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3/middleware/session"

	"vibr/internal/models"
)

// Session keys. Values are JSON strings so the session backend never needs
// to know about our types.
const (
	contributionsKey = "vibr_contributions"
	historyKey       = "vibr_history"
	modelConfigKey   = "vibr_model_config"
)

// Session stores client state inside the Fiber session of the current request.
type Session struct {
	sess         *session.Middleware
	historyLimit int
}

// NewSession wraps the session of a request.
func NewSession(sess *session.Middleware, historyLimit int) *Session {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Session{sess: sess, historyLimit: historyLimit}
}

func (s *Session) load(key string, dst any) error {
	raw, _ := s.sess.Get(key).(string)
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("failed to decode session %s: %w", key, err)
	}
	return nil
}

func (s *Session) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", key, err)
	}
	s.sess.Set(key, string(data))
	return nil
}

func (s *Session) Add(ctx context.Context, phrase, category string) (models.Contribution, error) {
	c, err := newContribution(phrase, category, time.Now())
	if err != nil {
		return c, err
	}
	all, err := s.List(ctx)
	if err != nil {
		return models.Contribution{}, err
	}
	all = append(all, c)
	return c, s.save(contributionsKey, all)
}

func (s *Session) List(ctx context.Context) ([]models.Contribution, error) {
	var all []models.Contribution
	if err := s.load(contributionsKey, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (s *Session) ListByCategory(ctx context.Context, category string) ([]string, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return phrasesFor(all, category), nil
}

func (s *Session) Clear(ctx context.Context) error {
	s.sess.Delete(contributionsKey)
	return nil
}

func (s *Session) history() (map[string][]string, error) {
	h := make(map[string][]string)
	if err := s.load(historyKey, &h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Session) Recent(ctx context.Context, category string) ([]string, error) {
	h, err := s.history()
	if err != nil {
		return nil, err
	}
	return h[category], nil
}

func (s *Session) Append(ctx context.Context, category, phrase string) error {
	h, err := s.history()
	if err != nil {
		return err
	}
	h[category] = AppendHistory(h[category], phrase, s.historyLimit)
	return s.save(historyKey, h)
}

func (s *Session) ModelConfig(ctx context.Context) (models.ModelConfig, error) {
	var cfg models.ModelConfig
	err := s.load(modelConfigKey, &cfg)
	return cfg, err
}

func (s *Session) SetModelConfig(ctx context.Context, cfg models.ModelConfig) error {
	return s.save(modelConfigKey, cfg)
}

func (s *Session) ClearModelConfig(ctx context.Context) error {
	s.sess.Delete(modelConfigKey)
	return nil
}
