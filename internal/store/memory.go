package store

import (
	"context"
	"sync"
	"time"

	"vibr/internal/models"
)

// Memory is a process-local store, used by tests and single-user tooling.
type Memory struct {
	mu            sync.Mutex
	contributions []models.Contribution
	history       map[string][]string
	model         models.ModelConfig
	historyLimit  int
}

// NewMemory creates an empty in-memory store.
func NewMemory(historyLimit int) *Memory {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Memory{history: make(map[string][]string), historyLimit: historyLimit}
}

func (m *Memory) Add(ctx context.Context, phrase, category string) (models.Contribution, error) {
	c, err := newContribution(phrase, category, time.Now())
	if err != nil {
		return c, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contributions = append(m.contributions, c)
	return c, nil
}

func (m *Memory) List(ctx context.Context) ([]models.Contribution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Contribution(nil), m.contributions...), nil
}

func (m *Memory) ListByCategory(ctx context.Context, category string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return phrasesFor(m.contributions, category), nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contributions = nil
	return nil
}

func (m *Memory) Recent(ctx context.Context, category string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.history[category]...), nil
}

func (m *Memory) Append(ctx context.Context, category, phrase string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history[category] = AppendHistory(m.history[category], phrase, m.historyLimit)
	return nil
}

func (m *Memory) ModelConfig(ctx context.Context) (models.ModelConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.model, nil
}

func (m *Memory) SetModelConfig(ctx context.Context, cfg models.ModelConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.model = cfg
	return nil
}

func (m *Memory) ClearModelConfig(ctx context.Context) error {
	return m.SetModelConfig(ctx, models.ModelConfig{})
}
