// Package store keeps per-client state: contributed phrases, the response
// history used for anti-repetition, and the saved model configuration.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"vibr/internal/models"
)

// DefaultHistoryLimit is the number of phrases kept per category.
const DefaultHistoryLimit = 20

// Store errors.
var (
	ErrEmptyPhrase     = errors.New("phrase is required")
	ErrMissingCategory = errors.New("category is required")
)

// Client is the state of a single client. Session and Memory implement it.
type Client interface {
	Add(ctx context.Context, phrase, category string) (models.Contribution, error)
	List(ctx context.Context) ([]models.Contribution, error)
	ListByCategory(ctx context.Context, category string) ([]string, error)
	Clear(ctx context.Context) error

	Recent(ctx context.Context, category string) ([]string, error)
	Append(ctx context.Context, category, phrase string) error

	ModelConfig(ctx context.Context) (models.ModelConfig, error)
	SetModelConfig(ctx context.Context, cfg models.ModelConfig) error
	ClearModelConfig(ctx context.Context) error
}

var (
	_ Client = (*Session)(nil)
	_ Client = (*Memory)(nil)
)

// newContribution validates and builds a contribution.
func newContribution(phrase, category string, now time.Time) (models.Contribution, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return models.Contribution{}, ErrEmptyPhrase
	}
	if strings.TrimSpace(category) == "" {
		return models.Contribution{}, ErrMissingCategory
	}
	return models.Contribution{
		ID:          uuid.New(),
		Phrase:      phrase,
		Category:    category,
		SubmittedAt: now,
	}, nil
}

// phrasesFor returns the phrases contributed to a category, oldest first.
func phrasesFor(all []models.Contribution, category string) []string {
	var out []string
	for _, c := range all {
		if c.Category == category {
			out = append(out, c.Phrase)
		}
	}
	return out
}

// AppendHistory appends phrase unless it is already the most recent entry,
// then drops the oldest entries beyond limit.
func AppendHistory(history []string, phrase string, limit int) []string {
	if n := len(history); n > 0 && history[n-1] == phrase {
		return history
	}
	history = append(history, phrase)
	if limit > 0 && len(history) > limit {
		history = append([]string(nil), history[len(history)-limit:]...)
	}
	return history
}
