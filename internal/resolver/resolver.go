// Package resolver turns a (input, category, perspective) request into a phrase
// by walking contributions, the keyword table, an optional LLM, and fallbacks.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"vibr/internal/llm"
	"vibr/internal/metrics"
	"vibr/internal/models"
	"vibr/internal/phrasebook"
)

// DefaultMaxRetries is the number of extra LLM calls made when the model
// repeats a phrase from the history.
const DefaultMaxRetries = 2

// ErrMissingParameters is returned when input, category or perspective is empty.
var ErrMissingParameters = errors.New("missing required parameters")

// TableSource returns the phrase table of a category, or nil when unknown.
type TableSource interface {
	Table(category string) *models.CategoryTable
}

// ProviderSource looks up an LLM provider by model id.
type ProviderSource interface {
	Get(id string) (llm.Provider, error)
}

// ContributionSource lists the phrases users contributed to a category.
type ContributionSource interface {
	ListByCategory(ctx context.Context, category string) ([]string, error)
}

// HistoryStore holds the phrases recently returned for each category.
type HistoryStore interface {
	Recent(ctx context.Context, category string) ([]string, error)
	Append(ctx context.Context, category, phrase string) error
}

// Request is a single translation request.
type Request struct {
	Input       string
	Category    string
	Perspective models.Perspective
	ModelID     string
	APIKey      string
}

// Validate checks that the required fields are present.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Input) == "" || strings.TrimSpace(r.Category) == "" || strings.TrimSpace(string(r.Perspective)) == "" {
		return ErrMissingParameters
	}
	return nil
}

// Result is the resolved phrase and the stage that produced it.
type Result struct {
	Quote    string
	Stage    string
	Provider string
}

// Engine resolves requests. It holds no per-client state.
type Engine struct {
	tables     TableSource
	providers  ProviderSource
	maxRetries int
	pick       func(n int) int
}

// New creates an engine. A negative maxRetries disables retries.
func New(tables TableSource, providers ProviderSource, maxRetries int) *Engine {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Engine{
		tables:     tables,
		providers:  providers,
		maxRetries: maxRetries,
		pick:       rand.IntN,
	}
}

// Resolve produces a phrase for req. Only validation and client store failures
// are returned as errors; provider failures fall through to the next stage.
func (e *Engine) Resolve(ctx context.Context, req Request, contributions ContributionSource, history HistoryStore) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	if contributions != nil {
		phrases, err := contributions.ListByCategory(ctx, req.Category)
		if err != nil {
			return Result{}, fmt.Errorf("failed to load contributions: %w", err)
		}
		if len(phrases) > 0 {
			quote := phrases[e.pick(len(phrases))]
			if quote != "" {
				return e.finish(ctx, req, history, Result{Quote: quote, Stage: models.StageContribution}), nil
			}
		}
	}

	table := e.tables.Table(req.Category)

	if entry, ok := phrasebook.Match(table, req.Input); ok {
		return e.finish(ctx, req, history, Result{Quote: entry.For(req.Perspective), Stage: models.StageKeyword}), nil
	}

	if req.ModelID != "" && req.APIKey != "" {
		if text, provider := e.generate(ctx, req, history); text != "" {
			return e.finish(ctx, req, history, Result{Quote: text, Stage: models.StageLLM, Provider: provider}), nil
		}
	}

	if entry, ok := phrasebook.Generic(table); ok {
		return e.finish(ctx, req, history, Result{Quote: entry.For(req.Perspective), Stage: models.StageGeneric}), nil
	}

	return Result{Quote: models.UltimateFallback, Stage: models.StageFallback}, nil
}

// finish records the quote in the history. History is advisory, so failures
// are logged and the result is still returned.
func (e *Engine) finish(ctx context.Context, req Request, history HistoryStore, res Result) Result {
	res.Quote = strings.TrimSpace(res.Quote)
	if history != nil {
		if err := history.Append(ctx, req.Category, res.Quote); err != nil {
			slog.Warn("failed to append response history", "category", req.Category, "error", err)
		}
	}
	return res
}

// generate asks the selected provider for a phrase, retrying when the model
// repeats a recent response. It returns an empty string on any failure.
func (e *Engine) generate(ctx context.Context, req Request, history HistoryStore) (string, string) {
	modelID := req.ModelID
	if modelID == llm.AutoModelID {
		modelID = llm.SelectBestModel(req.Input, req.Category)
	}

	provider, err := e.providers.Get(modelID)
	if err != nil {
		slog.Warn("skipping llm stage", "model", modelID, "error", err)
		return "", ""
	}

	var recent []string
	if history != nil {
		if recent, err = history.Recent(ctx, req.Category); err != nil {
			slog.Warn("failed to load response history", "category", req.Category, "error", err)
		}
	}

	prompt := llm.BuildPrompt(req.Category, req.Perspective, req.Input, recent)

	var last string
	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		start := time.Now()
		text, err := provider.Generate(ctx, prompt, req.APIKey)
		text = strings.TrimSpace(text)
		if err == nil && text == "" {
			err = llm.ErrEmptyResponse
		}
		if err != nil {
			metrics.ObserveProviderCall(provider.Name(), metrics.OutcomeError, time.Since(start))
			slog.Warn("llm provider call failed", "provider", provider.Name(), "attempt", attempt+1, "error", err)
			return last, provider.Name()
		}

		last = text
		if !isRepeat(text, recent) {
			metrics.ObserveProviderCall(provider.Name(), metrics.OutcomeOK, time.Since(start))
			return text, provider.Name()
		}
		metrics.ObserveProviderCall(provider.Name(), metrics.OutcomeDuplicate, time.Since(start))
	}

	return last, provider.Name()
}

func isRepeat(text string, history []string) bool {
	for _, h := range history {
		if strings.EqualFold(strings.TrimSpace(h), text) {
			return true
		}
	}
	return false
}
