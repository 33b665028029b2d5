// Package llm adapts external LLM vendors to a single text-generation capability.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"vibr/internal/models"
)

// Generation settings shared by every provider.
const (
	Temperature = 0.85
	MaxTokens   = 100
)

// AutoModelID asks the registry to pick a provider from the input.
const AutoModelID = "auto"

// Provider errors.
var (
	ErrUnknownProvider = errors.New("unknown provider")
	ErrProviderStatus  = errors.New("provider returned non-success status")
	ErrEmptyResponse   = errors.New("provider returned no text")
	ErrMissingAPIKey   = errors.New("api key is required")
)

// Provider turns a prompt into text using a caller-supplied API key.
type Provider interface {
	// Name returns the provider id used in requests (e.g. "openai").
	Name() string

	// Generate returns the trimmed response text or an error.
	Generate(ctx context.Context, prompt, apiKey string) (string, error)
}

// availableModels lists the selectable models in display order.
var availableModels = []models.ModelInfo{
	{ID: "openai", Name: "GPT-4o", Provider: "OpenAI", Logo: "🔷"},
	{ID: "anthropic", Name: "Claude 3.5 Sonnet", Provider: "Anthropic", Logo: "🤖"},
	{ID: "google", Name: "Gemini 2.0", Provider: "Google", Logo: "🔍"},
	{ID: "groq", Name: "Llama 3.3 70B", Provider: "Groq", Logo: "⚡"},
	{ID: "huggingface", Name: "Llama 3.2", Provider: "HF", Logo: "🤗"},
}

// Registry maps model ids to providers.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates a registry from the given providers.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

// DefaultRegistry returns a registry with every supported vendor, sharing client.
func DefaultRegistry(client *http.Client) *Registry {
	return NewRegistry(
		NewOpenAIProvider(client, ""),
		NewAnthropicProvider(client, ""),
		NewGoogleProvider(client, ""),
		NewGroqProvider(client, ""),
		NewHuggingFaceProvider(client, ""),
	)
}

// Get returns the provider for a model id.
func (r *Registry) Get(id string) (Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, id)
	}
	return p, nil
}

// Models returns the registered models in display order.
func (r *Registry) Models() []models.ModelInfo {
	out := make([]models.ModelInfo, 0, len(r.providers))
	for _, m := range availableModels {
		if _, ok := r.providers[m.ID]; ok {
			out = append(out, m)
		}
	}
	return out
}
