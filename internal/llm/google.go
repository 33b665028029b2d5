package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// GoogleProvider generates text with Gemini through the genai SDK.
// A client is built per call because the API key arrives with each request.
type GoogleProvider struct {
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleProvider creates the Gemini provider. An empty baseURL uses the SDK default.
func NewGoogleProvider(client *http.Client, baseURL string) *GoogleProvider {
	return &GoogleProvider{
		model:      "gemini-2.0-flash",
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Name returns "google".
func (g *GoogleProvider) Name() string {
	return "google"
}

// Generate calls Gemini through the genai client and returns the response text.
func (g *GoogleProvider) Generate(ctx context.Context, prompt, apiKey string) (string, error) {
	if apiKey == "" {
		return "", ErrMissingAPIKey
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.httpClient,
	}
	if g.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to create GenAI client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](Temperature),
		MaxOutputTokens: MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("google request failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("%w: google", ErrEmptyResponse)
	}
	return text, nil
}
