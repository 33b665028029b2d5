package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ChatCompletionsProvider talks to any OpenAI-compatible chat completions API.
type ChatCompletionsProvider struct {
	name       string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIProvider creates the OpenAI provider. An empty baseURL uses the public API.
func NewOpenAIProvider(client *http.Client, baseURL string) *ChatCompletionsProvider {
	return newChatCompletionsProvider("openai", "gpt-4o-mini", "https://api.openai.com/v1", client, baseURL)
}

// NewGroqProvider creates the Groq provider.
func NewGroqProvider(client *http.Client, baseURL string) *ChatCompletionsProvider {
	return newChatCompletionsProvider("groq", "llama-3.3-70b-versatile", "https://api.groq.com/openai/v1", client, baseURL)
}

// NewHuggingFaceProvider creates the Hugging Face inference router provider.
func NewHuggingFaceProvider(client *http.Client, baseURL string) *ChatCompletionsProvider {
	return newChatCompletionsProvider("huggingface", "meta-llama/Llama-3.2-3B-Instruct", "https://router.huggingface.co/v1", client, baseURL)
}

func newChatCompletionsProvider(name, model, defaultURL string, client *http.Client, baseURL string) *ChatCompletionsProvider {
	if baseURL == "" {
		baseURL = defaultURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &ChatCompletionsProvider{
		name:       name,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

// Name returns the provider id this client was built for.
func (p *ChatCompletionsProvider) Name() string {
	return p.name
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate posts a single-message chat completion and returns the first choice.
func (p *ChatCompletionsProvider) Generate(ctx context.Context, prompt, apiKey string) (string, error) {
	if apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(chatRequest{
		Model:       p.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", p.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: %s status %d", ErrProviderStatus, p.name, resp.StatusCode)
	}

	var apiResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("%s: failed to decode response: %w", p.name, err)
	}

	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyResponse, p.name)
	}
	text := strings.TrimSpace(apiResp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyResponse, p.name)
	}
	return text, nil
}
