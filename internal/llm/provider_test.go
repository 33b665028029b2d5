package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChatCompletionsProvider_Generate(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Hat-trick of feelings.  "}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider(srv.Client(), srv.URL)
	text, err := p.Generate(context.Background(), "prompt text", "sk-test")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if text != "Hat-trick of feelings." {
		t.Errorf("Generate() = %q, want trimmed text", text)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer sk-test")
	}
	if gotPath != "/chat/completions" {
		t.Errorf("path = %q, want /chat/completions", gotPath)
	}
	if gotBody.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", gotBody.Model)
	}
	if gotBody.MaxTokens != MaxTokens || gotBody.Temperature != Temperature {
		t.Errorf("generation settings = (%d, %v), want (%d, %v)", gotBody.MaxTokens, gotBody.Temperature, MaxTokens, Temperature)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Content != "prompt text" {
		t.Errorf("messages = %+v", gotBody.Messages)
	}
}

func TestChatCompletionsProvider_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, ErrProviderStatus},
		{"unauthorized", http.StatusUnauthorized, `{}`, ErrProviderStatus},
		{"no choices", http.StatusOK, `{"choices":[]}`, ErrEmptyResponse},
		{"blank content", http.StatusOK, `{"choices":[{"message":{"content":"   "}}]}`, ErrEmptyResponse},
		{"malformed body", http.StatusOK, `not json`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewGroqProvider(srv.Client(), srv.URL).Generate(context.Background(), "p", "key")
			if err == nil {
				t.Fatal("Generate() error = nil, want failure")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestChatCompletionsProvider_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := NewHuggingFaceProvider(nil, url).Generate(context.Background(), "p", "key"); err == nil {
		t.Error("Generate() against a closed server should fail")
	}
}

func TestProviders_RequireAPIKey(t *testing.T) {
	providers := []Provider{
		NewOpenAIProvider(nil, ""),
		NewAnthropicProvider(nil, ""),
		NewGoogleProvider(nil, ""),
		NewGroqProvider(nil, ""),
		NewHuggingFaceProvider(nil, ""),
	}
	for _, p := range providers {
		t.Run(p.Name(), func(t *testing.T) {
			if _, err := p.Generate(context.Background(), "p", ""); !errors.Is(err, ErrMissingAPIKey) {
				t.Errorf("Generate() error = %v, want %v", err, ErrMissingAPIKey)
			}
		})
	}
}

func TestAnthropicProvider_Generate(t *testing.T) {
	var gotKey, gotVersion, gotPath string
	var gotBody anthropicRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"content":[{"type":"text","text":"Sunday service energy.\n"}]}`))
	}))
	defer srv.Close()

	text, err := NewAnthropicProvider(srv.Client(), srv.URL).Generate(context.Background(), "pray", "ak-test")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "Sunday service energy." {
		t.Errorf("Generate() = %q", text)
	}
	if gotKey != "ak-test" || gotVersion != anthropicVersion {
		t.Errorf("headers = (%q, %q)", gotKey, gotVersion)
	}
	if gotPath != "/messages" {
		t.Errorf("path = %q, want /messages", gotPath)
	}
	if gotBody.MaxTokens != MaxTokens || len(gotBody.Messages) != 1 {
		t.Errorf("body = %+v", gotBody)
	}
}

func TestAnthropicProvider_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, `{}`, ErrProviderStatus},
		{"empty content", http.StatusOK, `{"content":[]}`, ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewAnthropicProvider(srv.Client(), srv.URL).Generate(context.Background(), "p", "key")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGoogleProvider_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":" Top of the league. "}]}}]}`))
	}))
	defer srv.Close()

	text, err := NewGoogleProvider(srv.Client(), srv.URL).Generate(context.Background(), "p", "gk-test")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "Top of the league." {
		t.Errorf("Generate() = %q", text)
	}
}

func TestGoogleProvider_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	if _, err := NewGoogleProvider(srv.Client(), srv.URL).Generate(context.Background(), "p", "bad"); err == nil {
		t.Error("Generate() error = nil, want failure")
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry(http.DefaultClient)

	for _, id := range []string{"openai", "anthropic", "google", "groq", "huggingface"} {
		p, err := r.Get(id)
		if err != nil {
			t.Errorf("Get(%q) error = %v", id, err)
			continue
		}
		if p.Name() != id {
			t.Errorf("Get(%q).Name() = %q", id, p.Name())
		}
	}

	if _, err := r.Get("mistral"); !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("Get(mistral) error = %v, want %v", err, ErrUnknownProvider)
	}

	infos := r.Models()
	if len(infos) != 5 || infos[0].ID != "openai" || infos[4].ID != "huggingface" {
		t.Errorf("Models() = %+v", infos)
	}
}

func TestRegistry_ModelsOnlyRegistered(t *testing.T) {
	r := NewRegistry(NewGroqProvider(nil, ""))
	infos := r.Models()
	if len(infos) != 1 || infos[0].ID != "groq" {
		t.Errorf("Models() = %+v, want only groq", infos)
	}
}
