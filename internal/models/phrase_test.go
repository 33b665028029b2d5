package models

import "testing"

func TestPhraseEntry_IsGeneric(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		expected bool
	}{
		{"generic only", []string{"generic"}, true},
		{"generic with other keys", []string{"win", "generic"}, true},
		{"no generic", []string{"win", "goal"}, false},
		{"uppercase is not generic", []string{"GENERIC"}, false},
		{"empty keys", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := PhraseEntry{Keys: tt.keys}
			if got := entry.IsGeneric(); got != tt.expected {
				t.Errorf("IsGeneric() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPhraseEntry_For(t *testing.T) {
	entry := PhraseEntry{Me: "first person", You: "second person"}

	tests := []struct {
		name        string
		perspective Perspective
		expected    string
	}{
		{"me", PerspectiveMe, "first person"},
		{"you", PerspectiveYou, "second person"},
		{"unknown falls to you", Perspective("them"), "second person"},
		{"empty falls to you", Perspective(""), "second person"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := entry.For(tt.perspective); got != tt.expected {
				t.Errorf("For(%q) = %q, want %q", tt.perspective, got, tt.expected)
			}
		})
	}
}

func TestModelConfig_IsSet(t *testing.T) {
	tests := []struct {
		name     string
		cfg      ModelConfig
		expected bool
	}{
		{"both set", ModelConfig{ModelID: "openai", APIKey: "sk-test"}, true},
		{"missing key", ModelConfig{ModelID: "openai"}, false},
		{"missing model", ModelConfig{APIKey: "sk-test"}, false},
		{"empty", ModelConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.IsSet(); got != tt.expected {
				t.Errorf("IsSet() = %v, want %v", got, tt.expected)
			}
		})
	}
}
