package models

import (
	"time"

	"github.com/google/uuid"
)

// Contribution is a user-submitted phrase for a category.
type Contribution struct {
	ID          uuid.UUID `json:"id"`
	Phrase      string    `json:"phrase"`
	Category    string    `json:"category"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ModelConfig is the LLM selection saved for a session.
type ModelConfig struct {
	ModelID string `json:"model"`
	APIKey  string `json:"api_key"`
}

// IsSet returns true if both the model id and key are present.
func (m ModelConfig) IsSet() bool {
	return m.ModelID != "" && m.APIKey != ""
}
