package models

// TranslateRequest is the inbound body of a translation.
type TranslateRequest struct {
	Input       string `json:"input"`
	Category    string `json:"category"`
	Perspective string `json:"perspective"`
	ModelID     string `json:"modelId,omitempty"`
	APIKey      string `json:"apiKey,omitempty"`
}

// TranslateResponse contains a translated quote or an error.
type TranslateResponse struct {
	Quote string `json:"quote,omitempty"`
	Error string `json:"error,omitempty"`
}

// ModelInfo describes a selectable LLM.
type ModelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Logo     string `json:"logo"`
}

// HistoryResponse lists recently returned phrases for a category.
type HistoryResponse struct {
	Category string   `json:"category"`
	Phrases  []string `json:"phrases"`
}
