package llm

import (
	"strings"
)

// SelectBestModel picks a provider id from the shape of the input.
// Short inputs go to Groq, long or punctuated ones to Anthropic, relationship
// and career prompts to OpenAI, money and education to Google.
func SelectBestModel(input, category string) string {
	length := len([]rune(input))
	hasComplexity := strings.ContainsAny(input, ",;:") || len(strings.Split(input, " ")) > 10

	if length < 50 && category != "career" {
		return "groq"
	}
	if hasComplexity || length > 100 {
		return "anthropic"
	}
	switch category {
	case "romance", "career":
		return "openai"
	case "money", "education":
		return "google"
	}
	return "groq"
}
