package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"vibr/internal/models"
)

// MaxPhraseLength caps contributed phrases, in characters.
const MaxPhraseLength = 280

// MaxInputLength caps the feeling sent to /api/translate, in characters.
const MaxInputLength = 1000

// CategoryPattern defines the valid category id format: lowercase letters, digits, hyphens.
var CategoryPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateCategory checks if a category id matches the allowed pattern.
func ValidateCategory(category string) bool {
	if category == "" || len(category) > 50 {
		return false
	}
	return CategoryPattern.MatchString(category)
}

// NormalizeCategory trims and lowercases a category id.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// NormalizePerspective maps any value other than "me" to "you".
// An empty value stays empty so callers can reject it.
func NormalizePerspective(perspective string) models.Perspective {
	p := strings.ToLower(strings.TrimSpace(perspective))
	switch p {
	case "":
		return ""
	case string(models.PerspectiveMe):
		return models.PerspectiveMe
	default:
		return models.PerspectiveYou
	}
}

// ValidatePhrase checks a contributed phrase. It returns false and a message
// suitable for the client when the phrase is rejected.
func ValidatePhrase(phrase string) (bool, string) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return false, "Phrase is required"
	}
	if utf8.RuneCountInString(phrase) > MaxPhraseLength {
		return false, "Phrase is too long"
	}
	return true, ""
}

// ValidateInput checks the length of a translation input.
func ValidateInput(input string) bool {
	return utf8.RuneCountInString(input) <= MaxInputLength
}
