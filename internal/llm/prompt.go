package llm

import (
	"fmt"
	"strings"

	"vibr/internal/models"
)

const promptTemplate = `You are Vibr, a creative vibe translator. Generate a short, witty, one-liner response that translates the user's vibe/feeling into context-specific slang or metaphor for the %[1]s category.

IMPORTANT: Your response MUST be directly related to what the user said. Use specific references from their input, not generic phrases.

The response should be:
- 1-2 sentences max
- Creative and funny, matching the %[1]s culture/vibe
- In "%[2]s"
- Include specific metaphors or references related to "%[1]s"
- Directly address the feeling/situation: "%[3]s"
%[4]s
User's feeling: "%[3]s"
Respond ONLY with the translation, nothing else. Make it relevant to their specific vibe.`

// BuildPrompt renders the translation prompt. Previous responses are listed so
// the model avoids repeating them.
func BuildPrompt(category string, perspective models.Perspective, input string, history []string) string {
	voice := "second person (you)"
	if perspective == models.PerspectiveMe {
		voice = "first person (I/me)"
	}

	var avoid strings.Builder
	if len(history) > 0 {
		avoid.WriteString("\nDo NOT repeat or closely paraphrase any of these previous responses:\n")
		for _, h := range history {
			avoid.WriteString("- ")
			avoid.WriteString(h)
			avoid.WriteString("\n")
		}
	}

	return fmt.Sprintf(promptTemplate, category, voice, input, avoid.String())
}
