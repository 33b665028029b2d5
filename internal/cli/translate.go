package cli

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vibr/internal/llm"
	"vibr/internal/phrasebook"
	"vibr/internal/resolver"
	"vibr/internal/store"
	"vibr/internal/validation"
)

func newTranslateCommand(root *rootOptions) *cobra.Command {
	var (
		category    string
		perspective string
		modelID     string
		apiKey      string
		contribute  []string
		showStage   bool
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "translate [feeling]",
		Short: "Translate a feeling",
		Example: `  vibr translate -c football "I need to win this match"
  vibr translate -c street -p you --model groq "stressed about rent"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := root.loadBook()
			if err != nil {
				return err
			}
			if apiKey == "" {
				apiKey = os.Getenv("VIBR_API_KEY")
			}

			client := store.NewMemory(0)
			for _, phrase := range contribute {
				if _, err := client.Add(cmd.Context(), phrase, validation.NormalizeCategory(category)); err != nil {
					return err
				}
			}

			engine := resolver.New(
				phrasebook.NewHolder(book),
				llm.DefaultRegistry(&http.Client{Timeout: timeout}),
				resolver.DefaultMaxRetries,
			)
			res, err := engine.Resolve(cmd.Context(), resolver.Request{
				Input:       strings.Join(args, " "),
				Category:    validation.NormalizeCategory(category),
				Perspective: validation.NormalizePerspective(perspective),
				ModelID:     modelID,
				APIKey:      apiKey,
			}, client, client)
			if err != nil {
				return err
			}

			if showStage {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", res.Stage, res.Quote)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Quote)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category id, see vibr categories")
	cmd.Flags().StringVarP(&perspective, "perspective", "p", "me", "me or you")
	cmd.Flags().StringVar(&modelID, "model", "", "LLM provider id, or auto")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "LLM API key (default $VIBR_API_KEY)")
	cmd.Flags().StringArrayVar(&contribute, "contribution", nil, "contributed phrase for the category (repeatable)")
	cmd.Flags().BoolVar(&showStage, "stage", false, "print the stage that produced the phrase")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "LLM request timeout")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
