// Package cli implements the vibr command line: offline translations and
// phrasebook checks without running the server.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vibr/internal/config"
	"vibr/internal/phrasebook"
)

type rootOptions struct {
	phrasebookFile string
}

// NewRootCommand builds the vibr command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "vibr",
		Short:         "Translate a feeling into a category phrase",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(os.Getenv("DOTENV_FILE")); err != nil {
				return fmt.Errorf("failed to load .env file: %w", err)
			}
			if opts.phrasebookFile == "" {
				opts.phrasebookFile = os.Getenv("PHRASEBOOK_FILE")
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.phrasebookFile, "phrasebook", "", "phrasebook overlay file (default $PHRASEBOOK_FILE)")

	cmd.AddCommand(
		newTranslateCommand(opts),
		newCategoriesCommand(opts),
		newModelsCommand(),
		newCheckCommand(),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (o *rootOptions) loadBook() (*phrasebook.Book, error) {
	return phrasebook.LoadWithOverlay(o.phrasebookFile)
}
