package cli

import (
	"fmt"
	"net/http"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vibr/internal/llm"
	"vibr/internal/phrasebook"
)

func newCategoriesCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := root.loadBook()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLABEL\tENTRIES")
			for _, t := range book.Categories() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", t.ID, t.Label, len(t.Data))
			}
			return w.Flush()
		},
	}
}

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List supported LLM providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPROVIDER")
			for _, m := range llm.DefaultRegistry(http.DefaultClient).Models() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, m.Name, m.Provider)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", llm.AutoModelID, "Smart selection", "-")
			return w.Flush()
		},
	}
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [overlay.yaml]",
		Short: "Validate a phrasebook overlay file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overlay, err := phrasebook.LoadOverlay(args[0])
			if err != nil {
				return err
			}
			if _, err := phrasebook.Default().Merge(overlay.Categories); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d categories OK\n", args[0], len(overlay.Categories))
			return nil
		},
	}
}
