package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// NewPanelistsCmd creates the 'panelists' command for the research panel roster.
func NewPanelistsCmd(p Provider) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "panelists",
		Aliases: []string{"panel"},
		Short:   "List people who joined the research panel",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := p.Panel(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := svc.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing panelists: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No panelists yet.")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "IDENTIFIER\tRESPONDED")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\n", e.Identifier, e.RespondedAt.UTC().Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}
