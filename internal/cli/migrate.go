package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMigrateCmd creates the 'migrate' command, which applies pending schema migrations.
func NewMigrateCmd(p Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applied, err := p.Migrate(cmd.Context())
			if err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(applied) == 0 {
				fmt.Fprintln(out, "Schema is up to date.")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintf(out, "✓ applied %s\n", name)
			}
			return nil
		},
	}
}
