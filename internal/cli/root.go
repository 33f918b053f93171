package cli

import "github.com/spf13/cobra"

// NewRootCmd assembles feedbackctl with every subcommand bound to p.
func NewRootCmd(p Provider, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "feedbackctl",
		Short: "Operate the GitHub feedback relay",
		Long: `feedbackctl reads and curates what the feedback relay stores:
feedback sessions, interview reactions and the research panel.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(NewMigrateCmd(p))
	root.AddCommand(NewFeedbackCmd(p))
	root.AddCommand(NewReactionsCmd(p))
	root.AddCommand(NewPanelistsCmd(p))
	root.AddCommand(NewLinkCmd(p))
	root.AddCommand(NewCheckRepoCmd(p))

	return root
}
