package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCheckRepoCmd creates the 'check-repo' command. It answers whether
// feedback could be filed against owner/repo with the current credentials.
func NewCheckRepoCmd(p Provider) *cobra.Command {
	return &cobra.Command{
		Use:     "check-repo <owner> <repo>",
		Short:   "Check that issues can be filed in a repository",
		Example: `  feedbackctl check-repo suffolklitlab docassemble-AssemblyLine`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := args[0], args[1]
			exists, err := p.Issues().RepoExists(cmd.Context(), owner, repo)
			if err != nil {
				return fmt.Errorf("checking %s/%s: %w", owner, repo, err)
			}
			if !exists {
				return fmt.Errorf("repository %s/%s not found", owner, repo)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s/%s is reachable\n", owner, repo)
			return nil
		},
	}
}
