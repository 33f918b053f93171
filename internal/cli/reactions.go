package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewReactionsCmd creates the 'reactions' command, which summarizes ratings per interview version.
func NewReactionsCmd(p Provider) *cobra.Command {
	var (
		interview  string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "reactions",
		Short: "Summarize reactions per interview and version",
		Example: `  feedbackctl reactions
  feedbackctl reactions --interview docassemble.AssemblyLine:intake.yml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := p.Reactions(cmd.Context())
			if err != nil {
				return err
			}
			summaries, err := svc.Aggregate(cmd.Context(), interview)
			if err != nil {
				return fmt.Errorf("aggregating reactions: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, summaries)
			}
			if len(summaries) == 0 {
				fmt.Fprintln(out, "No reactions recorded.")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "INTERVIEW\tVERSION\tCOUNT\tAVERAGE")
			for _, s := range summaries {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\n", orDash(s.Interview), orDash(s.Version), s.Count, s.Average)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&interview, "interview", "i", "", "Only summarize this interview")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}
