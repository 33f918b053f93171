package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
)

// NewFeedbackCmd groups the commands that read and curate feedback sessions.
func NewFeedbackCmd(p Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "feedback",
		Aliases: []string{"fb"},
		Short:   "Inspect and curate stored feedback",
	}

	cmd.AddCommand(newFeedbackListCmd(p))
	cmd.AddCommand(newFeedbackArchiveCmd(p))
	cmd.AddCommand(newFeedbackSetURLCmd(p))

	return cmd
}

func newFeedbackListCmd(p Provider) *cobra.Command {
	var (
		interview       string
		includeArchived bool
		jsonOutput      bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored feedback",
		Example: `  feedbackctl feedback list
  feedbackctl feedback list --interview docassemble.AssemblyLine:intake.yml --archived
  feedbackctl feedback ls --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := p.Feedback(cmd.Context())
			if err != nil {
				return err
			}
			records, err := svc.List(cmd.Context(), interview, includeArchived)
			if err != nil {
				return fmt.Errorf("listing feedback: %w", err)
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), records)
			}
			return writeFeedbackTable(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().StringVarP(&interview, "interview", "i", "", "Only show feedback for this interview")
	cmd.Flags().BoolVarP(&includeArchived, "archived", "a", false, "Include archived feedback")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func newFeedbackArchiveCmd(p Provider) *cobra.Command {
	return &cobra.Command{
		Use:     "archive <id>",
		Short:   "Hide a feedback record from default listings",
		Example: `  feedbackctl feedback archive 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseFeedbackID(args[0])
			if err != nil {
				return err
			}
			svc, err := p.Feedback(cmd.Context())
			if err != nil {
				return err
			}
			ok, err := svc.Archive(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("archiving feedback: %w", err)
			}
			if !ok {
				return fmt.Errorf("feedback %d not found", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived feedback %d\n", id)
			return nil
		},
	}
}

func newFeedbackSetURLCmd(p Provider) *cobra.Command {
	return &cobra.Command{
		Use:     "set-url <id> <html_url>",
		Short:   "Link a feedback record to a GitHub issue",
		Example: `  feedbackctl feedback set-url 42 https://github.com/suffolklitlab/docassemble-AssemblyLine/issues/42`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseFeedbackID(args[0])
			if err != nil {
				return err
			}
			svc, err := p.Feedback(cmd.Context())
			if err != nil {
				return err
			}
			ok, err := svc.AttachIssueURL(cmd.Context(), id, args[1])
			if err != nil {
				return fmt.Errorf("updating feedback: %w", err)
			}
			if !ok {
				return fmt.Errorf("feedback %d not found", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Linked feedback %d to %s\n", id, args[1])
			return nil
		},
	}
}

func parseFeedbackID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid feedback id %q", s)
	}
	return id, nil
}

func writeFeedbackTable(w io.Writer, records map[int64]model.Feedback) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No feedback found.")
		return nil
	}

	ids := make([]int64, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tINTERVIEW\tCREATED\tARCHIVED\tISSUE")
	for _, id := range ids {
		fb := records[id]
		fmt.Fprintf(tw, "%d\t%s\t%s\t%t\t%s\n",
			id, fb.Interview, fb.CreatedAt.Format("2006-01-02 15:04"), fb.Archived, orDash(fb.HTMLURL))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
