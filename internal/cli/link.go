package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service"
)

// NewLinkCmd creates the 'link' command, which prints a feedback interview URL.
// It needs neither Postgres nor Redis.
func NewLinkCmd(p Provider) *cobra.Command {
	var (
		params service.FeedbackLinkParams
		pkg    string
	)

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print a link to the feedback interview",
		Long: `Build the URL an interview embeds to send users to the feedback form.
Without --package, --owner or --repo the link points at the demo repository.`,
		Example: `  feedbackctl link --package docassemble.AssemblyLine --variable users[0].name.first
  feedbackctl link --owner suffolklitlab --repo docassemble-AssemblyLine --session abc123`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pkg != "" {
				params.Context = &model.InterviewContext{Package: pkg}
			}
			link := p.Links().Build(cmd.Context(), params)
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pkg, "package", "p", "", "Interview package the feedback is about")
	cmd.Flags().StringVar(&params.Owner, "owner", "", "GitHub owner of the target repository")
	cmd.Flags().StringVar(&params.Repo, "repo", "", "GitHub repository to file issues in")
	cmd.Flags().StringVar(&params.Interview, "interview", "", "Feedback interview to link to")
	cmd.Flags().StringVar(&params.Variable, "variable", "", "Variable the user was asked about")
	cmd.Flags().StringVar(&params.QuestionID, "question-id", "", "Question id the user was on")
	cmd.Flags().StringVar(&params.Version, "version", "", "Package version to report")
	cmd.Flags().StringVar(&params.Filename, "filename", "", "Interview file the user was on")
	cmd.Flags().StringVar(&params.SessionID, "session", "", "Session id of the interview")

	return cmd
}
