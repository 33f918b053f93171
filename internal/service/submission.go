package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/common/id"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/common/logger"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service/issue_tracker"
)

type SubmitFeedbackParams struct {
	Interview string
	SessionID *string
	Title     *string
	Body      *string
	Template  *model.IssueTemplate
	Owner     string
	Repo      string
	Label     string

	SpamKeywords []string
}

// SubmissionResult reports what happened to each half of a submission. A nil
// IssueURL with a saved FeedbackID is a normal outcome.
type SubmissionResult struct {
	SubmissionID int64
	FeedbackID   *int64
	IssueURL     *string
	FilingError  string
}

type SubmissionService interface {
	Submit(ctx context.Context, params SubmitFeedbackParams) (*SubmissionResult, error)
}

type submissionService struct {
	feedback FeedbackService
	tracker  issue_tracker.IssueTrackerService
}

func NewSubmissionService(feedback FeedbackService, tracker issue_tracker.IssueTrackerService) SubmissionService {
	return &submissionService{feedback: feedback, tracker: tracker}
}

// Submit saves the feedback, files it as an issue and links the two. The save
// always runs first and its outcome never depends on filing. Save and link are
// separate transactions; a crash between them leaves the record unlinked.
func (s *submissionService) Submit(ctx context.Context, params SubmitFeedbackParams) (*SubmissionResult, error) {
	submissionID := id.New()
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SubmissionID: logger.Ptr(submissionID),
		Interview:    logger.Ptr(params.Interview),
		Repo:         logger.Ptr(params.Owner + "/" + params.Repo),
		Component:    "feedback.service.submission",
	})

	sc := logger.StartSpan(ctx, "submission.submit")
	defer sc.End()
	ctx = sc.Context()
	sc.SetAttributes(
		attribute.Int64("submission_id", submissionID),
		attribute.String("interview", params.Interview),
		attribute.String("repo", params.Owner+"/"+params.Repo),
	)

	result := &SubmissionResult{SubmissionID: submissionID}

	feedbackID, saveErr := s.feedback.Save(ctx, SaveFeedbackParams{
		Interview: params.Interview,
		SessionID: params.SessionID,
		Body:      params.Body,
		Template:  params.Template,
		RepoOwner: &params.Owner,
		RepoName:  &params.Repo,
	})
	if saveErr != nil {
		if !errors.Is(saveErr, ErrIncompleteFeedback) {
			sc.RecordError(saveErr)
			slog.ErrorContext(ctx, "feedback record not saved, filing anyway", "error", saveErr)
		}
	} else {
		result.FeedbackID = &feedbackID
		ctx = logger.WithLogFields(ctx, logger.LogFields{FeedbackID: logger.Ptr(feedbackID)})
	}

	issueURL, fileErr := s.tracker.Submit(ctx, issue_tracker.IssueRequest{
		Owner:        params.Owner,
		Repo:         params.Repo,
		Title:        params.Title,
		Body:         params.Body,
		Template:     params.Template,
		Label:        params.Label,
		SpamKeywords: params.SpamKeywords,
	})
	if fileErr != nil {
		result.FilingError = fileErr.Error()
		slog.InfoContext(ctx, "feedback not filed as an issue", "error", fileErr)
		if result.FeedbackID == nil {
			sc.RecordError(fileErr)
			return result, fmt.Errorf("feedback neither saved nor filed: %w", errors.Join(saveErr, fileErr))
		}
		return result, nil
	}
	result.IssueURL = &issueURL

	if result.FeedbackID != nil {
		ok, err := s.feedback.AttachIssueURL(ctx, feedbackID, issueURL)
		if err != nil {
			sc.RecordError(err)
			slog.ErrorContext(ctx, "issue filed but url not attached to feedback", "error", err, "html_url", issueURL)
		} else if !ok {
			slog.WarnContext(ctx, "issue filed but feedback record disappeared", "html_url", issueURL)
		}
	}

	slog.InfoContext(ctx, "feedback submitted",
		"saved", result.FeedbackID != nil,
		"html_url", issueURL)
	return result, nil
}
