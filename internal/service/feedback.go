package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/common/logger"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/store"
)

// ErrIncompleteFeedback is returned by Save when the record would carry no
// interview, or neither a session id nor a body. Nothing is written.
var ErrIncompleteFeedback = errors.New("feedback needs an interview and a session id or body")

type SaveFeedbackParams struct {
	Interview string
	SessionID *string
	Body      *string
	Template  *model.IssueTemplate // Content replaces Body when set
	RepoOwner *string
	RepoName  *string
}

type FeedbackService interface {
	Save(ctx context.Context, params SaveFeedbackParams) (int64, error)
	// AttachIssueURL reports false when no record has that id.
	AttachIssueURL(ctx context.Context, id int64, url string) (bool, error)
	// SetFeedbackGitHubURL is AttachIssueURL under its older name.
	SetFeedbackGitHubURL(ctx context.Context, id int64, url string) (bool, error)
	Archive(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, interview string, includeArchived bool) (map[int64]model.Feedback, error)
}

type feedbackService struct {
	feedback store.FeedbackStore
}

func NewFeedbackService(feedback store.FeedbackStore) FeedbackService {
	return &feedbackService{feedback: feedback}
}

func (s *feedbackService) Save(ctx context.Context, params SaveFeedbackParams) (int64, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Interview: logger.Ptr(params.Interview),
		Component: "feedback.service.feedback",
	})

	body := params.Body
	if params.Template != nil {
		body = &params.Template.Content
	}
	sessionID := nonEmpty(params.SessionID)
	body = nonEmpty(body)

	if params.Interview == "" || (sessionID == nil && body == nil) {
		slog.WarnContext(ctx, "feedback not saved: missing interview, session id and body",
			"has_interview", params.Interview != "",
			"has_session_id", sessionID != nil,
			"has_body", body != nil)
		return 0, ErrIncompleteFeedback
	}

	fb := &model.Feedback{
		Interview: params.Interview,
		SessionID: sessionID,
		Body:      body,
		RepoOwner: nonEmpty(params.RepoOwner),
		RepoName:  nonEmpty(params.RepoName),
	}
	if err := s.feedback.Create(ctx, fb); err != nil {
		return 0, fmt.Errorf("saving feedback: %w", err)
	}

	slog.InfoContext(ctx, "feedback saved", "feedback_id", fb.ID)
	return fb.ID, nil
}

func (s *feedbackService) AttachIssueURL(ctx context.Context, id int64, url string) (bool, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		FeedbackID: logger.Ptr(id),
		Component:  "feedback.service.feedback",
	})

	if err := s.feedback.SetIssueURL(ctx, id, url); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "cannot attach issue url: feedback not found")
			return false, nil
		}
		return false, fmt.Errorf("attaching issue url: %w", err)
	}

	slog.InfoContext(ctx, "issue url attached", "html_url", url)
	return true, nil
}

func (s *feedbackService) SetFeedbackGitHubURL(ctx context.Context, id int64, url string) (bool, error) {
	return s.AttachIssueURL(ctx, id, url)
}

func (s *feedbackService) Archive(ctx context.Context, id int64) (bool, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		FeedbackID: logger.Ptr(id),
		Component:  "feedback.service.feedback",
	})

	if err := s.feedback.Archive(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "cannot archive: feedback not found")
			return false, nil
		}
		return false, fmt.Errorf("archiving feedback: %w", err)
	}

	slog.InfoContext(ctx, "feedback archived")
	return true, nil
}

func (s *feedbackService) List(ctx context.Context, interview string, includeArchived bool) (map[int64]model.Feedback, error) {
	filter := model.FeedbackFilter{IncludeArchived: includeArchived}
	if interview != "" {
		filter.Interview = &interview
	}

	rows, err := s.feedback.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}

	result := make(map[int64]model.Feedback, len(rows))
	for _, fb := range rows {
		result[fb.ID] = fb
	}
	return result, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
