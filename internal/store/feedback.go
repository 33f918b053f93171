package store

import (
	"context"
	"time"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/db/queries"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
)

type feedbackStore struct {
	tx Transactor
}

func newFeedbackStore(tx Transactor) FeedbackStore {
	return &feedbackStore{tx: tx}
}

func (s *feedbackStore) Create(ctx context.Context, fb *model.Feedback) error {
	createdAt := fb.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var id int64
	err := s.tx.WithTx(ctx, func(q *queries.Queries) error {
		var err error
		id, err = q.InsertFeedback(ctx, queries.InsertFeedbackParams{
			Interview:      fb.Interview,
			SessionID:      fb.SessionID,
			Body:           fb.Body,
			GithubUser:     fb.RepoOwner,
			GithubRepoName: fb.RepoName,
			Datetime:       createdAt,
		})
		return err
	})
	if err != nil {
		return err
	}

	fb.ID = id
	fb.Archived = false
	fb.CreatedAt = createdAt
	return nil
}

func (s *feedbackStore) SetIssueURL(ctx context.Context, id int64, url string) error {
	return s.tx.WithTx(ctx, func(q *queries.Queries) error {
		n, err := q.SetFeedbackHtmlUrl(ctx, id, url)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *feedbackStore) Archive(ctx context.Context, id int64) error {
	return s.tx.WithTx(ctx, func(q *queries.Queries) error {
		n, err := q.ArchiveFeedback(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *feedbackStore) List(ctx context.Context, filter model.FeedbackFilter) ([]model.Feedback, error) {
	var rows []queries.FeedbackSession
	err := s.tx.WithTx(ctx, func(q *queries.Queries) error {
		var err error
		rows, err = q.ListFeedback(ctx, queries.ListFeedbackParams{
			Interview:       filter.Interview,
			IncludeArchived: filter.IncludeArchived,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	result := make([]model.Feedback, 0, len(rows))
	for _, row := range rows {
		result = append(result, toFeedbackModel(row))
	}
	return result, nil
}

func toFeedbackModel(row queries.FeedbackSession) model.Feedback {
	fb := model.Feedback{
		ID:        row.ID,
		SessionID: row.SessionID,
		Body:      row.Body,
		HTMLURL:   row.HtmlUrl,
		Archived:  row.Archived,
		RepoOwner: row.GithubUser,
		RepoName:  row.GithubRepoName,
	}
	if row.Interview != nil {
		fb.Interview = *row.Interview
	}
	if row.Datetime.Valid {
		fb.CreatedAt = row.Datetime.Time
	}
	return fb
}
