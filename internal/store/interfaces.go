package store

import (
	"context"
	"errors"
	"time"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/db/queries"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// Transactor runs fn inside one transaction. *db.DB satisfies it.
type Transactor interface {
	WithTx(ctx context.Context, fn func(q *queries.Queries) error) error
}

// FeedbackStore defines the contract for feedback_session data access.
// Rows are never deleted; Archive is the only way to hide one.
type FeedbackStore interface {
	Create(ctx context.Context, fb *model.Feedback) error
	SetIssueURL(ctx context.Context, id int64, url string) error
	Archive(ctx context.Context, id int64) error
	List(ctx context.Context, filter model.FeedbackFilter) ([]model.Feedback, error)
}

// ReactionStore defines the contract for good_or_bad data access
type ReactionStore interface {
	Create(ctx context.Context, r *model.Reaction) error
	Aggregate(ctx context.Context, interview *string) ([]model.ReactionSummary, error)
}

// PanelStore defines the contract for the research panel sorted set
type PanelStore interface {
	Add(ctx context.Context, identifier string, respondedAt time.Time) error
	List(ctx context.Context) ([]model.PanelEntry, error)
}
