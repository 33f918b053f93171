package store

import (
	"context"
	"time"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/db/queries"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
)

type reactionStore struct {
	tx Transactor
}

func newReactionStore(tx Transactor) ReactionStore {
	return &reactionStore{tx: tx}
}

func (s *reactionStore) Create(ctx context.Context, r *model.Reaction) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return s.tx.WithTx(ctx, func(q *queries.Queries) error {
		return q.InsertReaction(ctx, queries.InsertReactionParams{
			Reaction:  int32(r.Score),
			Interview: r.Interview,
			Version:   r.Version,
			Datetime:  r.CreatedAt,
		})
	})
}

func (s *reactionStore) Aggregate(ctx context.Context, interview *string) ([]model.ReactionSummary, error) {
	var rows []queries.ReactionSummary
	err := s.tx.WithTx(ctx, func(q *queries.Queries) error {
		var err error
		rows, err = q.AggregateReactions(ctx, interview)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := make([]model.ReactionSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, model.ReactionSummary{
			Interview: row.Interview,
			Version:   row.Version,
			Count:     row.Count,
			Average:   row.Average,
		})
	}
	return result, nil
}
