package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/common/logger"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/store"
)

// ErrScoreOutOfRange means the score does not fit good_or_bad.reaction (int4).
var ErrScoreOutOfRange = errors.New("reaction score out of range")

type RecordReactionParams struct {
	Score     int
	Interview *string
	Version   *string
	Context   *model.InterviewContext // supplies interview and version unless overridden
}

type ReactionService interface {
	Record(ctx context.Context, params RecordReactionParams) error
	// Aggregate groups by (interview, version); an empty interview means all.
	Aggregate(ctx context.Context, interview string) ([]model.ReactionSummary, error)
}

type reactionService struct {
	reactions store.ReactionStore
	versions  VersionLookup
}

func NewReactionService(reactions store.ReactionStore, versions VersionLookup) ReactionService {
	return &reactionService{reactions: reactions, versions: versions}
}

func (s *reactionService) Record(ctx context.Context, params RecordReactionParams) error {
	if params.Score < math.MinInt32 || params.Score > math.MaxInt32 {
		slog.WarnContext(ctx, "reaction score rejected", "score", params.Score)
		return ErrScoreOutOfRange
	}

	var interview, version *string
	if params.Context != nil {
		if params.Context.Filename != "" {
			interview = logger.Ptr(params.Context.Filename)
		}
		version = logger.Ptr(versionFor(ctx, s.versions, params.Context))
	}
	if v := nonEmpty(params.Interview); v != nil {
		interview = v
	}
	if v := nonEmpty(params.Version); v != nil {
		version = v
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Interview: interview,
		Component: "feedback.service.reaction",
	})

	r := &model.Reaction{Score: params.Score, Interview: interview, Version: version}
	if err := s.reactions.Create(ctx, r); err != nil {
		slog.ErrorContext(ctx, "failed to record reaction", "error", err, "score", params.Score)
		return fmt.Errorf("recording reaction: %w", err)
	}

	slog.DebugContext(ctx, "reaction recorded", "score", params.Score)
	return nil
}

func (s *reactionService) Aggregate(ctx context.Context, interview string) ([]model.ReactionSummary, error) {
	var filter *string
	if interview != "" {
		filter = &interview
	}
	summaries, err := s.reactions.Aggregate(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("aggregating reactions: %w", err)
	}
	return summaries, nil
}
