package queries

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type FeedbackSession struct {
	ID             int64
	Interview      *string
	SessionID      *string
	Body           *string
	HtmlUrl        *string
	Archived       bool
	Datetime       pgtype.Timestamptz
	GithubUser     *string
	GithubRepoName *string
}

type ReactionSummary struct {
	Interview *string
	Version   *string
	Count     int64
	Average   float64
}
