package queries

import (
	"context"
	"time"
)

const insertFeedback = `
INSERT INTO feedback_session (interview, session_id, body, github_user, github_repo_name, archived, datetime)
VALUES ($1, $2, $3, $4, $5, false, $6)
RETURNING id
`

type InsertFeedbackParams struct {
	Interview      string
	SessionID      *string
	Body           *string
	GithubUser     *string
	GithubRepoName *string
	Datetime       time.Time
}

func (q *Queries) InsertFeedback(ctx context.Context, arg InsertFeedbackParams) (int64, error) {
	row := q.db.QueryRow(ctx, insertFeedback,
		arg.Interview,
		arg.SessionID,
		arg.Body,
		arg.GithubUser,
		arg.GithubRepoName,
		arg.Datetime,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const setFeedbackHtmlUrl = `
UPDATE feedback_session SET html_url = $2 WHERE id = $1::bigint
`

// SetFeedbackHtmlUrl returns the number of rows updated.
func (q *Queries) SetFeedbackHtmlUrl(ctx context.Context, id int64, htmlURL string) (int64, error) {
	tag, err := q.db.Exec(ctx, setFeedbackHtmlUrl, id, htmlURL)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const archiveFeedback = `
UPDATE feedback_session SET archived = true WHERE id = $1::bigint
`

// ArchiveFeedback returns the number of rows updated.
func (q *Queries) ArchiveFeedback(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, archiveFeedback, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listFeedback = `
SELECT id, interview, session_id, body, html_url, COALESCE(archived, false), datetime, github_user, github_repo_name
FROM feedback_session
WHERE ($1::text IS NULL OR interview = $1)
  AND ($2::boolean OR COALESCE(archived, false) = false)
ORDER BY id
`

type ListFeedbackParams struct {
	Interview       *string
	IncludeArchived bool
}

func (q *Queries) ListFeedback(ctx context.Context, arg ListFeedbackParams) ([]FeedbackSession, error) {
	rows, err := q.db.Query(ctx, listFeedback, arg.Interview, arg.IncludeArchived)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FeedbackSession
	for rows.Next() {
		var i FeedbackSession
		if err := rows.Scan(
			&i.ID,
			&i.Interview,
			&i.SessionID,
			&i.Body,
			&i.HtmlUrl,
			&i.Archived,
			&i.Datetime,
			&i.GithubUser,
			&i.GithubRepoName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
