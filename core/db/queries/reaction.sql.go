package queries

import (
	"context"
	"time"
)

const insertReaction = `
INSERT INTO good_or_bad (reaction, interview, version, datetime)
VALUES ($1, $2, $3, $4)
`

type InsertReactionParams struct {
	Reaction  int32
	Interview *string
	Version   *string
	Datetime  time.Time
}

func (q *Queries) InsertReaction(ctx context.Context, arg InsertReactionParams) error {
	_, err := q.db.Exec(ctx, insertReaction, arg.Reaction, arg.Interview, arg.Version, arg.Datetime)
	return err
}

const aggregateReactions = `
SELECT interview, version, count(*) AS count, avg(reaction)::float8 AS average
FROM good_or_bad
WHERE ($1::text IS NULL OR interview = $1)
GROUP BY interview, version
ORDER BY interview, version
`

func (q *Queries) AggregateReactions(ctx context.Context, interview *string) ([]ReactionSummary, error) {
	rows, err := q.db.Query(ctx, aggregateReactions, interview)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ReactionSummary
	for rows.Next() {
		var i ReactionSummary
		if err := rows.Scan(&i.Interview, &i.Version, &i.Count, &i.Average); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
