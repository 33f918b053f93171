package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
)

// Panel participants live in a Redis sorted set scored by the unix time they
// responded, so newer respondents (more likely to accept a follow up) sort last.
type panelStore struct {
	client *redis.Client
	key    string
}

func NewPanelStore(client *redis.Client, key string) PanelStore {
	return &panelStore{client: client, key: key}
}

func (s *panelStore) Add(ctx context.Context, identifier string, respondedAt time.Time) error {
	score := float64(respondedAt.UnixNano()) / float64(time.Second)
	if err := s.client.ZAdd(ctx, s.key, redis.Z{Score: score, Member: identifier}).Err(); err != nil {
		return fmt.Errorf("zadd (key=%s): %w", s.key, err)
	}
	return nil
}

func (s *panelStore) List(ctx context.Context) ([]model.PanelEntry, error) {
	items, err := s.client.ZRangeWithScores(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("zrange (key=%s): %w", s.key, err)
	}

	entries := make([]model.PanelEntry, 0, len(items))
	for _, z := range items {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		sec, frac := math.Modf(z.Score)
		entries = append(entries, model.PanelEntry{
			Identifier:  member,
			RespondedAt: time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC(),
		})
	}
	return entries, nil
}
