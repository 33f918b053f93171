package store

import (
	"github.com/redis/go-redis/v9"
)

type Stores struct {
	tx       Transactor
	redis    *redis.Client
	panelKey string
}

func NewStores(tx Transactor, redisClient *redis.Client, panelKey string) *Stores {
	return &Stores{tx: tx, redis: redisClient, panelKey: panelKey}
}

func (s *Stores) Feedback() FeedbackStore {
	return newFeedbackStore(s.tx)
}

func (s *Stores) Reactions() ReactionStore {
	return newReactionStore(s.tx)
}

func (s *Stores) Panel() PanelStore {
	return NewPanelStore(s.redis, s.panelKey)
}
