package cache

import (
	"context"
	"time"

	"trilha_vertical/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisProcessedEventStore deduplicates provider payment events with SetNX.
// Keys expire after ttl; a replay beyond the window falls back to the order
// state machine, which refuses to move terminal orders anyway.

type RedisProcessedEventStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IProcessedEventStore = (*RedisProcessedEventStore)(nil)

func NewRedisProcessedEventStore(rdb *redis.Client, ttl time.Duration) *RedisProcessedEventStore {
	return &RedisProcessedEventStore{rdb: rdb, ttl: ttl}
}

func (s *RedisProcessedEventStore) MarkProcessed(ctx context.Context, eventKey string) (bool, error) {
	return s.rdb.SetNX(ctx, "payment:event:"+eventKey, "1", s.ttl).Result()
}

// Forget drops the marker so a provider retry of a failed application is
// processed again instead of being treated as a duplicate.
func (s *RedisProcessedEventStore) Forget(ctx context.Context, eventKey string) error {
	return s.rdb.Del(ctx, "payment:event:"+eventKey).Err()
}
