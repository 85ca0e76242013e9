package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"receipt-processor/internal/domain"
	"receipt-processor/internal/usecase"
)

const redisKeyPrefix = "receipt:points:"

// RedisStore is a ScoreStore backed by a Redis server, for deployments where
// scores must outlive the process. Keys are written without expiry; eviction
// is left to server policy.
type RedisStore struct {
	client *redis.Client
}

var _ usecase.ScoreStore = (*RedisStore)(nil)

// NewRedisStore wraps an already-connected client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Put inserts a new (id, points) binding. SETNX keeps bindings write-once.
func (s *RedisStore) Put(ctx context.Context, id string, points int64) error {
	ok, err := s.client.SetNX(ctx, redisKeyPrefix+id, points, 0).Result()
	if err != nil {
		return fmt.Errorf("redis setnx %s: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("score for receipt %s already recorded", id)
	}
	return nil
}

// Get returns the points bound to id, or domain.ErrReceiptNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) (int64, error) {
	points, err := s.client.Get(ctx, redisKeyPrefix+id).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrReceiptNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("redis get %s: %w", id, err)
	}
	return points, nil
}
