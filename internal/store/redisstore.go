package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each snapshot under its own Redis key. Batches go through
// a transactional pipeline so multi-key cascades commit together.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing Redis client. An optional prefix namespaces
// the snapshot keys.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// Load fetches the snapshot for the key.
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

// Apply commits the batch through a MULTI/EXEC pipeline.
func (s *RedisStore) Apply(ctx context.Context, batch *Batch) error {
	if batch == nil || batch.Empty() {
		return nil
	}

	pipe := s.client.TxPipeline()
	for _, kv := range batch.Sets() {
		pipe.Set(ctx, s.prefix+kv.Key, kv.Value, 0)
	}
	for _, key := range batch.Deletes() {
		pipe.Del(ctx, s.prefix+key)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
