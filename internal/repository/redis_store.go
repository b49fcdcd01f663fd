package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "compareshop:"

// RedisStore persists blobs as plain Redis string values. Meant for
// deployments where the backend already runs next to a Redis instance.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects via a redis:// URL and validates connectivity at
// startup.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{rdb: rdb}, nil
}

// Load returns the blob stored under key, or (nil, nil) if absent.
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := s.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// Save writes the blob under key with no expiry — the mirror must survive
// restarts indefinitely.
func (s *RedisStore) Save(ctx context.Context, key string, blob []byte) error {
	return s.rdb.Set(ctx, redisKeyPrefix+key, blob, 0).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

var _ KVStore = (*RedisStore)(nil)
