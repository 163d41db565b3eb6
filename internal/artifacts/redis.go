package artifacts

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "artifact:"

// RedisStore keeps artifacts as plain keys whose TTL is the lifetime.
type RedisStore struct {
	rdb     *redis.Client
	timeout time.Duration
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, timeout: 2 * time.Second}
}

func (s *RedisStore) Save(ctx context.Context, name string, data []byte, lifetime time.Duration) error {
	if err := CheckName(name); err != nil {
		return err
	}
	if lifetime <= 0 {
		lifetime = time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.rdb.Set(ctx, redisKeyPrefix+name, data, lifetime).Err()
}

func (s *RedisStore) Get(ctx context.Context, name string) (*Stored, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	data, err := s.rdb.Get(ctx, redisKeyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Stored{Name: name, ContentType: ContentType(name), Data: data}, nil
}
