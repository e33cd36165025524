package session

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/redis/go-redis/v9"
)

const defaultRedisTokenKey = "edukit:session:token"

// RedisTokenStore persists the token in Redis so it outlives the process and
// can be shared by co-located workers. A zero TTL keeps the token until an
// explicit Remove, matching the single long-lived token the platform issues.
type RedisTokenStore struct {
	redis *redis.Client
	key   string
	ttl   time.Duration
}

// NewRedisTokenStore returns a store writing to the given key. An empty key
// falls back to the package default.
func NewRedisTokenStore(client *redis.Client, key string, ttl time.Duration) *RedisTokenStore {
	if key == "" {
		key = defaultRedisTokenKey
	}
	return &RedisTokenStore{
		redis: client,
		key:   key,
		ttl:   ttl,
	}
}

func (s *RedisTokenStore) Get(ctx context.Context) (string, error) {
	token, err := s.redis.Get(ctx, s.key).Result()
	if err != nil {
		if goerrors.Is(err, redis.Nil) {
			return "", ErrNoToken
		}
		return "", goerrors.Wrap(err, goerrors.CategoryOperation, "token backend unavailable")
	}

	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *RedisTokenStore) Set(ctx context.Context, token string) error {
	if err := s.redis.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "token backend unavailable")
	}
	return nil
}

func (s *RedisTokenStore) Remove(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.key).Err(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "token backend unavailable")
	}
	return nil
}

var _ TokenStore = (*RedisTokenStore)(nil)
