package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"dante/internal/domain"
)

// RedisKV stores values in Redis under prefix+key, letting several machines
// share one logged-in session.
type RedisKV struct {
	rdb    redis.UniversalClient
	prefix string
}

// NewRedisKV wraps an existing client. prefix may be empty.
func NewRedisKV(rdb redis.UniversalClient, prefix string) *RedisKV {
	return &RedisKV{rdb: rdb, prefix: prefix}
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, r.prefix+key).Err()
}

var _ domain.KV = (*RedisKV)(nil)
