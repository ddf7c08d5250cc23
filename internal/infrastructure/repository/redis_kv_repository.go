package repository

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	domainRepo "github.com/sangkips/restaurant-pos/internal/domain/repository"
)

type redisKVRepository struct {
	rdb *redis.Client
}

// NewRedisKVRepository creates a redis-backed key-value store
func NewRedisKVRepository(rdb *redis.Client) domainRepo.KVStore {
	return &redisKVRepository{rdb: rdb}
}

func (r *redisKVRepository) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return blob, err
}

func (r *redisKVRepository) Save(ctx context.Context, key string, blob []byte) error {
	return r.rdb.Set(ctx, key, blob, 0).Err()
}

func (r *redisKVRepository) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, key).Err()
}
