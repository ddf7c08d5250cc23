package repository

import (
	"context"
	"encoding/json"

	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/restaurant-pos/internal/domain/repository"
)

type idempotencyRepository struct {
	kv   domainRepo.KVStore
	keys Keys
}

// NewIdempotencyRepository creates a new idempotency repository on top of a KVStore
func NewIdempotencyRepository(kv domainRepo.KVStore, keys Keys) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{kv: kv, keys: keys}
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error) {
	blob, err := r.kv.Load(ctx, r.keys.Idempotency(key))
	if err != nil || blob == nil {
		return nil, err
	}
	var ikey entity.IdempotencyKey
	if err := json.Unmarshal(blob, &ikey); err != nil {
		return nil, err
	}
	if ikey.IsExpired() {
		_ = r.kv.Delete(ctx, r.keys.Idempotency(key))
		return nil, nil
	}
	return &ikey, nil
}

func (r *idempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	blob, err := json.Marshal(ikey)
	if err != nil {
		return err
	}
	return r.kv.Save(ctx, r.keys.Idempotency(ikey.Key), blob)
}
