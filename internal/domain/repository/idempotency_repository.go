package repository

import (
	"context"

	"github.com/sangkips/restaurant-pos/internal/domain/entity"
)

// IdempotencyRepository remembers answered requests by client key.
// GetByKey returns nil, nil for unknown or expired keys.
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
}
