package repository

import (
	"context"
)

// KVStore is the durable key-value persistence adapter
type KVStore interface {
	// Load returns the stored blob, or nil with no error when the key is absent
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
}
