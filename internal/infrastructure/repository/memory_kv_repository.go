package repository

import (
	"context"
	"slices"
	"sync"

	domainRepo "github.com/sangkips/restaurant-pos/internal/domain/repository"
)

// MemoryKVRepository keeps blobs in process memory. State is lost on restart.
type MemoryKVRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ domainRepo.KVStore = (*MemoryKVRepository)(nil)

// NewMemoryKVRepository creates an empty in-memory store
func NewMemoryKVRepository() *MemoryKVRepository {
	return &MemoryKVRepository{data: make(map[string][]byte)}
}

func (r *MemoryKVRepository) Load(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	blob, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return slices.Clone(blob), nil
}

func (r *MemoryKVRepository) Save(ctx context.Context, key string, blob []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = slices.Clone(blob)
	return nil
}

func (r *MemoryKVRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

// Keys lists the stored keys in sorted order
func (r *MemoryKVRepository) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.data))
	for k := range r.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
