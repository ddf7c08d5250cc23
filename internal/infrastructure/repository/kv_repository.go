package repository

import (
	"context"
	"errors"

	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/restaurant-pos/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvRepository struct {
	db *gorm.DB
}

// NewKVRepository creates a postgres-backed key-value store
func NewKVRepository(db *gorm.DB) domainRepo.KVStore {
	return &kvRepository{db: db}
}

func (r *kvRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var row entity.KVEntry
	err := r.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Value, nil
}

func (r *kvRepository) Save(ctx context.Context, key string, blob []byte) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entity.KVEntry{Key: key, Value: blob}).Error
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&entity.KVEntry{}, "key = ?", key).Error
}
