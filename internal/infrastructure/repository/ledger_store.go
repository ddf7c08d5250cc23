package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/restaurant-pos/internal/domain/repository"
	"github.com/sangkips/restaurant-pos/pkg/logger"
	"go.uber.org/zap"
)

type ledgerStore struct {
	kv   domainRepo.KVStore
	keys Keys
	log  logger.ZapLogger
}

// NewLedgerStore stores each day's sale records as one JSON array
func NewLedgerStore(kv domainRepo.KVStore, keys Keys, log logger.ZapLogger) domainRepo.LedgerStore {
	return &ledgerStore{kv: kv, keys: keys, log: log}
}

func (s *ledgerStore) Load(ctx context.Context, day string) ([]entity.SaleRecord, error) {
	blob, err := s.kv.Load(ctx, s.keys.Sales(day))
	if err != nil {
		return nil, fmt.Errorf("load sales ledger %s: %w", day, err)
	}
	if blob == nil {
		return nil, nil
	}
	var records []entity.SaleRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		s.log.Warn("Corrupt sales ledger, treating day as empty", zap.String("day", day), zap.Error(err))
		return nil, nil
	}
	return records, nil
}

func (s *ledgerStore) Save(ctx context.Context, day string, records []entity.SaleRecord) error {
	if len(records) == 0 {
		return s.Delete(ctx, day)
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode sales ledger: %w", err)
	}
	return s.kv.Save(ctx, s.keys.Sales(day), blob)
}

func (s *ledgerStore) Delete(ctx context.Context, day string) error {
	return s.kv.Delete(ctx, s.keys.Sales(day))
}
