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

type zoneStore struct {
	kv   domainRepo.KVStore
	keys Keys
	log  logger.ZapLogger
}

// NewZoneStore stores the zone snapshot as one JSON document
func NewZoneStore(kv domainRepo.KVStore, keys Keys, log logger.ZapLogger) domainRepo.ZoneStore {
	return &zoneStore{kv: kv, keys: keys, log: log}
}

func (s *zoneStore) Load(ctx context.Context) map[entity.ZoneID]entity.Zone {
	zones := make(map[entity.ZoneID]entity.Zone)

	blob, err := s.kv.Load(ctx, s.keys.Zones())
	if err != nil {
		s.log.Warn("Failed to load zone snapshot, starting fresh", zap.Error(err))
		return zones
	}
	if blob == nil {
		return zones
	}
	if err := json.Unmarshal(blob, &zones); err != nil {
		s.log.Warn("Corrupt zone snapshot, starting fresh", zap.Error(err))
		return make(map[entity.ZoneID]entity.Zone)
	}
	return zones
}

func (s *zoneStore) Save(ctx context.Context, zones map[entity.ZoneID]entity.Zone) error {
	blob, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("encode zone snapshot: %w", err)
	}
	return s.kv.Save(ctx, s.keys.Zones(), blob)
}
