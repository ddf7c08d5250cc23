package repository

import (
	"context"

	"github.com/sangkips/restaurant-pos/internal/domain/entity"
)

// ZoneStore persists the live snapshot of every zone and its bills
type ZoneStore interface {
	// Load returns the last saved snapshot. Missing or unreadable state
	// yields an empty map, never an error.
	Load(ctx context.Context) map[entity.ZoneID]entity.Zone
	Save(ctx context.Context, zones map[entity.ZoneID]entity.Zone) error
}

// LedgerStore persists sale records under one key per calendar day
type LedgerStore interface {
	// Load returns the day's records. A missing or corrupt day yields none;
	// the error is reserved for a failed storage read.
	Load(ctx context.Context, day string) ([]entity.SaleRecord, error)
	// Save writes the day's records, removing the day when records is empty
	Save(ctx context.Context, day string, records []entity.SaleRecord) error
	Delete(ctx context.Context, day string) error
}
