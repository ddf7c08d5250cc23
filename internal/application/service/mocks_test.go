package service

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/sangkips/restaurant-pos/internal/domain/entity"
)

// --- MOCKS ---

// MockZoneStore keeps the last saved snapshot
type MockZoneStore struct {
	mu      sync.Mutex
	Saved   map[entity.ZoneID]entity.Zone
	Initial map[entity.ZoneID]entity.Zone
	Saves   int
	ErrSave error
}

func (m *MockZoneStore) Load(ctx context.Context) map[entity.ZoneID]entity.Zone {
	if m.Initial == nil {
		return map[entity.ZoneID]entity.Zone{}
	}
	return maps.Clone(m.Initial)
}

func (m *MockZoneStore) Save(ctx context.Context, zones map[entity.ZoneID]entity.Zone) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.ErrSave != nil {
		return m.ErrSave
	}
	m.Saved = maps.Clone(zones)
	return nil
}

// MockLedgerStore holds records per day. FailLoads makes the next n loads fail.
type MockLedgerStore struct {
	mu        sync.Mutex
	Days      map[string][]entity.SaleRecord
	Deleted   []string
	Loads     int
	FailLoads int
	ErrSave   error
	ErrDelete error
}

func NewMockLedgerStore() *MockLedgerStore {
	return &MockLedgerStore{Days: make(map[string][]entity.SaleRecord)}
}

func (m *MockLedgerStore) Load(ctx context.Context, day string) ([]entity.SaleRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Loads++
	if m.FailLoads > 0 {
		m.FailLoads--
		return nil, errors.New("connection refused")
	}
	return slices.Clone(m.Days[day]), nil
}

func (m *MockLedgerStore) Save(ctx context.Context, day string, records []entity.SaleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ErrSave != nil {
		return m.ErrSave
	}
	if len(records) == 0 {
		delete(m.Days, day)
		return nil
	}
	m.Days[day] = slices.Clone(records)
	return nil
}

func (m *MockLedgerStore) Delete(ctx context.Context, day string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ErrDelete != nil {
		return m.ErrDelete
	}
	m.Deleted = append(m.Deleted, day)
	delete(m.Days, day)
	return nil
}

// fakeClock is a settable Clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{now: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
