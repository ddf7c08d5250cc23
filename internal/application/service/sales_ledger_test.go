package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	"github.com/sangkips/restaurant-pos/pkg/apperror"
	"github.com/sangkips/restaurant-pos/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(clock *fakeClock) (*SalesLedger, *MockLedgerStore) {
	store := NewMockLedgerStore()
	return NewSalesLedger(store, logger.NewNopLogger(), clock.Now, time.Second), store
}

func sale(id string, amount int64, at time.Time) entity.SaleRecord {
	return entity.SaleRecord{ID: id, Amount: amount, Timestamp: at}
}

func TestSalesLedgerRecordAndTotals(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local))
	ledger, store := newTestLedger(clock)

	totals := ledger.DailyTotals(ctx)
	assert.Equal(t, "2025-03-14", totals.Day)
	assert.Equal(t, 0, totals.Count)
	assert.Empty(t, store.Days, "no key before the first sale")

	ledger.RecordSale(ctx, sale("a", 380, clock.Now()))
	ledger.RecordSale(ctx, sale("b", 400, clock.Now()))

	totals = ledger.DailyTotals(ctx)
	assert.Equal(t, int64(780), totals.Amount)
	assert.Equal(t, 2, totals.Count)
	assert.Len(t, store.Days["2025-03-14"], 2)

	records := ledger.Records(ctx)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].ID)
}

func TestSalesLedgerRollsOverAtLocalMidnight(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2025, 3, 14, 23, 59, 0, 0, time.Local))
	ledger, store := newTestLedger(clock)

	ledger.RecordSale(ctx, sale("late", 250, clock.Now()))
	clock.Advance(2 * time.Minute)

	totals := ledger.DailyTotals(ctx)
	assert.Equal(t, "2025-03-15", totals.Day)
	assert.Equal(t, int64(0), totals.Amount)

	ledger.RecordSale(ctx, sale("early", 120, clock.Now()))
	assert.Len(t, store.Days["2025-03-14"], 1)
	assert.Len(t, store.Days["2025-03-15"], 1)
	records, err := ledger.RecordsFor(ctx, "2025-03-14")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSalesLedgerPicksUpPersistedDay(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local))
	ledger, store := newTestLedger(clock)
	store.Days["2025-03-14"] = []entity.SaleRecord{sale("before-restart", 500, clock.Now())}

	ledger.RecordSale(ctx, sale("after-restart", 100, clock.Now()))

	totals := ledger.DailyTotals(ctx)
	assert.Equal(t, int64(600), totals.Amount)
	assert.Equal(t, 2, totals.Count)
}

func TestSalesLedgerClearToday(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local))
	ledger, store := newTestLedger(clock)
	store.Days["2025-03-13"] = []entity.SaleRecord{sale("yesterday", 90, clock.Now())}

	ledger.RecordSale(ctx, sale("a", 380, clock.Now()))
	require.NoError(t, ledger.ClearToday(ctx))

	assert.Equal(t, []string{"2025-03-14"}, store.Deleted)
	_, exists := store.Days["2025-03-14"]
	assert.False(t, exists)
	assert.Equal(t, 0, ledger.DailyTotals(ctx).Count)
	assert.Len(t, store.Days["2025-03-13"], 1, "other days are untouched")
}

func TestSalesLedgerStorageFailures(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local))
	ledger, store := newTestLedger(clock)
	store.ErrSave = errors.New("disk full")
	store.ErrDelete = errors.New("disk full")

	ledger.RecordSale(ctx, sale("a", 380, clock.Now()))
	assert.Equal(t, int64(380), ledger.DailyTotals(ctx).Amount, "memory stays authoritative")

	err := ledger.ClearToday(ctx)
	assert.ErrorIs(t, err, apperror.ErrStorage)
	assert.Equal(t, 0, ledger.DailyTotals(ctx).Count)
}

func TestSalesLedgerFailedReadKeepsStoredSales(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local))
	ledger, store := newTestLedger(clock)
	store.Days["2025-03-14"] = []entity.SaleRecord{
		sale("a", 100, clock.Now()),
		sale("b", 100, clock.Now()),
		sale("c", 100, clock.Now()),
	}
	store.FailLoads = 2

	ledger.RecordSale(ctx, sale("d", 50, clock.Now()))
	assert.Len(t, store.Days["2025-03-14"], 3, "nothing written while the day is unread")

	_, err := ledger.RecordsFor(ctx, "2025-03-14")
	assert.ErrorIs(t, err, apperror.ErrStorage)

	totals := ledger.DailyTotals(ctx)
	assert.Equal(t, int64(350), totals.Amount)
	assert.Equal(t, 4, totals.Count)

	stored := store.Days["2025-03-14"]
	require.Len(t, stored, 4)
	assert.Equal(t, "a", stored[0].ID)
	assert.Equal(t, "d", stored[3].ID)

	loads := store.Loads
	ledger.RecordSale(ctx, sale("e", 50, clock.Now()))
	assert.Equal(t, loads, store.Loads, "a loaded day is not read again")
	assert.Len(t, store.Days["2025-03-14"], 5)

	restarted := NewSalesLedger(store, logger.NewNopLogger(), clock.Now, time.Second)
	assert.Equal(t, int64(450), restarted.DailyTotals(ctx).Amount)
}

func TestSalesLedgerFlushesHeldSalesAtRollover(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2025, 3, 14, 23, 59, 0, 0, time.Local))
	ledger, store := newTestLedger(clock)
	store.Days["2025-03-14"] = []entity.SaleRecord{sale("a", 100, clock.Now())}
	store.FailLoads = 1

	ledger.RecordSale(ctx, sale("late", 80, clock.Now()))
	clock.Advance(2 * time.Minute)

	totals := ledger.DailyTotals(ctx)
	assert.Equal(t, "2025-03-15", totals.Day)
	assert.Equal(t, 0, totals.Count)

	stored := store.Days["2025-03-14"]
	require.Len(t, stored, 2)
	assert.Equal(t, "late", stored[1].ID)
}

func TestSalesLedgerRecordsForUnreadableDay(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock(time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local))
	ledger, store := newTestLedger(clock)
	ledger.DailyTotals(ctx)

	store.FailLoads = 1
	_, err := ledger.RecordsFor(ctx, "2025-03-10")
	assert.ErrorIs(t, err, apperror.ErrStorage)
}

func TestNewSaleIDIsUniqueAndOrdered(t *testing.T) {
	a, b := NewSaleID(), NewSaleID()
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
}
