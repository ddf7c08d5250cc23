package service

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	"github.com/sangkips/restaurant-pos/internal/domain/repository"
	"github.com/sangkips/restaurant-pos/pkg/apperror"
	"github.com/sangkips/restaurant-pos/pkg/logger"
	"github.com/sangkips/restaurant-pos/pkg/utils"
	"go.uber.org/zap"
)

var errLedgerUnread = errors.New("sales ledger not yet read from storage")

// Clock returns the current time. Services take one so tests can cross midnight.
type Clock func() time.Time

// SalesLedger is the day-keyed, append-only record of completed sales.
// The current day's records are cached and reloaded whenever the local date changes.
// Until the day has been read from storage, sales are held in memory and never
// written, so a failed read cannot overwrite stored records.
type SalesLedger struct {
	mu      sync.Mutex
	store   repository.LedgerStore
	log     logger.ZapLogger
	now     Clock
	timeout time.Duration

	day     string
	loaded  bool
	records []entity.SaleRecord
}

// NewSalesLedger creates a new sales ledger
func NewSalesLedger(store repository.LedgerStore, log logger.ZapLogger, now Clock, timeout time.Duration) *SalesLedger {
	if now == nil {
		now = time.Now
	}
	return &SalesLedger{
		store:   store,
		log:     log,
		now:     now,
		timeout: timeout,
	}
}

// NewSaleID returns a unique, time-ordered sale id
func NewSaleID() string {
	return utils.NewID()
}

// today switches the cache to the current local date and reads the day from
// storage until a read succeeds. Callers hold mu.
func (l *SalesLedger) today(ctx context.Context) string {
	day := entity.DayKey(l.now())
	if day != l.day {
		if !l.loaded && len(l.records) > 0 && !l.merge(ctx) {
			l.log.Error("Dropping unsaved sales of an unreadable day",
				zap.String("day", l.day), zap.Int("records", len(l.records)))
		}
		l.day = day
		l.loaded = false
		l.records = nil
	}
	if !l.loaded {
		l.merge(ctx)
	}
	return day
}

// merge reads the cached day from storage and appends the sales recorded
// while it was unreadable after the stored ones. Callers hold mu.
func (l *SalesLedger) merge(ctx context.Context) bool {
	stored, err := l.load(ctx, l.day)
	if err != nil {
		l.log.Warn("Failed to load sales ledger, will retry",
			zap.String("day", l.day), zap.Int("pending", len(l.records)), zap.Error(err))
		return false
	}

	pending := l.records
	l.records = append(stored, pending...)
	l.loaded = true
	if len(pending) > 0 {
		l.persist(ctx, l.day)
	}
	return true
}

// RecordSale appends a record to the current day, creating the day on first use
func (l *SalesLedger) RecordSale(ctx context.Context, record entity.SaleRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	day := l.today(ctx)
	l.records = append(slices.Clone(l.records), record)
	if !l.loaded {
		l.log.Warn("Sale kept in memory until the ledger can be read", zap.String("day", day), zap.String("sale_id", record.ID))
		return
	}
	l.persist(ctx, day)
}

// DailyTotals sums the current day's records
func (l *SalesLedger) DailyTotals(ctx context.Context) entity.DailyTotals {
	l.mu.Lock()
	defer l.mu.Unlock()

	day := l.today(ctx)
	return entity.SumRecords(day, l.records)
}

// Records returns a copy of the current day's records in sale order
func (l *SalesLedger) Records(ctx context.Context) []entity.SaleRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.today(ctx)
	return slices.Clone(l.records)
}

// RecordsFor returns the records of any day in YYYY-MM-DD form. It fails
// with ErrStorage when the day cannot be read.
func (l *SalesLedger) RecordsFor(ctx context.Context, day string) ([]entity.SaleRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if day == l.today(ctx) {
		if !l.loaded {
			return nil, apperror.Wrap(apperror.ErrStorage, errLedgerUnread)
		}
		return slices.Clone(l.records), nil
	}
	records, err := l.load(ctx, day)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrStorage, err)
	}
	return records, nil
}

// ClearToday drops every record of the current day and removes the day's
// persisted key. The in-memory ledger is cleared even if the delete fails.
func (l *SalesLedger) ClearToday(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	day := l.today(ctx)
	cleared := len(l.records)
	l.records = nil

	ctx, cancel := l.storeContext(ctx)
	defer cancel()
	if err := l.store.Delete(ctx, day); err != nil {
		l.log.Error("Failed to delete sales ledger", zap.String("day", day), zap.Error(err))
		return apperror.Wrap(apperror.ErrStorage, err)
	}

	l.loaded = true
	l.log.Info("Sales ledger cleared", zap.String("day", day), zap.Int("records", cleared))
	return nil
}

func (l *SalesLedger) load(ctx context.Context, day string) ([]entity.SaleRecord, error) {
	ctx, cancel := l.storeContext(ctx)
	defer cancel()
	return l.store.Load(ctx, day)
}

func (l *SalesLedger) persist(ctx context.Context, day string) {
	ctx, cancel := l.storeContext(ctx)
	defer cancel()
	if err := l.store.Save(ctx, day, l.records); err != nil {
		l.log.Error("Failed to save sales ledger", zap.String("day", day), zap.Error(err))
	}
}

func (l *SalesLedger) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return storeContext(ctx, l.timeout)
}

// storeContext detaches persistence from request cancellation and bounds it
func storeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
