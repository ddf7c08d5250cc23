package service

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	"github.com/sangkips/restaurant-pos/internal/domain/enum"
	"github.com/sangkips/restaurant-pos/internal/domain/repository"
	"github.com/sangkips/restaurant-pos/pkg/apperror"
	"github.com/sangkips/restaurant-pos/pkg/logger"
	"go.uber.org/zap"
)

// Engine errors
var (
	ErrUnknownZone    = apperror.NewNotFoundError("Zone")
	ErrUnknownItem    = apperror.NewNotFoundError("Menu item")
	ErrUnknownVariant = apperror.NewUnprocessableError("variant", "Variant is not offered for this item")
	ErrLineIndex      = apperror.NewAppError(http.StatusBadRequest, "Line item index out of range")
)

// SaleRecorder receives the sale archived by a checkout
type SaleRecorder interface {
	RecordSale(ctx context.Context, record entity.SaleRecord)
}

// EngineOptions configures an OrderEngine
type EngineOptions struct {
	Header       entity.ReceiptHeader
	StoreTimeout time.Duration
	Clock        Clock
}

// OrderEngine owns every zone and its bills. Operations run one at a time;
// each mutation is written through to the ZoneStore before it returns.
type OrderEngine struct {
	mu         sync.Mutex
	catalog    *entity.Catalog
	store      repository.ZoneStore
	sales      SaleRecorder
	log        logger.ZapLogger
	header     entity.ReceiptHeader
	now        Clock
	timeout    time.Duration
	zones      map[entity.ZoneID]entity.Zone
	activeZone entity.ZoneID
}

// NewOrderEngine creates an engine with one empty bill per configured zone
func NewOrderEngine(
	catalog *entity.Catalog,
	store repository.ZoneStore,
	sales SaleRecorder,
	log logger.ZapLogger,
	opts EngineOptions,
) *OrderEngine {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	e := &OrderEngine{
		catalog:    catalog,
		store:      store,
		sales:      sales,
		log:        log,
		header:     opts.Header,
		now:        opts.Clock,
		timeout:    opts.StoreTimeout,
		zones:      make(map[entity.ZoneID]entity.Zone),
		activeZone: entity.ZoneParcel,
	}
	for _, id := range catalog.ZoneIDs() {
		e.zones[id] = entity.NewZone(id)
	}
	return e
}

// ZoneSummary is the sidebar view of a zone
type ZoneSummary struct {
	ID          entity.ZoneID `json:"id"`
	Kind        string        `json:"kind"`
	BillCount   int           `json:"bill_count"`
	ActiveBills int           `json:"active_bills"`
	Occupied    bool          `json:"occupied"`
	Total       int64         `json:"total"`
	Selected    bool          `json:"selected"`
}

// CheckoutResult is the outcome of closing a bill
type CheckoutResult struct {
	Receipt *entity.Receipt
	// Sale is nil when the bill total was zero
	Sale *entity.SaleRecord
	Zone entity.Zone
}

// Restore merges the persisted snapshot over the default zones. Zones that
// are no longer in the floor plan are dropped and damaged ones repaired.
func (e *OrderEngine) Restore(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	saved := e.store.Load(ctx)
	restored := 0
	for id, zone := range saved {
		if _, ok := e.zones[id]; !ok {
			e.log.Warn("Dropping saved zone not in floor plan", zap.String("zone_id", string(id)))
			continue
		}
		e.zones[id] = zone.Repair(id)
		restored++
	}
	e.log.Info("Zone state restored", zap.Int("zones", restored))
}

// Flush writes the current snapshot, reporting any storage error
func (e *OrderEngine) Flush(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, cancel := storeContext(ctx, e.timeout)
	defer cancel()
	return e.store.Save(ctx, maps.Clone(e.zones))
}

// Catalog returns the read-only menu
func (e *OrderEngine) Catalog() *entity.Catalog {
	return e.catalog
}

// TotalOf sums a bill without touching engine state
func (e *OrderEngine) TotalOf(b entity.Bill) int64 {
	return entity.TotalOf(b)
}

// AddItem merges delta units of item/variant into the zone's active bill
func (e *OrderEngine) AddItem(ctx context.Context, zoneID entity.ZoneID, item entity.MenuItem, variant string, unitPrice int64, delta int) (entity.Zone, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	zone, ok := e.zones[zoneID]
	if !ok {
		return entity.Zone{}, ErrUnknownZone
	}
	if delta == 0 {
		return zone, nil
	}

	zone = zone.WithActiveBill(zone.ActiveBill().Merge(item, variant, unitPrice, delta))
	e.commit(ctx, zone)
	return zone, nil
}

// AddCatalogItem resolves item and variant against the catalog and calls AddItem.
// An empty variant selects the only variant of a single-priced item.
func (e *OrderEngine) AddCatalogItem(ctx context.Context, zoneID entity.ZoneID, itemID int, variant string, delta int) (entity.Zone, error) {
	item, ok := e.catalog.Item(itemID)
	if !ok {
		return entity.Zone{}, ErrUnknownItem
	}

	if variant == "" {
		single, ok := item.SingleVariant()
		if !ok {
			return entity.Zone{}, ErrUnknownVariant
		}
		variant = single.Label
	}
	price, ok := item.Price(variant)
	if !ok {
		return entity.Zone{}, ErrUnknownVariant
	}

	return e.AddItem(ctx, zoneID, item, variant, price, delta)
}

// AdjustQuantity applies delta to the line at index of the active bill.
// An out-of-range index is a caller bug and panics.
func (e *OrderEngine) AdjustQuantity(ctx context.Context, zoneID entity.ZoneID, index, delta int) (entity.Zone, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	zone, ok := e.zones[zoneID]
	if !ok {
		return entity.Zone{}, ErrUnknownZone
	}
	return e.adjust(ctx, zone, index, delta), nil
}

// AdjustLine is AdjustQuantity for untrusted callers: the index is checked
// under the engine lock and reported as ErrLineIndex.
func (e *OrderEngine) AdjustLine(ctx context.Context, zoneID entity.ZoneID, index, delta int) (entity.Zone, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	zone, ok := e.zones[zoneID]
	if !ok {
		return entity.Zone{}, ErrUnknownZone
	}
	if index < 0 || index >= len(zone.ActiveBill().Items) {
		return entity.Zone{}, ErrLineIndex
	}
	return e.adjust(ctx, zone, index, delta), nil
}

func (e *OrderEngine) adjust(ctx context.Context, zone entity.Zone, index, delta int) entity.Zone {
	zone = zone.WithActiveBill(zone.ActiveBill().Adjust(index, delta))
	e.commit(ctx, zone)
	return zone
}

// OpenNewBill appends an empty bill with the next label and makes it active
func (e *OrderEngine) OpenNewBill(ctx context.Context, zoneID entity.ZoneID) (entity.Zone, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	zone, ok := e.zones[zoneID]
	if !ok {
		return entity.Zone{}, ErrUnknownZone
	}
	zone = zone.OpenNewBill()
	e.commit(ctx, zone)
	return zone, nil
}

// SwitchActiveBill selects another bill; out-of-range indexes change nothing
func (e *OrderEngine) SwitchActiveBill(ctx context.Context, zoneID entity.ZoneID, index int) (entity.Zone, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	zone, ok := e.zones[zoneID]
	if !ok {
		return entity.Zone{}, ErrUnknownZone
	}
	if index == zone.ActiveBillIndex {
		return zone, nil
	}
	switched := zone.SwitchActiveBill(index)
	if switched.ActiveBillIndex == zone.ActiveBillIndex {
		return zone, nil
	}
	e.commit(ctx, switched)
	return switched, nil
}

// SelectZone makes zoneID the active zone. Selecting SPECIAL while its active
// bill is empty seeds that bill with one Special item.
func (e *OrderEngine) SelectZone(ctx context.Context, zoneID entity.ZoneID) (entity.Zone, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	zone, ok := e.zones[zoneID]
	if !ok {
		return entity.Zone{}, ErrUnknownZone
	}
	e.activeZone = zoneID

	switch zoneID.Kind() {
	case enum.ZoneKindSpecial:
		if zone.ActiveBill().IsEmpty() {
			special := e.catalog.SpecialItem()
			variant, _ := special.SingleVariant()
			zone = zone.WithActiveBill(zone.ActiveBill().Merge(special, variant.Label, variant.Price, 1))
			e.commit(ctx, zone)
			e.log.Debug("Seeded special bill", zap.String("bill", zone.ActiveBill().Label))
		}
	case enum.ZoneKindParcel, enum.ZoneKindTable:
	}

	return zone, nil
}

// ActiveZone returns the id and state of the selected zone
func (e *OrderEngine) ActiveZone() entity.Zone {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.zones[e.activeZone]
}

// Zone returns the current state of one zone
func (e *OrderEngine) Zone(zoneID entity.ZoneID) (entity.Zone, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	zone, ok := e.zones[zoneID]
	if !ok {
		return entity.Zone{}, ErrUnknownZone
	}
	return zone, nil
}

// Zones summarises every zone in floor-plan order
func (e *OrderEngine) Zones() []ZoneSummary {
	e.mu.Lock()
	defer e.mu.Unlock()

	ids := e.catalog.ZoneIDs()
	out := make([]ZoneSummary, 0, len(ids))
	for _, id := range ids {
		zone := e.zones[id]
		var total int64
		for _, b := range zone.Bills {
			total += entity.TotalOf(b)
		}
		out = append(out, ZoneSummary{
			ID:          id,
			Kind:        id.Kind().String(),
			BillCount:   len(zone.Bills),
			ActiveBills: zone.OpenBillCount(),
			Occupied:    zone.Occupied(),
			Total:       total,
			Selected:    id == e.activeZone,
		})
	}
	return out
}

// Preview renders the active bill of a zone without closing it
func (e *OrderEngine) Preview(zoneID entity.ZoneID) (*entity.Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	zone, ok := e.zones[zoneID]
	if !ok {
		return nil, ErrUnknownZone
	}
	return e.receipt(zoneID, zone.ActiveBill(), e.now()), nil
}

// Checkout closes the active bill. A positive total is archived as one sale;
// the bill is then removed if it has siblings, otherwise emptied. Both steps
// happen under the engine lock so no caller sees one without the other.
func (e *OrderEngine) Checkout(ctx context.Context, zoneID entity.ZoneID) (*CheckoutResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	zone, ok := e.zones[zoneID]
	if !ok {
		return nil, ErrUnknownZone
	}

	at := e.now()
	bill := zone.ActiveBill()
	result := &CheckoutResult{Receipt: e.receipt(zoneID, bill, at)}

	if entity.TotalOf(bill) > 0 {
		sale := entity.NewSaleRecord(NewSaleID(), zoneID, bill, at)
		e.sales.RecordSale(ctx, sale)
		result.Sale = &sale
		e.log.Info("Bill checked out",
			zap.String("sale_id", sale.ID),
			zap.String("bill", sale.BillReference),
			zap.Int64("amount", sale.Amount),
		)
	}

	zone = zone.CloseActiveBill()
	e.commit(ctx, zone)
	result.Zone = zone
	return result, nil
}

func (e *OrderEngine) receipt(zoneID entity.ZoneID, bill entity.Bill, at time.Time) *entity.Receipt {
	r := entity.NewReceipt(zoneID, bill, at)
	r.Header = e.header
	return r
}

// commit stores the zone and writes the snapshot through. Storage errors are
// logged; the in-memory state stays authoritative.
func (e *OrderEngine) commit(ctx context.Context, zone entity.Zone) {
	e.zones[zone.ID] = zone

	ctx, cancel := storeContext(ctx, e.timeout)
	defer cancel()
	if err := e.store.Save(ctx, maps.Clone(e.zones)); err != nil {
		e.log.Error("Failed to save zone state", zap.String("zone_id", string(zone.ID)), zap.Error(err))
	}
}
