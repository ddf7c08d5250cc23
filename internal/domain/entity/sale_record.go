package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/sangkips/restaurant-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// DayLayout formats the local calendar date used to key the sales ledger
const DayLayout = "2006-01-02"

// DayKey returns the process-local calendar date of t
func DayKey(t time.Time) string {
	return t.Local().Format(DayLayout)
}

// SaleRecord is the immutable archive of one completed checkout
type SaleRecord struct {
	ID            string         `json:"id"`
	BillReference string         `json:"bill_reference"`
	ZoneID        ZoneID         `json:"zone_id"`
	BillLabel     string         `json:"bill_label"`
	OrderKind     enum.OrderKind `json:"order_kind"`
	Timestamp     time.Time      `json:"timestamp"`
	Amount        int64          `json:"amount"`
	ItemSummary   string         `json:"item_summary"`
}

// NewSaleRecord archives the bill as it stands at checkout
func NewSaleRecord(id string, zoneID ZoneID, bill Bill, at time.Time) SaleRecord {
	return SaleRecord{
		ID:            id,
		BillReference: BillReference(zoneID, bill.Label),
		ZoneID:        zoneID,
		BillLabel:     bill.Label,
		OrderKind:     zoneID.Kind().OrderKind(),
		Timestamp:     at,
		Amount:        bill.Total(),
		ItemSummary:   ItemSummary(bill.Items),
	}
}

// BillReference joins zone and bill label, e.g. "6-A" or "PARCEL-2"
func BillReference(zoneID ZoneID, label string) string {
	return fmt.Sprintf("%s-%s", zoneID, label)
}

// ItemSummary renders "2x Chicken, 1x Roti"
func ItemSummary(items []LineItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%dx %s", item.Quantity, item.Name)
	}
	return strings.Join(parts, ", ")
}

// DailyTotals summarises one ledger day
type DailyTotals struct {
	Day     string          `json:"day"`
	Amount  int64           `json:"amount"`
	Count   int             `json:"count"`
	Average decimal.Decimal `json:"average"`
}

// SumRecords computes the totals of a day's records
func SumRecords(day string, records []SaleRecord) DailyTotals {
	totals := DailyTotals{Day: day, Count: len(records), Average: decimal.Zero}
	for _, r := range records {
		totals.Amount += r.Amount
	}
	if totals.Count > 0 {
		totals.Average = decimal.NewFromInt(totals.Amount).
			Div(decimal.NewFromInt(int64(totals.Count))).
			Round(2)
	}
	return totals
}
