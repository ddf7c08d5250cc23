package entity

import (
	"fmt"
	"time"

	"github.com/sangkips/restaurant-pos/internal/domain/enum"
)

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Footer    string `json:"footer,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name         string `json:"name"`
	VariantLabel string `json:"variant"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unit_price"`
	LineTotal    int64  `json:"line_total"`
}

// ShowVariant is false for single-priced items, whose label carries no information
func (i ReceiptItem) ShowVariant() bool {
	return i.VariantLabel != VariantPlate && i.VariantLabel != VariantSingle && i.VariantLabel != ""
}

// Receipt is a read-only view of a bill handed to the receipt renderer.
// It is composed from zone state at preview or checkout time and never stored.
type Receipt struct {
	Header        ReceiptHeader  `json:"header"`
	BillReference string         `json:"bill_reference"`
	Title         string         `json:"title"`
	OrderKind     enum.OrderKind `json:"order_kind"`
	IssuedAt      time.Time      `json:"issued_at"`
	Items         []ReceiptItem  `json:"items"`
	Total         int64          `json:"total"`
}

// NewReceipt builds the receipt view of a bill
func NewReceipt(zoneID ZoneID, bill Bill, at time.Time) *Receipt {
	r := &Receipt{
		BillReference: BillReference(zoneID, bill.Label),
		Title:         ReceiptTitle(zoneID, bill.Label),
		OrderKind:     zoneID.Kind().OrderKind(),
		IssuedAt:      at,
		Items:         make([]ReceiptItem, 0, len(bill.Items)),
		Total:         TotalOf(bill),
	}
	for _, item := range bill.Items {
		r.Items = append(r.Items, ReceiptItem{
			Name:         item.Name,
			VariantLabel: item.VariantLabel,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			LineTotal:    item.LineTotal,
		})
	}
	return r
}

// ReceiptTitle is the heading line for a bill, e.g. "TABLE 6 / Guest A"
func ReceiptTitle(zoneID ZoneID, label string) string {
	switch zoneID.Kind() {
	case enum.ZoneKindParcel:
		return fmt.Sprintf("PARCEL ORDER #%s", label)
	case enum.ZoneKindSpecial:
		return fmt.Sprintf("SPECIAL ORDER #%s", label)
	case enum.ZoneKindTable:
		return fmt.Sprintf("TABLE %s / Guest %s", zoneID, label)
	}
	panic("entity: unhandled zone kind")
}
