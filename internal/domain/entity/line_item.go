package entity

// LineItem is one priced row on a bill. Identity within a bill is (ItemID, VariantLabel).
type LineItem struct {
	ItemID       int    `json:"item_id"`
	Name         string `json:"name"`
	VariantLabel string `json:"variant"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	LineTotal    int64  `json:"line_total"`
}

// NewLineItem snapshots the item name so receipts survive catalog edits
func NewLineItem(item MenuItem, variant string, unitPrice int64, quantity int) LineItem {
	return LineItem{
		ItemID:       item.ID,
		Name:         item.Name,
		VariantLabel: variant,
		UnitPrice:    unitPrice,
		Quantity:     quantity,
		LineTotal:    unitPrice * int64(quantity),
	}
}

// Matches reports whether the line holds the given item and variant
func (l LineItem) Matches(itemID int, variant string) bool {
	return l.ItemID == itemID && l.VariantLabel == variant
}

func (l LineItem) withQuantity(quantity int) LineItem {
	l.Quantity = quantity
	l.LineTotal = l.UnitPrice * int64(quantity)
	return l
}
