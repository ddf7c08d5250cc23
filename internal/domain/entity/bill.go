package entity

import (
	"fmt"
	"slices"
)

// Bill is one guest group's running order inside a zone. Bills are values:
// every mutation returns a new Bill and leaves the receiver untouched.
type Bill struct {
	Label string     `json:"label"`
	Items []LineItem `json:"items"`
}

// NewBill creates an empty bill
func NewBill(label string) Bill {
	return Bill{Label: label, Items: []LineItem{}}
}

// Total is the sum of all line totals
func (b Bill) Total() int64 {
	var total int64
	for _, item := range b.Items {
		total += item.LineTotal
	}
	return total
}

// TotalOf is the pure bill total used by renderers and checkout
func TotalOf(b Bill) int64 {
	return b.Total()
}

// IsEmpty reports whether the bill has no line items
func (b Bill) IsEmpty() bool {
	return len(b.Items) == 0
}

// Merge applies delta to the (item, variant) line. An existing line has its
// quantity changed and is dropped at zero or below; a missing line is appended
// only for a positive delta.
func (b Bill) Merge(item MenuItem, variant string, unitPrice int64, delta int) Bill {
	if delta == 0 {
		return b
	}
	items := slices.Clone(b.Items)
	idx := slices.IndexFunc(items, func(l LineItem) bool { return l.Matches(item.ID, variant) })

	if idx >= 0 {
		qty := items[idx].Quantity + delta
		if qty <= 0 {
			items = slices.Delete(items, idx, idx+1)
		} else {
			items[idx] = items[idx].withQuantity(qty)
		}
	} else if delta > 0 {
		items = append(items, NewLineItem(item, variant, unitPrice, delta))
	}

	b.Items = items
	return b
}

// Adjust changes the quantity of the line at index by delta, removing it at
// zero or below. An out-of-range index is a caller bug and panics.
func (b Bill) Adjust(index, delta int) Bill {
	if index < 0 || index >= len(b.Items) {
		panic(fmt.Sprintf("entity: line item index %d out of range [0,%d)", index, len(b.Items)))
	}
	items := slices.Clone(b.Items)
	qty := items[index].Quantity + delta
	if qty <= 0 {
		items = slices.Delete(items, index, index+1)
	} else {
		items[index] = items[index].withQuantity(qty)
	}
	b.Items = items
	return b
}

// Clear empties the bill and keeps its label
func (b Bill) Clear() Bill {
	b.Items = []LineItem{}
	return b
}

// normalize recomputes line totals and drops non-positive rows from restored data
func (b Bill) normalize() Bill {
	items := make([]LineItem, 0, len(b.Items))
	for _, item := range b.Items {
		if item.Quantity <= 0 {
			continue
		}
		items = append(items, item.withQuantity(item.Quantity))
	}
	b.Items = items
	return b
}
