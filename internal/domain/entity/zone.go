package entity

import (
	"slices"
	"strconv"

	"github.com/sangkips/restaurant-pos/internal/domain/enum"
)

// ZoneID identifies a billing location: a table number, PARCEL or SPECIAL
type ZoneID string

const (
	ZoneParcel  ZoneID = "PARCEL"
	ZoneSpecial ZoneID = "SPECIAL"
)

// Kind dispatches a zone id to its variant
func (id ZoneID) Kind() enum.ZoneKind {
	switch id {
	case ZoneParcel:
		return enum.ZoneKindParcel
	case ZoneSpecial:
		return enum.ZoneKindSpecial
	default:
		return enum.ZoneKindTable
	}
}

// Zone owns the concurrently open bills of one location.
// ActiveBillIndex always points into Bills.
type Zone struct {
	ID              ZoneID `json:"id"`
	Bills           []Bill `json:"bills"`
	ActiveBillIndex int    `json:"active_bill_index"`
}

// NewZone creates a zone holding one empty bill
func NewZone(id ZoneID) Zone {
	return Zone{
		ID:              id,
		Bills:           []Bill{NewBill(billLabel(id.Kind(), 0))},
		ActiveBillIndex: 0,
	}
}

// ActiveBill returns the bill the operator is working on
func (z Zone) ActiveBill() Bill {
	return z.Bills[z.ActiveBillIndex]
}

// Occupied reports whether any bill has items
func (z Zone) Occupied() bool {
	return z.OpenBillCount() > 0
}

// OpenBillCount counts bills that have at least one item
func (z Zone) OpenBillCount() int {
	n := 0
	for _, b := range z.Bills {
		if !b.IsEmpty() {
			n++
		}
	}
	return n
}

// WithActiveBill returns a copy of the zone with the active bill replaced
func (z Zone) WithActiveBill(b Bill) Zone {
	bills := slices.Clone(z.Bills)
	bills[z.ActiveBillIndex] = b
	z.Bills = bills
	return z
}

// OpenNewBill appends an empty bill with the next label and activates it
func (z Zone) OpenNewBill() Zone {
	label := NextBillLabel(z.ID.Kind(), z.Bills)
	z.Bills = append(slices.Clone(z.Bills), NewBill(label))
	z.ActiveBillIndex = len(z.Bills) - 1
	return z
}

// SwitchActiveBill selects another bill; out-of-range indexes are ignored
func (z Zone) SwitchActiveBill(index int) Zone {
	if index < 0 || index >= len(z.Bills) {
		return z
	}
	z.ActiveBillIndex = index
	return z
}

// CloseActiveBill removes the active bill when siblings exist, otherwise empties it
func (z Zone) CloseActiveBill() Zone {
	if len(z.Bills) > 1 {
		z.Bills = slices.Delete(slices.Clone(z.Bills), z.ActiveBillIndex, z.ActiveBillIndex+1)
		z.ActiveBillIndex = 0
		return z
	}
	return z.WithActiveBill(z.ActiveBill().Clear())
}

// Repair restores the zone invariants on data loaded from storage
func (z Zone) Repair(id ZoneID) Zone {
	z.ID = id
	bills := make([]Bill, 0, len(z.Bills))
	for _, b := range z.Bills {
		if b.Label == "" {
			b.Label = NextBillLabel(id.Kind(), bills)
		}
		bills = append(bills, b.normalize())
	}
	if len(bills) == 0 {
		return NewZone(id)
	}
	z.Bills = bills
	if z.ActiveBillIndex < 0 || z.ActiveBillIndex >= len(bills) {
		z.ActiveBillIndex = 0
	}
	return z
}

// NextBillLabel returns the label after the highest one in use, so labels
// stay unique after bills are checked out: 1, 2, 3... for virtual zones and
// A, B, ... Z, AA for tables.
func NextBillLabel(kind enum.ZoneKind, bills []Bill) string {
	next := 0
	for _, b := range bills {
		if n, ok := billLabelIndex(kind, b.Label); ok && n+1 > next {
			next = n + 1
		}
	}
	return billLabel(kind, next)
}

func billLabel(kind enum.ZoneKind, n int) string {
	if kind.Virtual() {
		return strconv.Itoa(n + 1)
	}
	var out []byte
	for n++; n > 0; n = (n - 1) / 26 {
		out = append([]byte{byte('A' + (n-1)%26)}, out...)
	}
	return string(out)
}

func billLabelIndex(kind enum.ZoneKind, label string) (int, bool) {
	if kind.Virtual() {
		n, err := strconv.Atoi(label)
		if err != nil || n < 1 {
			return 0, false
		}
		return n - 1, true
	}
	if label == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(label); i++ {
		ch := label[i]
		if ch < 'A' || ch > 'Z' {
			return 0, false
		}
		n = n*26 + int(ch-'A'+1)
	}
	return n - 1, true
}
