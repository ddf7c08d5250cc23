package entity

import (
	"fmt"
	"maps"

	"github.com/sangkips/restaurant-pos/internal/domain/enum"
)

// Variant labels used on bills and receipts
const (
	VariantFull   = "Full"
	VariantHalf   = "Half"
	VariantPlate  = "Plate"
	VariantSingle = "Single"
	VariantQty    = "Qty"
)

// Variant is one priced serving option of a menu item
type Variant struct {
	Label string `json:"label"`
	Price int64  `json:"price"`
}

// MenuItem is a catalog entry. Prices are whole rupees keyed by variant label.
type MenuItem struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Category      enum.Category    `json:"category"`
	DietType      enum.DietType    `json:"diet_type"`
	PriceVariants map[string]int64 `json:"price_variants"`
	// Bulk items can be added in arbitrary quantities from the menu card
	Bulk bool `json:"bulk"`
}

// Price returns the unit price of the given variant label
func (m MenuItem) Price(label string) (int64, bool) {
	p, ok := m.PriceVariants[label]
	return p, ok
}

// IsSplit reports whether the item is sold as Half/Full
func (m MenuItem) IsSplit() bool {
	_, full := m.PriceVariants[VariantFull]
	_, half := m.PriceVariants[VariantHalf]
	return full && half
}

// Variants returns the priced variants, Half before Full for split items
func (m MenuItem) Variants() []Variant {
	if m.IsSplit() {
		return []Variant{
			{Label: VariantHalf, Price: m.PriceVariants[VariantHalf]},
			{Label: VariantFull, Price: m.PriceVariants[VariantFull]},
		}
	}
	variants := make([]Variant, 0, len(m.PriceVariants))
	for label, price := range m.PriceVariants {
		variants = append(variants, Variant{Label: label, Price: price})
	}
	return variants
}

// SingleVariant returns the only variant of a single-priced item
func (m MenuItem) SingleVariant() (Variant, bool) {
	if len(m.PriceVariants) != 1 {
		return Variant{}, false
	}
	for label, price := range m.PriceVariants {
		return Variant{Label: label, Price: price}, true
	}
	return Variant{}, false
}

// Validate checks the variant set is either {Full, Half} or a single positive price
func (m MenuItem) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("menu item %d: name is required", m.ID)
	}
	switch {
	case len(m.PriceVariants) == 0:
		return fmt.Errorf("menu item %d: at least one priced variant is required", m.ID)
	case len(m.PriceVariants) == 2 && !m.IsSplit():
		return fmt.Errorf("menu item %d: two variants must be %s and %s", m.ID, VariantFull, VariantHalf)
	case len(m.PriceVariants) > 2:
		return fmt.Errorf("menu item %d: too many variants", m.ID)
	}
	for label, price := range m.PriceVariants {
		if price <= 0 {
			return fmt.Errorf("menu item %d: price for %s must be positive", m.ID, label)
		}
	}
	return nil
}

func (m MenuItem) clone() MenuItem {
	m.PriceVariants = maps.Clone(m.PriceVariants)
	return m
}
