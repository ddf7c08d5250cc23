package entity

import (
	"testing"

	"github.com/sangkips/restaurant-pos/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	chicken = MenuItem{
		ID: 3, Name: "Chicken", Category: enum.CategoryMainCourse, DietType: enum.DietTypeNonVeg,
		PriceVariants: map[string]int64{VariantFull: 250, VariantHalf: 150},
	}
	roti = MenuItem{
		ID: 17, Name: "Roti", Category: enum.CategoryBreads, DietType: enum.DietTypeVeg,
		PriceVariants: map[string]int64{VariantSingle: 10}, Bulk: true,
	}
)

func assertLineTotals(t *testing.T, b Bill) {
	t.Helper()
	for _, item := range b.Items {
		assert.Greater(t, item.Quantity, 0)
		assert.Equal(t, item.UnitPrice*int64(item.Quantity), item.LineTotal)
	}
}

func TestBillMerge(t *testing.T) {
	tests := []struct {
		name      string
		steps     []int
		wantQty   []int
		wantTotal int64
	}{
		{name: "single add", steps: []int{1}, wantQty: []int{1}, wantTotal: 250},
		{name: "same variant merges", steps: []int{2, 3}, wantQty: []int{5}, wantTotal: 1250},
		{name: "negative on missing line is ignored", steps: []int{-2}, wantQty: nil, wantTotal: 0},
		{name: "zero is a no-op", steps: []int{1, 0}, wantQty: []int{1}, wantTotal: 250},
		{name: "remove to zero drops the line", steps: []int{3, -3}, wantQty: nil, wantTotal: 0},
		{name: "remove below zero drops the line", steps: []int{1, -5}, wantQty: nil, wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBill("1")
			for _, delta := range tt.steps {
				b = b.Merge(chicken, VariantFull, 250, delta)
				assertLineTotals(t, b)
			}

			var qty []int
			for _, item := range b.Items {
				qty = append(qty, item.Quantity)
			}
			assert.Equal(t, tt.wantQty, qty)
			assert.Equal(t, tt.wantTotal, b.Total())
		})
	}
}

func TestBillMergeKeepsVariantsApart(t *testing.T) {
	b := NewBill("A").
		Merge(chicken, VariantFull, 250, 1).
		Merge(chicken, VariantHalf, 150, 2).
		Merge(roti, VariantSingle, 10, 4).
		Merge(chicken, VariantFull, 250, 1)

	require.Len(t, b.Items, 3)
	assert.Equal(t, VariantFull, b.Items[0].VariantLabel)
	assert.Equal(t, 2, b.Items[0].Quantity)
	assert.Equal(t, VariantHalf, b.Items[1].VariantLabel)
	assert.Equal(t, "Roti", b.Items[2].Name)
	assert.Equal(t, int64(500+300+40), b.Total())
	assert.Equal(t, b.Total(), TotalOf(b))
}

func TestBillIsValue(t *testing.T) {
	before := NewBill("1").Merge(chicken, VariantFull, 250, 1)
	after := before.Merge(chicken, VariantFull, 250, 1)
	adjusted := after.Adjust(0, 5)

	assert.Equal(t, 1, before.Items[0].Quantity)
	assert.Equal(t, 2, after.Items[0].Quantity)
	assert.Equal(t, 7, adjusted.Items[0].Quantity)
}

func TestBillAdjust(t *testing.T) {
	b := NewBill("1").Merge(chicken, VariantFull, 250, 1)

	b = b.Adjust(0, 2)
	assert.Equal(t, 3, b.Items[0].Quantity)
	assert.Equal(t, int64(750), b.Items[0].LineTotal)

	b = b.Adjust(0, -3)
	assert.True(t, b.IsEmpty())
	assert.Equal(t, int64(0), b.Total())
}

func TestBillAdjustOutOfRangePanics(t *testing.T) {
	b := NewBill("1").Merge(chicken, VariantFull, 250, 1)

	assert.Panics(t, func() { b.Adjust(1, 1) })
	assert.Panics(t, func() { b.Adjust(-1, 1) })
}

func TestBillClearKeepsLabel(t *testing.T) {
	b := NewBill("B").Merge(roti, VariantSingle, 10, 3).Clear()
	assert.Equal(t, "B", b.Label)
	assert.True(t, b.IsEmpty())
	assert.NotNil(t, b.Items)
}
