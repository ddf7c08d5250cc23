package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	"github.com/sangkips/restaurant-pos/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.Items(), 20)
	assert.Len(t, c.TableIDs(), 14)
	assert.Equal(t, entity.ZoneID("11.2"), c.TableIDs()[13])

	special := c.SpecialItem()
	assert.Equal(t, "Special Order (1 Kg)", special.Name)
	v, ok := special.SingleVariant()
	require.True(t, ok)
	assert.Equal(t, entity.Variant{Label: entity.VariantSingle, Price: 400}, v)

	roti, ok := c.Item(17)
	require.True(t, ok)
	assert.True(t, roti.Bulk)
	assert.Equal(t, enum.CategoryBreads, roti.Category)
	price, ok := roti.Price(entity.VariantSingle)
	require.True(t, ok)
	assert.Equal(t, int64(10), price)

	water, ok := c.Item(21)
	require.True(t, ok)
	_, ok = water.Price(entity.VariantPlate)
	assert.True(t, ok, "single prices default to Plate")

	mutton, ok := c.Item(2)
	require.True(t, ok)
	assert.True(t, mutton.IsSplit())
	assert.Equal(t, []entity.Variant{{Label: "Half", Price: 180}, {Label: "Full", Price: 300}}, mutton.Variants())
	assert.Equal(t, enum.DietTypeNonVeg, mutton.DietType)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	raw := `
version: test
specialItemId: 2
tables: ["1", "2"]
items:
  - {id: 1, name: Dal Fry, category: Main Course, type: veg, prices: {full: 150, half: 80}}
  - {id: 2, name: Thali, category: Main Course, type: veg, prices: {single: 200}, singleLabel: Single}
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", c.Version())
	assert.Equal(t, []entity.ZoneID{entity.ZoneParcel, entity.ZoneSpecial, "1", "2"}, c.ZoneIDs())
	assert.Equal(t, "Thali", c.SpecialItem().Name)

	def, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Version(), def.Version())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"bad yaml":         "items: [",
		"unknown category": `{specialItemId: 1, items: [{id: 1, name: A, category: Soup, type: veg, prices: {single: 5}}]}`,
		"unknown type":     `{specialItemId: 1, items: [{id: 1, name: A, category: Rice, type: vegan, prices: {single: 5}}]}`,
		"mixed prices":     `{specialItemId: 1, items: [{id: 1, name: A, category: Rice, type: veg, prices: {single: 5, full: 9}}]}`,
		"no prices":        `{specialItemId: 1, items: [{id: 1, name: A, category: Rice, type: veg}]}`,
		"missing special":  `{specialItemId: 9, items: [{id: 1, name: A, category: Rice, type: veg, prices: {single: 5}}]}`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.Error(t, err)
		})
	}
}
