package service

import (
	"testing"

	"github.com/sangkips/restaurant-pos/internal/infrastructure/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogServiceListItems(t *testing.T) {
	svc := NewCatalogService(catalog.Default())

	all, err := svc.ListItems("")
	require.NoError(t, err)
	assert.Len(t, all.Items, 20)
	assert.Equal(t, CategoryAll, all.Category)
	assert.Equal(t, 20, all.SpecialItemID)

	rice, err := svc.ListItems("Rice")
	require.NoError(t, err)
	require.Len(t, rice.Items, 3)
	assert.Equal(t, "Plain Rice", rice.Items[0].Name)

	breads, err := svc.ListItems("Breads")
	require.NoError(t, err)
	require.Len(t, breads.Items, 1)
	assert.True(t, breads.Items[0].Bulk)

	_, err = svc.ListItems("Desserts")
	assert.Error(t, err)
}

func TestCatalogServiceCategories(t *testing.T) {
	svc := NewCatalogService(catalog.Default())
	assert.Equal(t, []string{"All", "Main Course", "Rice", "Breads", "Sides"}, svc.Categories())

	_, err := svc.GetItem(5)
	assert.ErrorIs(t, err, ErrUnknownItem)

	item, err := svc.GetItem(1)
	require.NoError(t, err)
	assert.Equal(t, "Khur (Paya)", item.Name)
}
