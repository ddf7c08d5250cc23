package service

import (
	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	"github.com/sangkips/restaurant-pos/internal/domain/enum"
	"github.com/sangkips/restaurant-pos/pkg/apperror"
)

// CategoryAll is the filter value that lists every menu item
const CategoryAll = "All"

// CatalogService serves the read-only menu
type CatalogService struct {
	catalog *entity.Catalog
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog *entity.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// CatalogView is the menu as shown on the order screen
type CatalogView struct {
	Version       string            `json:"version"`
	Category      string            `json:"category"`
	SpecialItemID int               `json:"special_item_id"`
	Items         []entity.MenuItem `json:"items"`
}

// ListItems returns the menu filtered by category name; "" and "All" list everything
func (s *CatalogService) ListItems(category string) (*CatalogView, error) {
	view := &CatalogView{
		Version:       s.catalog.Version(),
		Category:      CategoryAll,
		SpecialItemID: s.catalog.SpecialItem().ID,
	}

	if category == "" || category == CategoryAll {
		view.Items = s.catalog.Items()
		return view, nil
	}

	c, ok := enum.ParseCategory(category)
	if !ok {
		return nil, apperror.NewBadRequestError("Unknown category: " + category)
	}
	view.Category = c.String()
	view.Items = s.catalog.ByCategory(c)
	if view.Items == nil {
		view.Items = []entity.MenuItem{}
	}
	return view, nil
}

// Categories returns the filter list, starting with All
func (s *CatalogService) Categories() []string {
	out := []string{CategoryAll}
	for _, c := range enum.Categories() {
		out = append(out, c.String())
	}
	return out
}

// GetItem looks up one menu item
func (s *CatalogService) GetItem(id int) (*entity.MenuItem, error) {
	item, ok := s.catalog.Item(id)
	if !ok {
		return nil, ErrUnknownItem
	}
	return &item, nil
}

// TableIDs returns the dining tables in floor-plan order
func (s *CatalogService) TableIDs() []entity.ZoneID {
	return s.catalog.TableIDs()
}
