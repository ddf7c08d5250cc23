package entity

import (
	"fmt"

	"github.com/sangkips/restaurant-pos/internal/domain/enum"
)

// Catalog is the read-only menu and floor plan supplied at startup.
type Catalog struct {
	version       string
	items         []MenuItem
	byID          map[int]int
	specialItemID int
	tableIDs      []ZoneID
}

// NewCatalog validates the items and floor plan and builds a Catalog
func NewCatalog(version string, items []MenuItem, specialItemID int, tableIDs []string) (*Catalog, error) {
	c := &Catalog{
		version:       version,
		items:         make([]MenuItem, 0, len(items)),
		byID:          make(map[int]int, len(items)),
		specialItemID: specialItemID,
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate item id %d", item.ID)
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item.clone())
	}

	special, ok := c.Item(specialItemID)
	if !ok {
		return nil, fmt.Errorf("catalog: special item %d not found", specialItemID)
	}
	if _, single := special.SingleVariant(); !single {
		return nil, fmt.Errorf("catalog: special item %d must have exactly one price", specialItemID)
	}

	seen := make(map[ZoneID]bool, len(tableIDs))
	for _, raw := range tableIDs {
		id := ZoneID(raw)
		if id == "" || id.Kind() != enum.ZoneKindTable {
			return nil, fmt.Errorf("catalog: invalid table id %q", raw)
		}
		if seen[id] {
			return nil, fmt.Errorf("catalog: duplicate table id %q", raw)
		}
		seen[id] = true
		c.tableIDs = append(c.tableIDs, id)
	}

	return c, nil
}

// Version identifies the catalog revision
func (c *Catalog) Version() string {
	return c.version
}

// Items returns all items in catalog order
func (c *Catalog) Items() []MenuItem {
	out := make([]MenuItem, len(c.items))
	for i, item := range c.items {
		out[i] = item.clone()
	}
	return out
}

// Item looks up an item by id
func (c *Catalog) Item(id int) (MenuItem, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return MenuItem{}, false
	}
	return c.items[idx].clone(), true
}

// ByCategory returns the items of one category in catalog order
func (c *Catalog) ByCategory(category enum.Category) []MenuItem {
	var out []MenuItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item.clone())
		}
	}
	return out
}

// SpecialItem is the fixed-price item seeded into empty SPECIAL bills
func (c *Catalog) SpecialItem() MenuItem {
	item, _ := c.Item(c.specialItemID)
	return item
}

// TableIDs returns the physical tables in floor-plan order
func (c *Catalog) TableIDs() []ZoneID {
	return append([]ZoneID(nil), c.tableIDs...)
}

// ZoneIDs returns PARCEL, SPECIAL and then every table
func (c *Catalog) ZoneIDs() []ZoneID {
	ids := make([]ZoneID, 0, len(c.tableIDs)+2)
	ids = append(ids, ZoneParcel, ZoneSpecial)
	return append(ids, c.tableIDs...)
}
