package request

// SelectZoneRequest selects the active zone
type SelectZoneRequest struct {
	ZoneID string `json:"zone_id" binding:"required,max=32"`
}

// SwitchBillRequest selects a bill tab within a zone
type SwitchBillRequest struct {
	Index *int `json:"index" binding:"required"`
}

// AddItemRequest adds a menu item to the active bill.
// Quantity is the raw dialog entry; empty means one unit.
type AddItemRequest struct {
	ItemID   int    `json:"item_id" binding:"required,min=1"`
	Variant  string `json:"variant" binding:"omitempty,max=16"`
	Quantity string `json:"quantity" binding:"omitempty,max=9"`
	Remove   bool   `json:"remove"`
}

// AdjustQuantityRequest changes one line of the active bill. Delta comes from
// the stepper buttons; Quantity and Remove come from the entry dialog.
type AdjustQuantityRequest struct {
	Delta    *int   `json:"delta" binding:"omitempty,min=-999,max=999"`
	Quantity string `json:"quantity" binding:"omitempty,max=9"`
	Remove   bool   `json:"remove"`
}
