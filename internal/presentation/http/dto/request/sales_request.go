package request

// ClearSalesRequest carries the operator confirmation for a ledger purge
type ClearSalesRequest struct {
	Confirm bool `form:"confirm"`
}

// CatalogFilterRequest represents catalog filter parameters
type CatalogFilterRequest struct {
	Category string `form:"category"`
}
