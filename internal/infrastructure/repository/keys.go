package repository

import "fmt"

// Keys builds the storage keys used on every KVStore backend
type Keys struct {
	Prefix string
}

// Zones is the key of the live zone snapshot
func (k Keys) Zones() string {
	return fmt.Sprintf("%s_current_tables", k.Prefix)
}

// Sales is the key of one day's sale records
func (k Keys) Sales(day string) string {
	return fmt.Sprintf("%s_sales_%s", k.Prefix, day)
}

// Idempotency is the key of a stored checkout response
func (k Keys) Idempotency(key string) string {
	return fmt.Sprintf("%s_idem_%s", k.Prefix, key)
}
