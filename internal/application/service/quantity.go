package service

import (
	"strconv"
	"strings"
)

// QuantityMode is the direction chosen in the quantity entry dialog
type QuantityMode int

const (
	QuantityAdd QuantityMode = iota
	QuantityRemove
)

// ParseQuantityEntry turns operator input into a signed delta. Only a
// positive base-10 integer is accepted; anything else reports ok=false and
// the caller does nothing.
func ParseQuantityEntry(raw string, mode QuantityMode) (delta int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}
	if mode == QuantityRemove {
		return -n, true
	}
	return n, true
}
