package utils

import (
	"github.com/google/uuid"
)

// NewID returns a time-ordered UUID string. Sale ids sort by checkout time.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// ValidID reports whether s parses as a UUID
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
