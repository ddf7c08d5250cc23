package entity

import (
	"time"
)

// IdempotencyKey stores a processed request so a retried checkout is replayed
// instead of closing the next bill.
type IdempotencyKey struct {
	Key          string    `json:"key"`      // The idempotency key from client
	Endpoint     string    `json:"endpoint"` // e.g. "POST /api/v1/zones/:id/checkout"
	ResponseCode int       `json:"response_code"`
	ResponseBody string    `json:"response_body"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
