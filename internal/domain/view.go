package domain

import "time"

// ViewInvalidation announces that the cached views of routes are stale for an owner
type ViewInvalidation struct {
	OwnerID string    `json:"owner_id"`
	Routes  []string  `json:"routes"`
	At      time.Time `json:"at"`
}
