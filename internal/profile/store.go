package profile

import (
	"context"
	"time"
)

// Record is the denormalized user profile keyed by backend account id.
// Created on first successful bridge, updated on every subsequent one,
// never deleted by this flow.
type Record struct {
	AccountID   string
	DisplayName string
	LineUserID  string
	UpdatedAt   time.Time
}

type Store interface {
	// Upsert inserts the record or updates its mutable fields in place.
	// Running it twice with identical inputs leaves the stored state
	// unchanged.
	Upsert(ctx context.Context, accountID, displayName, lineUserID string) error
	Get(ctx context.Context, accountID string) (*Record, error)
}
