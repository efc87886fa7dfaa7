// Package store keeps per-login portal state for as long as the login lasts.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/temitayo1239/student-information-portal-main/internal/portal"
)

// ErrNotFound is returned for a session that never existed, expired or was
// deleted.
var ErrNotFound = errors.New("session state not found")

// Store holds one portal snapshot per session id.
type Store interface {
	// Create stores a new snapshot that expires after ttl.
	Create(ctx context.Context, id string, snap portal.Snapshot, ttl time.Duration) error
	// Load returns the snapshot for id.
	Load(ctx context.Context, id string) (portal.Snapshot, error)
	// Update replaces an existing snapshot and keeps its expiry.
	Update(ctx context.Context, id string, snap portal.Snapshot) error
	// Delete removes the snapshot. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
	// Count returns how many live sessions the store holds.
	Count(ctx context.Context) (int, error)
}
