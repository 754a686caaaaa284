// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written or has
// been deleted. Absence is an expected outcome for callers (empty cart, no
// active session), so it is a sentinel rather than a hard failure.
var ErrNotFound = errors.New("storage: key not found")

// Store is the key/value persistence boundary for all mutable storefront
// state. Values are JSON blobs; the domain stores own serialization.
// Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// HealthChecker is implemented by backends that can report connectivity.
type HealthChecker interface {
	Health() error
}
