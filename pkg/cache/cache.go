// Package cache stores rendered artifacts between runs.
//
// The snapshot pipeline renders every frame of every transition. A frame is
// fully determined by the snapshot sequence up to and including its own
// snapshot and by the render options, so frames are cached under a key
// derived from both (see [Keyer]). Re-running the same sequence is then
// cheap, and appending a snapshot only renders the new frames.
//
// Backends:
//   - [FileCache] stores entries as files for CLI usage
//   - [NullCache] never stores anything (caching disabled)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Default time-to-live values per entry kind.
const (
	TTLDataset  = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// NullCache never stores anything. Runners without a cache use it.
type NullCache struct{}

// NewNullCache returns a cache that always misses.
func NewNullCache() *NullCache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (*NullCache) Delete(context.Context, string) error                     { return nil }
func (*NullCache) Close() error                                             { return nil }

var _ Cache = (*NullCache)(nil)
