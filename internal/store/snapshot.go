package store

import "context"

// Store maps snapshot keys to serialized JSON values. Load always consults
// the latest persisted state; implementations must not cache across calls.
// Apply commits a batch atomically with respect to readers and crashes.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Apply(ctx context.Context, batch *Batch) error
	Close() error
}
