package store

import (
	"context"
	"time"
)

// WithObserver wraps a store so every Apply reports its duration to
// observe. Loads pass through untouched. A nil observer returns the store
// as-is.
func WithObserver(s Store, observe func(time.Duration)) Store {
	if observe == nil {
		return s
	}
	return &observedStore{next: s, observe: observe}
}

type observedStore struct {
	next    Store
	observe func(time.Duration)
}

func (o *observedStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return o.next.Load(ctx, key)
}

func (o *observedStore) Apply(ctx context.Context, batch *Batch) error {
	start := time.Now()
	err := o.next.Apply(ctx, batch)
	o.observe(time.Since(start))
	return err
}

func (o *observedStore) Close() error {
	return o.next.Close()
}
