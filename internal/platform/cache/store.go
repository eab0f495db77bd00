// Package cache provides a byte-value cache with pluggable backends. The
// service caches only upstream lookups such as token introspection;
// derived dashboard rows are recomputed from fresh reads on every request.
package cache

import (
	"context"
	"fmt"

	"github.com/nathanpradana/sportsdash/internal/platform/resilience"
)

// Store is a TTL-scoped key/value cache.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, key string)
}

// Loader wraps a Store with singleflight loading so concurrent misses on
// one key trigger a single upstream call.
type Loader struct {
	store  Store
	flight resilience.SingleFlight
}

func NewLoader(store Store) *Loader {
	return &Loader{store: store}
}

func (l *Loader) Delete(ctx context.Context, key string) {
	l.store.Delete(ctx, key)
}

func (l *Loader) GetOrLoad(ctx context.Context, key string, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if load == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return load(ctx)
	}

	if value, ok := l.store.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := l.flight.Do(key, func() (any, error) {
		if cached, ok := l.store.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := load(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		l.store.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	bytes, _ := value.([]byte)
	return bytes, nil
}
