package loader

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

var ErrUnknownSource = errors.New("unknown source kind")

// Factory creates a Loader for one source kind.
type Factory func(ctx context.Context, cfg SourceConfig) (Loader, error)

// Registry manages source factories keyed by kind.
type Registry interface {
	// Register adds a new source factory
	Register(kind string, factory Factory) error
	// Create instantiates a loader for cfg.Kind
	Create(ctx context.Context, cfg SourceConfig) (Loader, error)
	// ListKinds returns the registered kinds, sorted
	ListKinds() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry(factories map[string]Factory) (Registry, error) {
	r := &registry{factories: make(map[string]Factory)}
	for kind, f := range factories {
		if err := r.Register(kind, f); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewDefaultRegistry registers every built-in source kind.
func NewDefaultRegistry() Registry {
	r, _ := NewRegistry(map[string]Factory{
		KindFile:   NewFileLoader,
		KindHTTP:   NewHTTPLoader,
		KindS3:     NewS3Loader,
		KindSQL:    NewSQLLoader,
		KindDuckDB: NewDuckDBLoader,
	})
	return r
}

func (r *registry) Register(kind string, factory Factory) error {
	if kind == "" {
		return fmt.Errorf("source kind cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("source kind %q is already registered", kind)
	}
	r.factories[kind] = factory
	return nil
}

func (r *registry) Create(ctx context.Context, cfg SourceConfig) (Loader, error) {
	r.mu.RLock()
	factory, exists := r.factories[cfg.Kind]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownSource, cfg.Kind, r.ListKinds())
	}
	return factory(ctx, cfg)
}

func (r *registry) ListKinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}
