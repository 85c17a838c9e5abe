package bookseek

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Registry holds the registered sources, keyed by prefix. It implements the
// host side of the plugin contract: registration, lookup, and fanning one
// query out across every source.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]Source
	order   []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// Register adds a source under its prefix. Registering the same prefix
// again replaces the earlier source but keeps its position in List.
func (r *Registry) Register(s Source) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := s.Prefix()
	if _, ok := r.sources[prefix]; !ok {
		r.order = append(r.order, prefix)
	}
	r.sources[prefix] = s
}

// Get returns the source registered under prefix, or nil if none is.
func (r *Registry) Get(prefix string) Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sources[prefix]
}

// List returns the registered prefixes in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefixes := make([]string, len(r.order))
	copy(prefixes, r.order)
	return prefixes
}

// SearchAll runs one query against every registered source concurrently and
// returns the results keyed by prefix. Sources keep their failures to
// themselves (see Source.LastError), so a failing source contributes an
// empty slice without affecting the others.
func (r *Registry) SearchAll(ctx context.Context, query, category string) map[string][]Record {
	r.mu.RLock()
	prefixes := make([]string, len(r.order))
	copy(prefixes, r.order)
	sources := make(map[string]Source, len(prefixes))
	for _, prefix := range prefixes {
		sources[prefix] = r.sources[prefix]
	}
	r.mu.RUnlock()

	var mu sync.Mutex
	results := make(map[string][]Record, len(prefixes))

	g, ctx := errgroup.WithContext(ctx)
	for _, prefix := range prefixes {
		prefix := prefix
		source := sources[prefix]
		g.Go(func() error {
			records := source.Search(ctx, query, category)
			mu.Lock()
			results[prefix] = records
			mu.Unlock()
			return nil
		})
	}

	// Sources never return errors; Wait only synchronizes the group.
	_ = g.Wait()

	return results
}
