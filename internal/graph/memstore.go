package graph

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Compile-time assertion: *MemStore satisfies Store.
var _ Store = (*MemStore)(nil)

// MemStore implements Store using a Go map. Thread-safe via sync.RWMutex.
// Graphs are immutable, so stored pointers are shared with callers.
type MemStore struct {
	mu     sync.RWMutex
	graphs map[string]*Graph
}

// NewMemStore returns an initialized MemStore ready for use.
func NewMemStore() *MemStore {
	return &MemStore{graphs: make(map[string]*Graph)}
}

// InitSchema is a no-op for the in-memory store.
func (m *MemStore) InitSchema(_ context.Context) error {
	return nil
}

// SaveGraph stores g keyed by name.
func (m *MemStore) SaveGraph(_ context.Context, name string, g *Graph) error {
	if err := g.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.graphs[name] = g
	return nil
}

// LoadGraph returns the graph stored under name as it was saved; opts are
// ignored since nothing is rebuilt.
func (m *MemStore) LoadGraph(_ context.Context, name string, _ ...Option) (*Graph, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.graphs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	return g, nil
}

// ListGraphs returns a summary of every stored graph, sorted by name.
func (m *MemStore) ListGraphs(_ context.Context) ([]GraphInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]GraphInfo, 0, len(m.graphs))
	for name, g := range m.graphs {
		out = append(out, Info(name, g))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeleteGraph removes the graph stored under name.
func (m *MemStore) DeleteGraph(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.graphs, name)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error {
	return nil
}
