package registry

import (
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/spweights/weights"
)

// GraphStore holds the graphs associated with registry entries.
// Get must return ErrNotFound (or an error wrapping it, or the store's own
// not-found sentinel) for unknown ids.
type GraphStore interface {
	Put(id uuid.UUID, g *weights.NeighborGraph) error
	Get(id uuid.UUID) (*weights.NeighborGraph, error)
	Delete(id uuid.UUID) error
}

// MemoryStore is a GraphStore backed by a map. Graphs are stored by
// reference; the registry freezes them before Put.
type MemoryStore struct {
	mu     sync.RWMutex
	graphs map[uuid.UUID]*weights.NeighborGraph
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{graphs: make(map[uuid.UUID]*weights.NeighborGraph)}
}

// Put stores g under id, replacing any previous graph.
func (s *MemoryStore) Put(id uuid.UUID, g *weights.NeighborGraph) error {
	s.mu.Lock()
	s.graphs[id] = g
	s.mu.Unlock()

	return nil
}

// Get returns the graph stored under id or ErrNotFound.
func (s *MemoryStore) Get(id uuid.UUID) (*weights.NeighborGraph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.graphs[id]
	if !ok {
		return nil, ErrNotFound
	}

	return g, nil
}

// Delete removes id. Deleting an unknown id is a no-op.
func (s *MemoryStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	delete(s.graphs, id)
	s.mu.Unlock()

	return nil
}
