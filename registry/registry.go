package registry

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/spweights/weights"
)

// Registry is the contract the algebra flow needs from a weights store.
type Registry interface {
	// GetGraph returns the graph associated with id.
	GetGraph(id uuid.UUID) (*weights.NeighborGraph, error)

	// RequestNewEntry reserves an entry described by meta and returns its id.
	RequestNewEntry(meta MetaInfo) (uuid.UUID, error)

	// AssociateGraph attaches g to a reserved entry; the registry takes ownership.
	AssociateGraph(id uuid.UUID, g *weights.NeighborGraph) error
}

// Option configures a Manager.
type Option func(*Manager)

// WithStore sets the GraphStore used for associated graphs.
// A nil store keeps the default MemoryStore.
func WithStore(s GraphStore) Option {
	return func(m *Manager) {
		if s != nil {
			m.store = s
		}
	}
}

// entry is the per-id registry record.
type entry struct {
	meta       MetaInfo
	associated bool
}

// Manager is an in-memory Registry with titles, removal, a default
// selection and change events.
//
// mu guards order, entries and def; subMu guards the subscriber set.
type Manager struct {
	mu      sync.RWMutex
	order   []uuid.UUID
	entries map[uuid.UUID]*entry
	def     uuid.UUID
	store   GraphStore

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int
	dropped atomic.Uint64
}

var _ Registry = (*Manager)(nil)

// New returns an empty Manager. Without WithStore graphs live in a MemoryStore.
func New(opts ...Option) *Manager {
	m := &Manager{
		entries: make(map[uuid.UUID]*entry),
		store:   NewMemoryStore(),
		subs:    make(map[int]chan Event),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RequestNewEntry reserves an entry for meta and returns its id. The entry
// is not visible to GetGraph, and no EventAdd is sent, until
// AssociateGraph succeeds. An empty title becomes "untitled". meta may be
// built with NewMetaInfo or as a literal; a zero NumObs or empty
// IDVariable is filled in from the graph.
func (m *Manager) RequestNewEntry(meta MetaInfo) (uuid.UUID, error) {
	if meta.Title == "" {
		meta.Title = "untitled"
	}
	id := uuid.New()

	m.mu.Lock()
	m.entries[id] = &entry{meta: meta}
	m.order = append(m.order, id)
	m.mu.Unlock()

	return id, nil
}

// AssociateGraph attaches g to the reserved entry id. Once stored, g is
// frozen and its degree statistics, node count, id variable and symmetry
// are recorded in the entry's metadata. On error g is left as it was.
//
// Errors:
//   - ErrNotFound for an unknown id, ErrNilGraph for a nil g.
//   - ErrAlreadyAssociated if the entry already has a graph.
//   - ErrNodeCountMismatch / ErrIDVariableMismatch if g contradicts the metadata.
//   - Store errors, wrapped.
func (m *Manager) AssociateGraph(id uuid.UUID, g *weights.NeighborGraph) error {
	if g == nil {
		return ErrNilGraph
	}

	m.mu.Lock()
	e, ok := m.entries[id]
	if !ok {
		m.mu.Unlock()
		return errors.Wrapf(ErrNotFound, "AssociateGraph(%s)", id)
	}
	if e.associated {
		m.mu.Unlock()
		return errors.Wrapf(ErrAlreadyAssociated, "AssociateGraph(%s)", id)
	}
	meta := e.meta
	if meta.NumObs > 0 && meta.NumObs != g.NodeCount() {
		m.mu.Unlock()
		return errors.Wrapf(ErrNodeCountMismatch, "entry has %d observations, graph %d nodes", meta.NumObs, g.NodeCount())
	}
	if meta.IDVariable != "" && meta.IDVariable != g.IDVariable() {
		m.mu.Unlock()
		return errors.Wrapf(ErrIDVariableMismatch, "entry %q, graph %q", meta.IDVariable, g.IDVariable())
	}

	if err := m.store.Put(id, g); err != nil {
		m.mu.Unlock()
		return errors.Wrapf(err, "AssociateGraph(%s): store", id)
	}
	g.Freeze()

	meta.NumObs = g.NodeCount()
	meta.IDVariable = g.IDVariable()
	if meta.Symmetry == SymmetryUnknown {
		if g.IsSymmetric() || g.CheckSymmetric() {
			meta.Symmetry = Symmetric
		} else {
			meta.Symmetry = Asymmetric
		}
	}
	if st, err := g.ComputeStatistics(); err == nil {
		meta.Stats = &st
	}
	e.meta = meta
	e.associated = true
	m.mu.Unlock()

	m.emit(EventAdd, id)

	return nil
}

// GetGraph returns the graph associated with id.
// Errors: ErrNotFound, ErrNotAssociated, or a wrapped store error.
func (m *Manager) GetGraph(id uuid.UUID) (*weights.NeighborGraph, error) {
	m.mu.RLock()
	e, ok := m.entries[id]
	associated := ok && e.associated
	m.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "GetGraph(%s)", id)
	}
	if !associated {
		return nil, errors.Wrapf(ErrNotAssociated, "GetGraph(%s)", id)
	}

	g, err := m.store.Get(id)
	if err != nil {
		return nil, errors.Wrapf(err, "GetGraph(%s): store", id)
	}

	return g, nil
}

// MetaInfo returns a copy of the metadata of id.
func (m *Manager) MetaInfo(id uuid.UUID) (MetaInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[id]
	if !ok {
		return MetaInfo{}, errors.Wrapf(ErrNotFound, "MetaInfo(%s)", id)
	}

	return e.meta, nil
}

// Title returns the title of id, or "" for unknown ids.
func (m *Manager) Title(id uuid.UUID) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e.meta.Title
	}

	return ""
}

// SetTitle renames id and sends EventRename.
func (m *Manager) SetTitle(id uuid.UUID, title string) error {
	m.mu.Lock()
	e, ok := m.entries[id]
	if !ok {
		m.mu.Unlock()
		return errors.Wrapf(ErrNotFound, "SetTitle(%s)", id)
	}
	e.meta.Title = title
	m.mu.Unlock()

	m.emit(EventRename, id)

	return nil
}

// SetFilename records where the entry's graph was saved.
func (m *Manager) SetFilename(id uuid.UUID, filename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return errors.Wrapf(ErrNotFound, "SetFilename(%s)", id)
	}
	e.meta.Filename = filename

	return nil
}

// IsInternalUse reports whether id is hidden from user-facing lists.
func (m *Manager) IsInternalUse(id uuid.UUID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[id]

	return ok && e.meta.InternalUse
}

// IDs returns every entry id in creation order, including entries still
// waiting for a graph and internal-use entries.
func (m *Manager) IDs() []uuid.UUID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]uuid.UUID(nil), m.order...)
}

// Default returns the default entry, or uuid.Nil when none is selected.
func (m *Manager) Default() uuid.UUID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.def
}

// MakeDefault selects id as the default entry and sends EventDefault if
// the selection changed. uuid.Nil clears the selection.
func (m *Manager) MakeDefault(id uuid.UUID) error {
	m.mu.Lock()
	if id != uuid.Nil {
		if _, ok := m.entries[id]; !ok {
			m.mu.Unlock()
			return errors.Wrapf(ErrNotFound, "MakeDefault(%s)", id)
		}
	}
	changed := m.def != id
	m.def = id
	m.mu.Unlock()

	if changed {
		m.emit(EventDefault, id)
	}

	return nil
}

// Remove deletes id and its graph. If id was the default, the first
// remaining user-visible entry becomes the default (or none).
// Sends EventRemove, then EventDefault when the default moved.
func (m *Manager) Remove(id uuid.UUID) error {
	m.mu.Lock()
	if _, ok := m.entries[id]; !ok {
		m.mu.Unlock()
		return errors.Wrapf(ErrNotFound, "Remove(%s)", id)
	}
	if err := m.store.Delete(id); err != nil {
		m.mu.Unlock()
		return errors.Wrapf(err, "Remove(%s): store", id)
	}
	delete(m.entries, id)
	for i, x := range m.order {
		if x == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	defaultMoved := false
	if m.def == id {
		m.def = uuid.Nil
		for _, x := range m.order {
			if !m.entries[x].meta.InternalUse {
				m.def = x
				break
			}
		}
		defaultMoved = true
	}
	newDefault := m.def
	m.mu.Unlock()

	m.emit(EventRemove, id)
	if defaultMoved {
		m.emit(EventDefault, newDefault)
	}

	return nil
}
