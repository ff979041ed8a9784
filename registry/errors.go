package registry

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrNotFound indicates an unknown entry id.
	ErrNotFound = errors.New("registry: entry not found")

	// ErrNotAssociated indicates an entry that has no graph yet.
	ErrNotAssociated = errors.New("registry: no graph associated with entry")

	// ErrAlreadyAssociated indicates a second AssociateGraph for the same entry.
	ErrAlreadyAssociated = errors.New("registry: entry already has a graph")

	// ErrNilGraph indicates a nil graph was passed to AssociateGraph.
	ErrNilGraph = errors.New("registry: nil graph")

	// ErrNodeCountMismatch indicates the graph size differs from the entry's observation count.
	ErrNodeCountMismatch = errors.New("registry: graph node count differs from entry")

	// ErrIDVariableMismatch indicates the graph id variable differs from the entry's.
	ErrIDVariableMismatch = errors.New("registry: graph id variable differs from entry")
)
