package weights

import "errors"

// Sentinel errors for NeighborGraph operations.
var (
	// ErrNegativeNodeCount indicates New was called with a negative node count.
	ErrNegativeNodeCount = errors.New("weights: node count must be >= 0")

	// ErrIndexOutOfRange indicates a node or neighbor index outside [0, node count).
	ErrIndexOutOfRange = errors.New("weights: index out of range")

	// ErrEmptyGraph indicates degree statistics were requested for a graph with no nodes.
	ErrEmptyGraph = errors.New("weights: graph has no nodes")

	// ErrFrozen indicates a mutation was attempted on a graph that has been handed over.
	ErrFrozen = errors.New("weights: graph is frozen")

	// ErrBadEncoding indicates Decode received bytes that are not a graph snapshot.
	ErrBadEncoding = errors.New("weights: bad graph encoding")
)
