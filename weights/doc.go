// Package weights provides NeighborGraph, the spatial-weights structure the
// rest of spweights operates on.
//
// A NeighborGraph G = (V, N) has a fixed node count |V| = n and, for every
// node i in [0, n), a duplicate-free set N(i) of neighbor indices. Each graph
// also carries the name of the table column used as the entity key (the "id
// variable"); two graphs may only be combined when they share it.
//
// Lifecycle:
//
//   - New / FromAdjacency allocate a graph in builder mode.
//   - AddNeighbor / SetSymmetric mutate it while it is being built.
//   - Freeze hands it over: every later mutation returns ErrFrozen.
//
// Queries:
//
//	NodeCount() int                      // O(1)
//	IDVariable() string                  // O(1)
//	HasNeighbor(i, j int) bool           // O(log d)
//	Neighbors(i int) ([]int, error)      // O(d), ascending
//	Degree(i int) (int, error)           // O(1)
//	EdgeCount() int                      // O(n)
//	ComputeStatistics() (DegreeStats, error) // O(n log n), cached
//	Isolates() []int                     // O(n)
//	Components() [][]int                 // O(n + E)
//	CheckSymmetric() bool                // O(E log d)
//
// Per-node sets are red-black trees (gods treeset), so iteration is always
// ascending and membership tests are logarithmic in the degree.
//
// Errors:
//
//	ErrNegativeNodeCount - New called with n < 0.
//	ErrIndexOutOfRange   - a node or neighbor index outside [0, n).
//	ErrEmptyGraph        - statistics requested for n == 0.
//	ErrFrozen            - mutation of a frozen graph.
//	ErrBadEncoding       - Decode input is not a valid graph snapshot.
package weights
