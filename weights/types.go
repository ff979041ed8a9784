// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NeighborGraph and DegreeStats declarations plus constructors.
// Policy:
//   - Per-node sets are allocated once at construction; node count never changes.
//   - All fields are guarded by mu; the statistics cache is dropped on mutation.

package weights

import (
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"
)

// DegreeStats summarizes the neighbor counts of a NeighborGraph.
//
// Density is Edges / (n·(n−1)), the fraction of all possible directed
// node pairs that are connected. It is 0 for graphs with a single node.
type DegreeStats struct {
	Min      int     // smallest degree
	Max      int     // largest degree
	Mean     float64 // arithmetic mean degree
	Median   float64 // median degree (mean of the middle pair for even n)
	Density  float64 // Edges / (n·(n−1))
	Edges    int     // total directed edges (sum of degrees)
	Isolates int     // nodes with no neighbors
}

// NeighborGraph is a spatial-weights structure: a fixed number of nodes,
// each with an ordered, duplicate-free set of neighbor indices.
//
// mu guards every field. stats caches the last ComputeStatistics result
// and is reset to nil whenever a neighbor set changes.
type NeighborGraph struct {
	mu sync.RWMutex

	nodeCount  int
	idVariable string
	symmetric  bool // asserted, not verified; see CheckSymmetric
	frozen     bool

	// nbrs[i] holds the neighbors of node i as int values.
	nbrs []*treeset.Set

	stats *DegreeStats
}

// New allocates a NeighborGraph with nodeCount nodes, all without neighbors.
// The graph stays in builder mode until Freeze is called.
//
// Errors: ErrNegativeNodeCount if nodeCount < 0.
// Complexity: O(n).
func New(nodeCount int, idVariable string) (*NeighborGraph, error) {
	if nodeCount < 0 {
		return nil, errors.Wrapf(ErrNegativeNodeCount, "New(%d)", nodeCount)
	}

	return newGraph(nodeCount, idVariable), nil
}

// FromAdjacency builds a NeighborGraph whose node count is len(adj) and
// whose neighbor sets are the entries of adj. Duplicates collapse.
//
// Errors: ErrIndexOutOfRange for any entry outside [0, len(adj)).
// Complexity: O(E log d).
func FromAdjacency(idVariable string, adj [][]int) (*NeighborGraph, error) {
	g := newGraph(len(adj), idVariable)
	for i, row := range adj {
		for _, j := range row {
			if err := g.AddNeighbor(i, j); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// MustFromAdjacency is FromAdjacency for fixtures known to be valid.
// It panics on error.
func MustFromAdjacency(idVariable string, adj [][]int) *NeighborGraph {
	g, err := FromAdjacency(idVariable, adj)
	if err != nil {
		panic(err)
	}

	return g
}

func newGraph(nodeCount int, idVariable string) *NeighborGraph {
	nbrs := make([]*treeset.Set, nodeCount)
	for i := range nbrs {
		nbrs[i] = treeset.NewWithIntComparator()
	}

	return &NeighborGraph{
		nodeCount:  nodeCount,
		idVariable: idVariable,
		nbrs:       nbrs,
	}
}
