package weights

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"
)

// NodeCount returns the number of nodes fixed at construction.
func (g *NeighborGraph) NodeCount() int {
	return g.nodeCount
}

// IDVariable returns the name of the column used as the entity key.
func (g *NeighborGraph) IDVariable() string {
	return g.idVariable
}

// IsSymmetric reports the asserted symmetry flag. It is set by the builder
// (SetSymmetric) or by algebra operations that guarantee symmetry; use
// CheckSymmetric to verify it against the actual neighbor sets.
func (g *NeighborGraph) IsSymmetric() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.symmetric
}

// SetSymmetric asserts (or clears) the symmetry flag.
// Errors: ErrFrozen once the graph has been frozen.
func (g *NeighborGraph) SetSymmetric(symmetric bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return errors.Wrap(ErrFrozen, "SetSymmetric")
	}
	g.symmetric = symmetric

	return nil
}

// Freeze ends builder mode. Later calls to AddNeighbor or SetSymmetric
// fail with ErrFrozen. Freeze is idempotent and returns g for chaining.
func (g *NeighborGraph) Freeze() *NeighborGraph {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()

	return g
}

// Frozen reports whether Freeze has been called.
func (g *NeighborGraph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// AddNeighbor inserts neighbor into the neighbor set of node.
// Adding an existing neighbor is a no-op.
//
// Errors:
//   - ErrIndexOutOfRange if node or neighbor is outside [0, NodeCount()).
//   - ErrFrozen if the graph has been frozen.
//
// Complexity: O(log d).
func (g *NeighborGraph) AddNeighbor(node, neighbor int) error {
	if !g.inRange(node) || !g.inRange(neighbor) {
		return errors.Wrapf(ErrIndexOutOfRange, "AddNeighbor(%d, %d) with %d nodes", node, neighbor, g.nodeCount)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return errors.Wrapf(ErrFrozen, "AddNeighbor(%d, %d)", node, neighbor)
	}
	set := g.nbrs[node]
	if set.Contains(neighbor) {
		return nil
	}
	set.Add(neighbor)
	g.stats = nil

	return nil
}

// HasNeighbor reports whether candidate is in the neighbor set of node.
// Out-of-range indices report false.
// Complexity: O(log d).
func (g *NeighborGraph) HasNeighbor(node, candidate int) bool {
	if !g.inRange(node) || !g.inRange(candidate) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nbrs[node].Contains(candidate)
}

// Neighbors returns the neighbors of node in ascending order.
// The returned slice is a fresh copy.
//
// Errors: ErrIndexOutOfRange if node is outside [0, NodeCount()).
// Complexity: O(d).
func (g *NeighborGraph) Neighbors(node int) ([]int, error) {
	if !g.inRange(node) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "Neighbors(%d) with %d nodes", node, g.nodeCount)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return setToInts(g.nbrs[node]), nil
}

// Degree returns the number of neighbors of node.
// Errors: ErrIndexOutOfRange if node is outside [0, NodeCount()).
func (g *NeighborGraph) Degree(node int) (int, error) {
	if !g.inRange(node) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "Degree(%d) with %d nodes", node, g.nodeCount)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nbrs[node].Size(), nil
}

// Degrees returns the degree of every node, indexed by node.
func (g *NeighborGraph) Degrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, g.nodeCount)
	for i, set := range g.nbrs {
		out[i] = set.Size()
	}

	return out
}

// EdgeCount returns the total number of directed edges (sum of degrees).
func (g *NeighborGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, set := range g.nbrs {
		total += set.Size()
	}

	return total
}

// Adjacency returns a copy of all neighbor sets as ascending slices.
// Complexity: O(n + E).
func (g *NeighborGraph) Adjacency() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, g.nodeCount)
	for i, set := range g.nbrs {
		out[i] = setToInts(set)
	}

	return out
}

// CheckSymmetric verifies that j ∈ N(i) implies i ∈ N(j) for every edge.
// Unlike IsSymmetric it inspects the neighbor sets.
// Complexity: O(E log d).
func (g *NeighborGraph) CheckSymmetric() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, set := range g.nbrs {
		it := set.Iterator()
		for it.Next() {
			if !g.nbrs[it.Value().(int)].Contains(i) {
				return false
			}
		}
	}

	return true
}

// Transpose returns a new builder-mode graph with every edge (i, j)
// reversed to (j, i). The id variable is carried over; the symmetry flag
// is not.
// Complexity: O(E log d).
func (g *NeighborGraph) Transpose() *NeighborGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := newGraph(g.nodeCount, g.idVariable)
	for i, set := range g.nbrs {
		it := set.Iterator()
		for it.Next() {
			out.nbrs[it.Value().(int)].Add(i)
		}
	}

	return out
}

// Clone returns a deep copy in builder mode, preserving the id variable
// and the symmetry flag.
// Complexity: O(E log d).
func (g *NeighborGraph) Clone() *NeighborGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := newGraph(g.nodeCount, g.idVariable)
	out.symmetric = g.symmetric
	for i, set := range g.nbrs {
		out.nbrs[i].Add(set.Values()...)
	}

	return out
}

// Equal reports whether g and other have the same node count, id variable
// and neighbor sets. The symmetry flag and frozen state are ignored.
func (g *NeighborGraph) Equal(other *NeighborGraph) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	if g.nodeCount != other.nodeCount || g.idVariable != other.idVariable {
		return false
	}
	a, b := g.Adjacency(), other.Adjacency()
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for k := range a[i] {
			if a[i][k] != b[i][k] {
				return false
			}
		}
	}

	return true
}

func (g *NeighborGraph) inRange(i int) bool {
	return i >= 0 && i < g.nodeCount
}

// setToInts copies the ascending contents of a treeset of ints.
func setToInts(set *treeset.Set) []int {
	out := make([]int, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int))
	}

	return out
}
