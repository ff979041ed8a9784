package weights

import "sort"

// ComputeStatistics returns min/max/mean/median degree and density of g.
// The result is cached until the next mutation, so repeated calls on a
// frozen graph cost O(1).
//
// Implementation:
//   - Stage 1: Reject empty graphs; return the cache when present.
//   - Stage 2: Collect degrees in node order and sort a copy for the median.
//   - Stage 3: Derive mean, density and isolate count; store the cache.
//
// Errors: ErrEmptyGraph if NodeCount() == 0.
// Determinism: depends only on the neighbor sets.
// Complexity: O(n log n) time, O(n) space.
func (g *NeighborGraph) ComputeStatistics() (DegreeStats, error) {
	if g.nodeCount == 0 {
		return DegreeStats{}, ErrEmptyGraph
	}

	g.mu.RLock()
	if g.stats != nil {
		st := *g.stats
		g.mu.RUnlock()
		return st, nil
	}
	degrees := make([]int, g.nodeCount)
	for i, set := range g.nbrs {
		degrees[i] = set.Size()
	}
	g.mu.RUnlock()

	st := summarize(degrees)

	g.mu.Lock()
	// A writer may have slipped in between the two locks; only cache if the
	// degrees still match.
	if sameDegrees(g, degrees) {
		cached := st
		g.stats = &cached
	}
	g.mu.Unlock()

	return st, nil
}

// summarize reduces a non-empty degree vector to DegreeStats.
func summarize(degrees []int) DegreeStats {
	n := len(degrees)
	st := DegreeStats{Min: degrees[0], Max: degrees[0]}
	for _, d := range degrees {
		if d < st.Min {
			st.Min = d
		}
		if d > st.Max {
			st.Max = d
		}
		if d == 0 {
			st.Isolates++
		}
		st.Edges += d
	}
	st.Mean = float64(st.Edges) / float64(n)

	sorted := append([]int(nil), degrees...)
	sort.Ints(sorted)
	if n%2 == 1 {
		st.Median = float64(sorted[n/2])
	} else {
		st.Median = float64(sorted[n/2-1]+sorted[n/2]) / 2
	}

	if n > 1 {
		st.Density = float64(st.Edges) / (float64(n) * float64(n-1))
	}

	return st
}

// sameDegrees must be called with g.mu held.
func sameDegrees(g *NeighborGraph, degrees []int) bool {
	for i, set := range g.nbrs {
		if set.Size() != degrees[i] {
			return false
		}
	}

	return true
}

// Isolates returns the ascending indices of nodes without neighbors.
// Complexity: O(n).
func (g *NeighborGraph) Isolates() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	for i, set := range g.nbrs {
		if set.Empty() {
			out = append(out, i)
		}
	}

	return out
}
