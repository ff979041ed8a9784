package weights

import "sort"

// Components returns the connected components of g, treating every edge as
// undirected (j ∈ N(i) links i and j both ways). Each component lists its
// nodes in ascending order; components are ordered by their smallest node.
// Isolates form singleton components.
//
// Time:   O(n + E·log d).
// Memory: O(n + E) for the undirected closure and the BFS queue.
func (g *NeighborGraph) Components() [][]int {
	g.mu.RLock()
	undirected := make([][]int, g.nodeCount)
	for i, set := range g.nbrs {
		it := set.Iterator()
		for it.Next() {
			j := it.Value().(int)
			undirected[i] = append(undirected[i], j)
			undirected[j] = append(undirected[j], i)
		}
	}
	g.mu.RUnlock()

	seen := make([]bool, g.nodeCount)
	var comps [][]int
	for start := 0; start < g.nodeCount; start++ {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range undirected[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, sortedCopy(queue))
	}

	return comps
}

func sortedCopy(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)

	return out
}
