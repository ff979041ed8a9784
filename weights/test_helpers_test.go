package weights_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spweights/weights"
)

// Id variable shared by the fixtures.
const idPoly = "POLY_ID"

// fixtureA is the 4-node directed graph {0:{1,2}, 1:{0}, 2:{0}, 3:{}}.
func fixtureA(t testing.TB) *weights.NeighborGraph {
	t.Helper()
	g, err := weights.FromAdjacency(idPoly, [][]int{{1, 2}, {0}, {0}, {}})
	require.NoError(t, err)

	return g
}

// fixtureChain is the directed path 0→1→2→3 with an extra isolated node 4.
func fixtureChain(t testing.TB) *weights.NeighborGraph {
	t.Helper()
	g, err := weights.FromAdjacency(idPoly, [][]int{{1}, {2}, {3}, {}, {}})
	require.NoError(t, err)

	return g
}
