package algebra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/spweights/algebra"
	"github.com/katalvlaran/spweights/weights"
)

const idPoly = "POLY_ID"

// AlgebraSuite checks the set laws on small hand-made fixtures.
//
//	A = {0:{1,2}, 1:{0},   2:{0}, 3:{}}
//	B = {0:{1},   1:{0,3}, 2:{},  3:{1}}
//	C = {0:{3},   1:{0},   2:{1}, 3:{}}
//	D = {0:{1},   1:{0,2}, 2:{},  3:{0}}  (directed, one reciprocated pair)
type AlgebraSuite struct {
	suite.Suite
	A, B, C, D *weights.NeighborGraph
}

func (s *AlgebraSuite) SetupTest() {
	s.A = weights.MustFromAdjacency(idPoly, [][]int{{1, 2}, {0}, {0}, {}}).Freeze()
	s.B = weights.MustFromAdjacency(idPoly, [][]int{{1}, {0, 3}, {}, {1}}).Freeze()
	s.C = weights.MustFromAdjacency(idPoly, [][]int{{3}, {0}, {1}, {}}).Freeze()
	s.D = weights.MustFromAdjacency(idPoly, [][]int{{1}, {0, 2}, {}, {0}}).Freeze()
}

func TestAlgebraSuite(t *testing.T) {
	suite.Run(t, new(AlgebraSuite))
}

// TestScenario checks the concrete neighbor sets of the reference scenario.
func (s *AlgebraSuite) TestScenario() {
	u, err := algebra.Union(s.A, s.B)
	s.Require().NoError(err)
	s.Equal([]int{0, 3}, mustNeighbors(s.T(), u, 1))
	s.Equal([][]int{{1, 2}, {0, 3}, {0}, {1}}, u.Adjacency())

	in, err := algebra.Intersection(s.A, s.B)
	s.Require().NoError(err)
	s.Equal([]int{1}, mustNeighbors(s.T(), in, 0))
	s.Equal([][]int{{1}, {0}, {}, {}}, in.Adjacency())

	sym, err := algebra.Symmetrize(s.A, false)
	s.Require().NoError(err)
	s.Equal([]int{}, mustNeighbors(s.T(), sym, 3))
}

// TestResultMetadata verifies id variable, frozen state and symmetry flags.
func (s *AlgebraSuite) TestResultMetadata() {
	u, err := algebra.Union(s.A, s.B)
	s.Require().NoError(err)
	s.Equal(idPoly, u.IDVariable())
	s.Equal(4, u.NodeCount())
	s.True(u.Frozen())
	s.True(u.IsSymmetric(), "A ∪ B is reciprocal on every edge")

	u2, err := algebra.Union(s.A, s.C)
	s.Require().NoError(err)
	s.False(u2.IsSymmetric())
}

// TestCommutativity checks Union(A,B)==Union(B,A) and likewise for Intersection.
func (s *AlgebraSuite) TestCommutativity() {
	for _, op := range binaryOps() {
		ab, err := op.fn(s.A, s.B)
		s.Require().NoError(err)
		ba, err := op.fn(s.B, s.A)
		s.Require().NoError(err)
		s.True(ab.Equal(ba), op.name)
	}
}

// TestAssociativity checks op(op(A,B),C)==op(A,op(B,C)) and the n-ary form.
func (s *AlgebraSuite) TestAssociativity() {
	for _, op := range binaryOps() {
		ab, err := op.fn(s.A, s.B)
		s.Require().NoError(err)
		left, err := op.fn(ab, s.C)
		s.Require().NoError(err)

		bc, err := op.fn(s.B, s.C)
		s.Require().NoError(err)
		right, err := op.fn(s.A, bc)
		s.Require().NoError(err)

		all, err := op.fn(s.A, s.B, s.C)
		s.Require().NoError(err)

		s.True(left.Equal(right), op.name)
		s.True(left.Equal(all), op.name)
	}
}

// TestIdempotence checks op(A,A)==A and the single-operand identity.
func (s *AlgebraSuite) TestIdempotence() {
	for _, op := range binaryOps() {
		aa, err := op.fn(s.A, s.A)
		s.Require().NoError(err)
		s.True(aa.Equal(s.A), op.name)

		one, err := op.fn(s.D)
		s.Require().NoError(err)
		s.True(one.Equal(s.D), op.name)
	}
}

// TestSymmetrize_Or adds every reverse edge.
func (s *AlgebraSuite) TestSymmetrize_Or() {
	sym, err := algebra.Symmetrize(s.D, false)
	s.Require().NoError(err)
	s.Equal([][]int{{1, 3}, {0, 2}, {1}, {0}}, sym.Adjacency())
	s.True(sym.IsSymmetric())
	s.True(sym.CheckSymmetric())
}

// TestSymmetrize_Mutual keeps only reciprocated edges.
func (s *AlgebraSuite) TestSymmetrize_Mutual() {
	sym, err := algebra.Symmetrize(s.D, true)
	s.Require().NoError(err)
	s.Equal([][]int{{1}, {0}, {}, {}}, sym.Adjacency())
	s.True(sym.IsSymmetric())
	s.True(sym.CheckSymmetric())
}

// TestSymmetrize_MutualSubsetOfOr checks mutual ⊆ OR at every node.
func (s *AlgebraSuite) TestSymmetrize_MutualSubsetOfOr() {
	for _, g := range []*weights.NeighborGraph{s.A, s.B, s.C, s.D} {
		or, err := algebra.Symmetrize(g, false)
		s.Require().NoError(err)
		and, err := algebra.Symmetrize(g, true)
		s.Require().NoError(err)
		for i, row := range and.Adjacency() {
			for _, j := range row {
				s.True(or.HasNeighbor(i, j), "edge %d→%d", i, j)
			}
		}
	}
}

// TestSymmetrize_NoEdges returns an edgeless graph in both modes.
func (s *AlgebraSuite) TestSymmetrize_NoEdges() {
	g, err := weights.New(3, idPoly)
	s.Require().NoError(err)
	for _, mutual := range []bool{false, true} {
		sym, err := algebra.Symmetrize(g, mutual)
		s.Require().NoError(err)
		s.Equal(0, sym.EdgeCount())
		s.True(sym.IsSymmetric())
	}
}

// TestOperandsUntouched ensures no operation mutates its inputs.
func (s *AlgebraSuite) TestOperandsUntouched() {
	before := s.D.Adjacency()
	_, err := algebra.Symmetrize(s.D, false)
	s.Require().NoError(err)
	_, err = algebra.Union(s.D, s.A)
	s.Require().NoError(err)
	_, err = algebra.Intersection(s.D, s.A)
	s.Require().NoError(err)
	s.Equal(before, s.D.Adjacency())
}

// TestErrors covers every validation failure for every operation.
func (s *AlgebraSuite) TestErrors() {
	other := weights.MustFromAdjacency("FIPS", [][]int{{1}, {0}, {}, {}})
	smaller := weights.MustFromAdjacency(idPoly, [][]int{{1}, {0}, {}})
	noID := weights.MustFromAdjacency("", [][]int{{1}, {0}, {}, {}})

	for _, op := range binaryOps() {
		_, err := op.fn()
		s.ErrorIs(err, algebra.ErrEmptyOperandList, op.name)
		_, err = op.fn(s.A, nil)
		s.ErrorIs(err, algebra.ErrNilOperand, op.name)
		_, err = op.fn(s.A, other)
		s.ErrorIs(err, algebra.ErrIncompatibleOperands, op.name)
		_, err = op.fn(s.A, smaller)
		s.ErrorIs(err, algebra.ErrIncompatibleOperands, op.name)
		_, err = op.fn(noID, noID)
		s.ErrorIs(err, algebra.ErrIncompatibleOperands, op.name)
	}

	_, err := algebra.Symmetrize(nil, false)
	s.ErrorIs(err, algebra.ErrNilOperand)
	_, err = algebra.Symmetrize(noID, true)
	s.ErrorIs(err, algebra.ErrIncompatibleOperands)
}

// TestRandomLaws checks the laws on seeded random directed graphs.
func TestRandomLaws(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		a := randomGraph(t, r, 12, 0.2)
		b := randomGraph(t, r, 12, 0.3)

		u1, err := algebra.Union(a, b)
		require.NoError(t, err)
		u2, err := algebra.Union(b, a)
		require.NoError(t, err)
		require.True(t, u1.Equal(u2))

		i1, err := algebra.Intersection(a, b)
		require.NoError(t, err)
		for n, row := range i1.Adjacency() {
			for _, j := range row {
				require.True(t, a.HasNeighbor(n, j) && b.HasNeighbor(n, j))
				require.True(t, u1.HasNeighbor(n, j))
			}
		}

		or, err := algebra.Symmetrize(a, false)
		require.NoError(t, err)
		and, err := algebra.Symmetrize(a, true)
		require.NoError(t, err)
		for n := 0; n < a.NodeCount(); n++ {
			for j := 0; j < a.NodeCount(); j++ {
				require.Equal(t, or.HasNeighbor(n, j), or.HasNeighbor(j, n))
				require.Equal(t, a.HasNeighbor(n, j) || a.HasNeighbor(j, n), or.HasNeighbor(n, j))
				require.Equal(t, a.HasNeighbor(n, j) && a.HasNeighbor(j, n), and.HasNeighbor(n, j))
			}
		}
	}
}

type namedOp struct {
	name string
	fn   func(...*weights.NeighborGraph) (*weights.NeighborGraph, error)
}

func binaryOps() []namedOp {
	return []namedOp{
		{"Union", algebra.Union},
		{"Intersection", algebra.Intersection},
	}
}

func mustNeighbors(t *testing.T, g *weights.NeighborGraph, i int) []int {
	t.Helper()
	nbrs, err := g.Neighbors(i)
	require.NoError(t, err)

	return nbrs
}

func randomGraph(t *testing.T, r *rand.Rand, n int, p float64) *weights.NeighborGraph {
	t.Helper()
	g, err := weights.New(n, idPoly)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && r.Float64() < p {
				require.NoError(t, g.AddNeighbor(i, j))
			}
		}
	}

	return g.Freeze()
}
