// SPDX-License-Identifier: MIT
//
// File: algebra.go
// Role: Union, Intersection and Symmetrize over weights.NeighborGraph.
// Policy:
//   - Validate first, compute second; no partial results are returned.
//   - Operands are read through their public API only; results are frozen.

package algebra

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/spweights/weights"
)

// Union returns the graph whose neighbor set at every node is the union of
// the operands' neighbor sets at that node. It accepts one or more
// operands; a single operand yields an equal, frozen copy.
//
// Implementation:
//   - Stage 1: Validate operands (non-empty, non-nil, same id variable and node count).
//   - Stage 2: Insert every edge of every operand into a fresh graph; sets absorb duplicates.
//   - Stage 3: Recompute the symmetry flag from the result and freeze it.
//
// Errors: ErrEmptyOperandList, ErrNilOperand, ErrIncompatibleOperands,
// weights.ErrIndexOutOfRange (malformed input).
// Complexity: O(ΣE·log d) over all operands.
func Union(operands ...*weights.NeighborGraph) (*weights.NeighborGraph, error) {
	if err := Validate(operands); err != nil {
		return nil, errors.Wrap(err, opUnion)
	}

	out, err := emptyLike(operands[0])
	if err != nil {
		return nil, errors.Wrap(err, opUnion)
	}
	for _, g := range operands {
		for i, row := range g.Adjacency() {
			for _, j := range row {
				if err = out.AddNeighbor(i, j); err != nil {
					return nil, errors.Wrap(err, opUnion)
				}
			}
		}
	}

	return finish(out, out.CheckSymmetric())
}

// Intersection returns the graph whose neighbor set at every node is the
// intersection of the operands' neighbor sets at that node. It accepts
// one or more operands; a single operand yields an equal, frozen copy.
//
// Implementation:
//   - Stage 1: Validate operands.
//   - Stage 2: Walk the first operand's edges; keep (i, j) only if every
//     other operand also has j ∈ N(i).
//   - Stage 3: Recompute the symmetry flag from the result and freeze it.
//
// Errors: as Union.
// Complexity: O(E₁·k·log d) for k operands, E₁ edges in the first.
func Intersection(operands ...*weights.NeighborGraph) (*weights.NeighborGraph, error) {
	if err := Validate(operands); err != nil {
		return nil, errors.Wrap(err, opIntersection)
	}

	first, rest := operands[0], operands[1:]
	out, err := emptyLike(first)
	if err != nil {
		return nil, errors.Wrap(err, opIntersection)
	}
	for i, row := range first.Adjacency() {
		for _, j := range row {
			if !inAll(rest, i, j) {
				continue
			}
			if err = out.AddNeighbor(i, j); err != nil {
				return nil, errors.Wrap(err, opIntersection)
			}
		}
	}

	return finish(out, out.CheckSymmetric())
}

// Symmetrize turns the directed relation of g into an undirected one.
//
//   - mutual == false: every edge (i, j) appears in both directions
//     (g ∪ gᵀ, logical OR).
//   - mutual == true: (i, j) survives, in both directions, only if (j, i)
//     was also present (g ∩ gᵀ, logical AND).
//
// The result always has IsSymmetric() == true. A graph without edges
// yields a graph without edges in either mode.
//
// Errors: ErrNilOperand for a nil g, ErrIncompatibleOperands for an empty
// id variable.
// Complexity: O(E·log d).
func Symmetrize(g *weights.NeighborGraph, mutual bool) (*weights.NeighborGraph, error) {
	if err := Validate([]*weights.NeighborGraph{g}); err != nil {
		return nil, errors.Wrap(err, opSymmetrize)
	}

	out, err := emptyLike(g)
	if err != nil {
		return nil, errors.Wrap(err, opSymmetrize)
	}
	for i, row := range g.Adjacency() {
		for _, j := range row {
			if mutual && !g.HasNeighbor(j, i) {
				continue
			}
			if err = out.AddNeighbor(i, j); err != nil {
				return nil, errors.Wrap(err, opSymmetrize)
			}
			if err = out.AddNeighbor(j, i); err != nil {
				return nil, errors.Wrap(err, opSymmetrize)
			}
		}
	}

	return finish(out, true)
}

// emptyLike allocates a builder-mode graph with g's node count and id variable.
func emptyLike(g *weights.NeighborGraph) (*weights.NeighborGraph, error) {
	return weights.New(g.NodeCount(), g.IDVariable())
}

// finish records the symmetry flag and freezes out.
func finish(out *weights.NeighborGraph, symmetric bool) (*weights.NeighborGraph, error) {
	if err := out.SetSymmetric(symmetric); err != nil {
		return nil, err
	}

	return out.Freeze(), nil
}

// inAll reports whether j ∈ N(i) in every graph of gs.
func inAll(gs []*weights.NeighborGraph, i, j int) bool {
	for _, g := range gs {
		if !g.HasNeighbor(i, j) {
			return false
		}
	}

	return true
}
