package algebra

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/spweights/weights"
)

// Validate checks that operands may be combined: the list is non-empty,
// no operand is nil, and all operands share one non-empty id variable and
// one node count.
//
// Errors: ErrEmptyOperandList, ErrNilOperand, ErrIncompatibleOperands.
// Complexity: O(k) for k operands.
func Validate(operands []*weights.NeighborGraph) error {
	if len(operands) == 0 {
		return ErrEmptyOperandList
	}
	for i, g := range operands {
		if g == nil {
			return errors.Wrapf(ErrNilOperand, "operand %d", i)
		}
	}

	first := operands[0]
	if first.IDVariable() == "" {
		return errors.Wrap(ErrIncompatibleOperands, "operand 0 has no id variable")
	}
	for i, g := range operands[1:] {
		if g.IDVariable() != first.IDVariable() {
			return errors.Wrapf(ErrIncompatibleOperands,
				"operand %d id variable %q, want %q", i+1, g.IDVariable(), first.IDVariable())
		}
		if g.NodeCount() != first.NodeCount() {
			return errors.Wrapf(ErrIncompatibleOperands,
				"operand %d has %d nodes, want %d", i+1, g.NodeCount(), first.NodeCount())
		}
	}

	return nil
}

// Selection is the outcome of Partition.
//
// IDVariable and NodeCount describe the first usable candidate. Valid holds
// the candidates that match it, in input order; Invalid holds the rest
// (including nil candidates and candidates without an id variable).
type Selection struct {
	IDVariable string
	NodeCount  int
	Valid      []*weights.NeighborGraph
	Invalid    []*weights.NeighborGraph
}

// Partition splits candidates into those compatible with the first usable
// candidate and those that are not. The boolean reports whether the whole
// selection can be handed to Union or Intersection as is: at least one
// candidate qualifies and none were rejected.
//
// Complexity: O(k).
func Partition(candidates []*weights.NeighborGraph) (Selection, bool) {
	var sel Selection
	anchored := false
	for _, g := range candidates {
		if g == nil || g.IDVariable() == "" {
			sel.Invalid = append(sel.Invalid, g)
			continue
		}
		if !anchored {
			sel.IDVariable, sel.NodeCount = g.IDVariable(), g.NodeCount()
			anchored = true
		}
		if g.IDVariable() == sel.IDVariable && g.NodeCount() == sel.NodeCount {
			sel.Valid = append(sel.Valid, g)
		} else {
			sel.Invalid = append(sel.Invalid, g)
		}
	}

	return sel, len(sel.Valid) > 0 && len(sel.Invalid) == 0
}
