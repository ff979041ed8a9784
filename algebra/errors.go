package algebra

import "errors"

// Sentinel errors for graph algebra.
var (
	// ErrEmptyOperandList indicates an operation was called with zero operands.
	ErrEmptyOperandList = errors.New("algebra: empty operand list")

	// ErrNilOperand indicates a nil graph among the operands.
	ErrNilOperand = errors.New("algebra: nil operand")

	// ErrIncompatibleOperands indicates operands that differ in id variable or node count.
	ErrIncompatibleOperands = errors.New("algebra: incompatible operands")
)

// Operation names used to tag wrapped errors.
const (
	opUnion        = "Union"
	opIntersection = "Intersection"
	opSymmetrize   = "Symmetrize"
)
