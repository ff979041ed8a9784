// Package algebra combines spatial-weights graphs with set operations.
//
// Every operation is a pure function: operands are read, never mutated, and
// the result is a freshly allocated, frozen *weights.NeighborGraph that
// carries the operands' shared id variable.
//
//	Union(A, B, ...)        N(i) = N_A(i) ∪ N_B(i) ∪ ...
//	Intersection(A, B, ...) N(i) = N_A(i) ∩ N_B(i) ∩ ...
//	Symmetrize(A, false)    A ∪ Aᵀ  (logical OR on the adjacency relation)
//	Symmetrize(A, true)     A ∩ Aᵀ  (only reciprocated edges survive)
//
// Union and Intersection are commutative, associative and idempotent.
// Symmetrize always returns a graph whose IsSymmetric flag is true;
// Union/Intersection verify symmetry of their result with CheckSymmetric.
//
// Validation precedes computation. Validate is the single gate: operands
// must be non-empty, non-nil, carry a non-empty id variable, and agree on
// both id variable and node count. Partition applies the same rule to a
// caller's selection and reports which graphs qualify.
//
// Errors:
//
//	ErrEmptyOperandList     - no operands supplied.
//	ErrNilOperand           - a nil graph in the operand list.
//	ErrIncompatibleOperands - id variables or node counts differ, or an id variable is empty.
//	weights.ErrIndexOutOfRange - propagated from malformed input graphs.
//
// All errors are wrapped with the operation name; match them with errors.Is.
package algebra
