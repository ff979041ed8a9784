package manager

import (
	"fmt"

	"github.com/katalvlaran/spweights/algebra"
)

// ErrInvalidSelection indicates selected entries that cannot be combined,
// e.g. weights over different id variables. It matches
// algebra.ErrIncompatibleOperands under errors.Is.
var ErrInvalidSelection = fmt.Errorf("manager: invalid selection: %w", algebra.ErrIncompatibleOperands)
