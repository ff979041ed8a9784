package catalog

import "errors"

var (
	// ErrNotFound indicates no graph is stored under the requested id.
	ErrNotFound = errors.New("catalog: graph not found")

	// ErrClosed indicates use of a Catalog after Close.
	ErrClosed = errors.New("catalog: closed")

	// ErrBadParam indicates inconsistent Options.
	ErrBadParam = errors.New("catalog: bad parameter")
)
