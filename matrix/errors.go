package matrix

import "errors"

// Validation sentinels. Constructors return these wrapped with
// positional context; callers match with errors.Is. Out-of-range
// indices on accessors are programmer errors and panic instead.
var (
	// ErrBadShape is returned when the candidate grid is empty or not
	// square (row count != column count).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrMalformedCell is returned when a cell is missing (ragged row)
	// or not a finite number (NaN or ±Inf).
	ErrMalformedCell = errors.New("matrix: malformed cell")

	// ErrNegativeValue is returned when a cell holds a negative number.
	ErrNegativeValue = errors.New("matrix: negative value")

	// ErrDisconnectedRow is returned when a row sums to zero, i.e. the
	// participant never sends anything (connectivity precondition).
	ErrDisconnectedRow = errors.New("matrix: disconnected row")

	// ErrNilMatrix is returned when a nil matrix is supplied where a
	// value was required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
