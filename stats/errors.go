package stats

import "errors"

var (
	// ErrNilMatrix is returned by NewEngine when no matrix is supplied.
	ErrNilMatrix = errors.New("stats: nil matrix")

	// ErrInvalidBlockSize is returned by SP and Summary when a block
	// size is zero or negative.
	ErrInvalidBlockSize = errors.New("stats: block size must be positive")
)
