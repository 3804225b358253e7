// Package matrix provides the validated communication cost matrix that
// all statistics are computed over.
//
// A communication cost matrix is a square n×n grid of non-negative
// numbers where cell (i,j) holds the cost (messages, bytes) sent from
// participant i to participant j. Construction validates the candidate
// grid in three stages:
//
//  1. Shape — the grid is non-empty and square.
//  2. Cells — every cell is a finite, non-negative number.
//  3. Rows  — every row sums to > 0 (no silent participant).
//
// Validation is all-or-nothing: the first violation aborts construction
// and no Matrix is returned. Violations map to sentinel errors:
//
//   - ErrBadShape        — empty or non-square grid
//   - ErrMalformedCell   — NaN/±Inf cell, or a ragged row (missing cells)
//   - ErrNegativeValue   — a cell below zero
//   - ErrDisconnectedRow — a row whose sum is zero
//   - ErrNilMatrix       — nil input where a matrix was required
//
// Errors carry positional context (row, column) via fmt wrapping; match
// them with errors.Is.
//
// A Matrix is immutable after construction: constructors deep-copy
// their input, accessors are read-only, and the derived quantities the
// statistics reuse (row totals, grand total, maximum cell) are computed
// once and cached. A Matrix is therefore safe for concurrent use
// without locking.
package matrix
