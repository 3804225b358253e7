// Package stats computes the eight communication statistics over a
// validated matrix.Matrix.
//
// Given an n×n communication cost matrix C with row totals T, grand
// total sum(C) and largest cell max(C):
//
//	CA    = sum(C) / n²
//	CB    = 100 · (max(T)/mean(T) - 1)
//	CBv2  = 1 - mean(T)/max(T)
//	CC    = Σ_i width(i) / n²,      width(i) = min(i+r(i), n-1) - max(i-r(i), 0)
//	CH    = Σ_i var(M(i)) / n,      M = 100·C/max(C), population variance
//	CHv2  = Σ_i var(M(i)) / n,      M = C/max(C)
//	NBC   = 1 - Σ_i (C(i,i-1) + C(i,i+1)) / sum(C)
//	SP(k) = 1 - inside(k) / sum(C), inside(k) = Σ over full k×k diagonal blocks
//
// where r(i) is the smallest radius whose window around the diagonal,
// clipped to the row bounds, captures at least half of row i's total.
//
// Construct an Engine with NewEngine over a matrix built by the matrix
// package, or with FromGrid to validate and wrap in one step. The
// connectivity precondition enforced there (every row total > 0) is
// what keeps every denominator above zero. All methods are pure
// reads over the immutable matrix: call them in any order, repeatedly,
// from any number of goroutines.
//
// Errors:
//   - ErrNilMatrix        — NewEngine received a nil matrix.
//   - ErrInvalidBlockSize — SP or Summary received a block size ≤ 0.
package stats
