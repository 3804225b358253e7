package stats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/commstats/matrix"
)

// Engine computes communication statistics over one validated matrix.
// Construct once, call any metric in any order; every method is a pure
// read over the immutable matrix and safe for concurrent use. Two
// engines over different matrices are fully independent.
type Engine struct {
	m *matrix.Matrix
}

// NewEngine returns an Engine over m. The matrix carries its own
// validation guarantees from construction; NewEngine only rejects nil.
func NewEngine(m *matrix.Matrix) (*Engine, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	return &Engine{m: m}, nil
}

// FromGrid validates a candidate grid and wraps it in an Engine in one
// step. Validation failures come from matrix.New unchanged.
func FromGrid(cells [][]float64) (*Engine, error) {
	m, err := matrix.New(cells)
	if err != nil {
		return nil, err
	}
	return NewEngine(m)
}

// Matrix returns the engine's underlying matrix.
func (e *Engine) Matrix() *matrix.Matrix { return e.m }

// CA returns the communication amount: the average cost per matrix
// cell, sum(C) / n².
func (e *Engine) CA() float64 {
	n := float64(e.m.N())
	return e.m.Total() / (n * n)
}

// CB returns the communication balance: how far, in percent, the
// busiest participant's outgoing total exceeds the mean row total,
// 100 · (max(T)/mean(T) - 1). Zero means perfect balance; mean(T) > 0
// is guaranteed by the connectivity precondition.
func (e *Engine) CB() float64 {
	totals := e.m.RowTotals()
	return 100 * (floats.Max(totals)/stat.Mean(totals, nil) - 1)
}

// CBv2 returns the balance restated on a [0,1) scale,
// 1 - mean(T)/max(T). Unlike CB it is bounded, which makes values
// comparable across applications.
func (e *Engine) CBv2() float64 {
	totals := e.m.RowTotals()
	return 1 - stat.Mean(totals, nil)/floats.Max(totals)
}

// CC returns the communication centrality. For each row i the smallest
// radius r is found such that the window [i-r, i+r], clipped to the row
// bounds, captures at least half of the row's total cost; the clipped
// window width min(i+r, n-1) - max(i-r, 0) is accumulated over all rows
// and divided by n². Small values mean cost concentrates near the
// diagonal.
//
// The windowed sum is non-decreasing in r, so incrementing r from 0
// finds the minimal radius. r never exceeds n: the full window holds
// the whole row total, which is always ≥ half of itself.
//
// Complexity: O(n²) worst case.
func (e *Engine) CC() float64 {
	n := e.m.N()
	widths := 0.0
	for i := 0; i < n; i++ {
		row := e.m.Row(i)
		half := e.m.RowTotal(i) / 2
		accum := row[i]
		r := 0
		for accum < half && r < n {
			r++
			if i-r >= 0 {
				accum += row[i-r]
			}
			if i+r < n {
				accum += row[i+r]
			}
		}
		widths += float64(min(i+r, n-1) - max(i-r, 0))
	}
	return widths / float64(n*n)
}

// CH returns the communication heterogeneity: the matrix is normalized
// to M = 100·C/max(C) and the population variances of M's rows are
// averaged, Σ_i var(M(i)) / n. A uniform matrix yields 0; the more a
// row's costs differ from each other, the larger the contribution.
//
// Complexity: O(n²) time, O(n) scratch memory.
func (e *Engine) CH() float64 {
	return e.heterogeneity(100)
}

// CHv2 returns the heterogeneity of the unscaled normalization
// M = C/max(C). Algebraically CH/10⁴, but computed from its own
// normalization so rounding differences never compound.
func (e *Engine) CHv2() float64 {
	return e.heterogeneity(1)
}

// heterogeneity normalizes each row by scale/max(C) into a scratch
// buffer and averages the rows' population variances (divisor n,
// not n-1).
func (e *Engine) heterogeneity(scale float64) float64 {
	n := e.m.N()
	factor := scale / e.m.Max()
	scratch := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		floats.ScaleTo(scratch, factor, e.m.Row(i))
		total += stat.PopVariance(scratch, nil)
	}
	return total / float64(n)
}

// NBC returns the fraction of cost NOT exchanged with the immediate
// neighbors in rank order, 1 - Σ_i (C(i,i-1) + C(i,i+1)) / sum(C).
// Indices outside the matrix contribute nothing (boundary, no
// wraparound), so a 1×1 matrix scores 1. Zero means all communication
// is nearest-neighbor.
func (e *Engine) NBC() float64 {
	n := e.m.N()
	neighbor := 0.0
	for i := 0; i < n; i++ {
		if i > 0 {
			neighbor += e.m.At(i, i-1)
		}
		if i < n-1 {
			neighbor += e.m.At(i, i+1)
		}
	}
	return 1 - neighbor/e.m.Total()
}

// SP returns the split fraction for block size k: the fraction of cost
// falling outside the floor(n/k) full k×k blocks laid along the
// diagonal, 1 - inside/sum(C). Rows and columns beyond the last full
// block are excluded from the inside sum, so their cost always counts
// as outside; k > n therefore yields exactly 1. k must be positive or
// ErrInvalidBlockSize is returned.
func (e *Engine) SP(k int) (float64, error) {
	if k <= 0 {
		return 0, fmt.Errorf("stats: block size %d: %w", k, ErrInvalidBlockSize)
	}
	n := e.m.N()
	inside := 0.0
	for s := 0; s < n/k; s++ {
		base := s * k
		for l := 0; l < k; l++ {
			row := e.m.Row(base + l)
			inside += floats.Sum(row[base : base+k])
		}
	}
	return 1 - inside/e.m.Total(), nil
}
