package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// gridSize establishes the dimension of a candidate grid. The grid must
// be non-empty, every row must have the same width (a shorter or longer
// row means missing or stray cells), and the width must equal the row
// count.
func gridSize(cells [][]float64) (int, error) {
	n := len(cells)
	if n == 0 {
		return 0, fmt.Errorf("matrix: empty grid: %w", ErrBadShape)
	}
	width := len(cells[0])
	for i, row := range cells {
		if len(row) != width {
			return 0, fmt.Errorf("matrix: row %d has %d cells, want %d: %w",
				i, len(row), width, ErrMalformedCell)
		}
	}
	if width != n {
		return 0, fmt.Errorf("matrix: %dx%d grid: %w", n, width, ErrBadShape)
	}
	return n, nil
}

// build runs the cell and connectivity checks over the already square
// d, caches the derived quantities and assembles the Matrix. d is
// freshly copied by the constructor and becomes owned by the Matrix.
func build(d *mat.Dense, n int) (*Matrix, error) {
	for i := 0; i < n; i++ {
		for j, v := range d.RawRowView(i) {
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				return nil, fmt.Errorf("matrix: cell (%d,%d) = %v: %w", i, j, v, ErrMalformedCell)
			case v < 0:
				return nil, fmt.Errorf("matrix: cell (%d,%d) = %g: %w", i, j, v, ErrNegativeValue)
			}
		}
	}
	totals := make([]float64, n)
	for i := 0; i < n; i++ {
		t := floats.Sum(d.RawRowView(i))
		if t == 0 {
			return nil, fmt.Errorf("matrix: row %d: %w", i, ErrDisconnectedRow)
		}
		totals[i] = t
	}
	return &Matrix{
		n:      n,
		cells:  d,
		totals: totals,
		total:  floats.Sum(totals),
		max:    mat.Max(d),
	}, nil
}
