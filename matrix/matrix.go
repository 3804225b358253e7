package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable n×n communication cost matrix.
//
// Cell (i,j) holds the non-negative cost sent from participant i to
// participant j, indices 0..n-1 on both axes. Instances come from New
// or FromDense, which validate the grid and deep-copy it; after that no
// operation mutates the matrix.
type Matrix struct {
	n      int
	cells  *mat.Dense
	totals []float64 // totals[i] = Σ_j cells(i,j), each > 0
	total  float64   // Σ cells, > 0
	max    float64   // largest cell, > 0
}

// New validates the candidate grid and constructs a Matrix from it.
// The grid is copied; the caller keeps ownership of cells.
//
// Checks run in order: shape (a ragged row is reported as malformed
// cells), cell values, row connectivity. The first violation aborts
// construction with the matching sentinel wrapped in positional
// context.
//
// Complexity: O(n²) time, O(n²) memory for the copy.
func New(cells [][]float64) (*Matrix, error) {
	n, err := gridSize(cells)
	if err != nil {
		return nil, err
	}
	d := mat.NewDense(n, n, nil)
	for i, row := range cells {
		d.SetRow(i, row)
	}
	return build(d, n)
}

// FromDense validates src and constructs a Matrix from it. The data is
// copied, never aliased, so src stays independent.
func FromDense(src *mat.Dense) (*Matrix, error) {
	if src == nil {
		return nil, ErrNilMatrix
	}
	r, c := src.Dims()
	if r == 0 || r != c {
		return nil, fmt.Errorf("matrix: %dx%d grid: %w", r, c, ErrBadShape)
	}
	return build(mat.DenseCopyOf(src), r)
}

// N returns the matrix dimension n.
func (m *Matrix) N() int { return m.n }

// At returns cell (i,j). Indices outside [0,n) panic.
func (m *Matrix) At(i, j int) float64 { return m.cells.At(i, j) }

// Row returns row i as a live view into the matrix. Callers must not
// modify the returned slice.
func (m *Matrix) Row(i int) []float64 { return m.cells.RawRowView(i) }

// RowTotal returns the cached sum of row i.
func (m *Matrix) RowTotal(i int) float64 { return m.totals[i] }

// RowTotals returns a copy of all row totals.
func (m *Matrix) RowTotals() []float64 {
	out := make([]float64, m.n)
	copy(out, m.totals)
	return out
}

// Total returns the sum of all cells. Always > 0 for a constructed
// Matrix.
func (m *Matrix) Total() float64 { return m.total }

// Max returns the largest cell value. Always > 0 for a constructed
// Matrix.
func (m *Matrix) Max() float64 { return m.max }

// Dense returns a copy of the matrix as a gonum *mat.Dense, for callers
// that want to continue with gonum operations.
func (m *Matrix) Dense() *mat.Dense { return mat.DenseCopyOf(m.cells) }

// Clone returns an independent copy. Rarely needed, since a Matrix is
// immutable; provided for callers that require distinct instances.
func (m *Matrix) Clone() *Matrix {
	totals := make([]float64, m.n)
	copy(totals, m.totals)
	return &Matrix{
		n:      m.n,
		cells:  mat.DenseCopyOf(m.cells),
		totals: totals,
		total:  m.total,
		max:    m.max,
	}
}

// String renders the matrix in gonum's aligned format, for debugging.
func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.cells, mat.Squeeze()))
}
