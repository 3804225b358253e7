package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/commstats/matrix"
)

// Read parses matrix rows from r and validates them into a Matrix.
// Records may vary in length at the syntax level; matrix validation
// rejects ragged grids with the row that went wrong. Positions in
// parse errors are 1-based.
func Read(r io.Reader) (*matrix.Matrix, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var cells [][]float64
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: %v: %w", err, matrix.ErrMalformedCell)
		}
		if isBlank(record) {
			continue
		}
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("csvio: record %d field %d %q: %w",
					len(cells)+1, j+1, field, matrix.ErrMalformedCell)
			}
			row[j] = v
		}
		cells = append(cells, row)
	}
	return matrix.New(cells)
}

// Load reads the file at path into a validated Matrix. Failures are
// prefixed with the path so batch runs can name the offending file.
func Load(path string) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: %w", err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// isBlank reports whether every field of a record is empty after
// trimming, i.e. the line held only separators or spaces.
func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
