package report

import (
	"errors"
	"strings"

	"github.com/katalvlaran/commstats/stats"
)

// ErrMissingBlockSize is returned when a row's summary lacks a value
// for one of the configured SP(k) columns.
var ErrMissingBlockSize = errors.New("report: summary lacks a configured SP block size")

// Row is one results-table line: the application name and its computed
// statistics.
type Row struct {
	Application string
	Stats       stats.Summary
}

// Dialect selects the separator variant of the rendered table.
type Dialect string

const (
	// DialectStandard renders RFC 4180 comma-separated values.
	DialectStandard Dialect = "standard"

	// DialectTSV renders tab-separated values.
	DialectTSV Dialect = "tsv"
)

// Config controls table rendering.
type Config struct {
	// Dialect selects the separator. Default: DialectStandard.
	Dialect Dialect

	// BlockSizes lists the SP(k) columns in order. Default: 4, 16.
	BlockSizes []int

	// Precision is the number of decimal places for metric values.
	// Default: 6.
	Precision int

	// IncludeHeader writes the column names before the first row.
	// Default: true.
	IncludeHeader bool
}

// DefaultConfig returns the canonical table configuration.
func DefaultConfig() *Config {
	return &Config{
		Dialect:       DialectStandard,
		BlockSizes:    stats.DefaultBlockSizes(),
		Precision:     6,
		IncludeHeader: true,
	}
}

// Format renders rows into one table string using cfg (nil means
// DefaultConfig). With no rows and IncludeHeader set, the header line
// alone is returned.
func Format(rows []Row, cfg *Config) (string, error) {
	var sb strings.Builder
	w := NewWriter(&sb, cfg)
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	if len(rows) == 0 && w.config.IncludeHeader {
		if err := w.WriteHeader(); err != nil {
			return "", err
		}
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
