package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Writer streams result rows as CSV/TSV. The header is written lazily
// before the first row when the configuration asks for one.
type Writer struct {
	config      *Config
	writer      *csv.Writer
	headerDone  bool
	rowsWritten int
}

// NewWriter returns a Writer over w. A nil config means DefaultConfig.
func NewWriter(w io.Writer, config *Config) *Writer {
	if config == nil {
		config = DefaultConfig()
	}
	cw := csv.NewWriter(w)
	if config.Dialect == DialectTSV {
		cw.Comma = '\t'
	}
	return &Writer{config: config, writer: cw}
}

// WriteHeader writes the column-name row once; later calls are no-ops.
// Write calls it automatically when IncludeHeader is set.
func (w *Writer) WriteHeader() error {
	if w.headerDone {
		return nil
	}
	if err := w.writer.Write(w.buildHeader()); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	w.headerDone = true
	return nil
}

// Write renders one row. Every configured SP block size must be present
// in the row's summary or ErrMissingBlockSize is returned.
func (w *Writer) Write(row Row) error {
	if w.config.IncludeHeader && !w.headerDone {
		if err := w.WriteHeader(); err != nil {
			return err
		}
	}
	record, err := w.formatRow(row)
	if err != nil {
		return err
	}
	if err := w.writer.Write(record); err != nil {
		return fmt.Errorf("report: write row %q: %w", row.Application, err)
	}
	w.rowsWritten++
	return nil
}

// WriteAll renders rows in order, stopping at the first failure.
func (w *Writer) WriteAll(rows []Row) error {
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush pushes buffered output to the underlying writer.
func (w *Writer) Flush() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}
	return nil
}

// RowsWritten returns the number of data rows written, header excluded.
func (w *Writer) RowsWritten() int { return w.rowsWritten }

// buildHeader lists the fixed metric columns followed by one SP(k)
// column per configured block size.
func (w *Writer) buildHeader() []string {
	header := []string{"Application", "CH", "CHv2", "CA", "CB", "CBv2", "CC", "NBC"}
	for _, k := range w.config.BlockSizes {
		header = append(header, fmt.Sprintf("SP(%d)", k))
	}
	return header
}

// formatRow renders the application name and every metric value.
func (w *Writer) formatRow(row Row) ([]string, error) {
	s := row.Stats
	record := []string{
		row.Application,
		w.formatFloat(s.CH),
		w.formatFloat(s.CHv2),
		w.formatFloat(s.CA),
		w.formatFloat(s.CB),
		w.formatFloat(s.CBv2),
		w.formatFloat(s.CC),
		w.formatFloat(s.NBC),
	}
	for _, k := range w.config.BlockSizes {
		v, ok := s.SP[k]
		if !ok {
			return nil, fmt.Errorf("report: row %q, SP(%d): %w", row.Application, k, ErrMissingBlockSize)
		}
		record = append(record, w.formatFloat(v))
	}
	return record, nil
}

// formatFloat renders v in plain decimal notation at the configured
// precision.
func (w *Writer) formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', w.config.Precision, 64)
}
