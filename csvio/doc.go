// Package csvio loads communication matrices from CSV files.
//
// The expected format is one matrix row per record, cells as decimal
// numbers (scientific notation accepted), comma-separated. Fields are
// trimmed of surrounding whitespace and fully blank lines are skipped,
// so files written by spreadsheet tools or numeric toolkits load
// unchanged.
//
// Everything beyond syntax is delegated to matrix.New: a parsed grid
// that is not square, has negative cells or silent rows fails with the
// corresponding matrix sentinel. Syntax defects (a cell that is not a
// number, a broken quote) are wrapped over matrix.ErrMalformedCell, so
// errors.Is classifies every load failure through a single taxonomy.
package csvio
