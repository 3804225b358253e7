// Package report renders the results table for statistics runs.
//
// The layout is fixed: one row per application, columns Application,
// CH, CHv2, CA, CB, CBv2, CC, NBC and one SP(k) column per configured
// block size (SP(4) and SP(16) by default). Values render in plain
// decimal notation with a configurable precision, so the output loads
// cleanly into R, pandas or a spreadsheet.
package report
