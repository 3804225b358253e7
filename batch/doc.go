// Package batch runs the statistics over a manifest of matrix files
// and collects the results table.
//
// A manifest is a small YAML document:
//
//	block_sizes: [4, 16]   # optional, defaults to the table layout
//	entries:
//	  - application: cg.B.64
//	    path: data/cg.B.64.csv
//	  - application: lu.C.128
//	    path: data/lu.C.128.csv
//
// Run loads every entry, computes the full summary and returns the
// table rows in manifest order. A failing entry does not abort the
// run: its row is omitted, the failure is logged and kept in the
// per-entry results, and the returned error reports how many entries
// failed. Nothing fails silently.
package batch
