package batch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/commstats/csvio"
	"github.com/katalvlaran/commstats/report"
	"github.com/katalvlaran/commstats/stats"
)

// ErrEntriesFailed is returned by Run when at least one entry could not
// be processed; the per-entry results carry the causes.
var ErrEntriesFailed = errors.New("batch: one or more entries failed")

// Result is the outcome for one manifest entry: either a table row or
// the error that kept it out of the table.
type Result struct {
	Entry Entry
	Row   report.Row
	Err   error
}

// Ok reports whether the entry produced a row.
func (r Result) Ok() bool { return r.Err == nil }

// Run processes every manifest entry in order: load the file, validate
// the matrix, compute the summary with the manifest's block sizes.
// A failing entry is logged through log (nil means slog.Default) and
// its row omitted; the remaining entries still run. The returned rows
// keep manifest order, and the error is non-nil whenever any entry
// failed, so callers can exit non-zero instead of shipping a silently
// shortened table.
func Run(m *Manifest, log *slog.Logger) ([]report.Row, []Result, error) {
	if log == nil {
		log = slog.Default()
	}
	sizes := m.BlockSizes
	if len(sizes) == 0 {
		sizes = stats.DefaultBlockSizes()
	}

	rows := make([]report.Row, 0, len(m.Entries))
	results := make([]Result, 0, len(m.Entries))
	failed := 0
	for _, entry := range m.Entries {
		row, err := runEntry(entry, sizes)
		if err != nil {
			failed++
			log.Error("entry failed",
				"application", entry.Application,
				"path", entry.Path,
				"err", err)
			results = append(results, Result{Entry: entry, Err: err})
			continue
		}
		log.Debug("entry done", "application", entry.Application, "path", entry.Path)
		rows = append(rows, row)
		results = append(results, Result{Entry: entry, Row: row})
	}
	if failed > 0 {
		return rows, results, fmt.Errorf("%w: %d of %d", ErrEntriesFailed, failed, len(m.Entries))
	}
	return rows, results, nil
}

// runEntry turns one manifest entry into a table row.
func runEntry(entry Entry, blockSizes []int) (report.Row, error) {
	mtx, err := csvio.Load(entry.Path)
	if err != nil {
		return report.Row{}, err
	}
	eng, err := stats.NewEngine(mtx)
	if err != nil {
		return report.Row{}, err
	}
	summary, err := eng.Summary(stats.WithBlockSizes(blockSizes...))
	if err != nil {
		return report.Row{}, err
	}
	return report.Row{Application: entry.Application, Stats: summary}, nil
}
