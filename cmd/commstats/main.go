// commstats computes communication statistics over process
// communication matrices.
//
// Per-file mode prints every metric for each CSV matrix listed on the
// command line:
//
//	commstats -blocks 2,4,8 matrix.csv
//
// Batch mode runs a YAML manifest and writes one results-table row per
// application:
//
//	commstats -manifest run.yaml -o results.csv
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/commstats/batch"
	"github.com/katalvlaran/commstats/csvio"
	"github.com/katalvlaran/commstats/report"
	"github.com/katalvlaran/commstats/stats"
)

const version = "1.0.0"

func main() {
	manifestPath := flag.String("manifest", "", "YAML manifest for batch mode")
	outPath := flag.String("o", "", "batch output file (default stdout)")
	blocks := flag.String("blocks", "", "comma-separated SP block sizes (default 4,16)")
	precision := flag.Int("precision", 6, "decimal places in reported values")
	noHeader := flag.Bool("no-header", false, "omit the header row in batch output")
	verbose := flag.Bool("v", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("commstats %s\n", version)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))

	blockSizes, err := parseBlocks(*blocks)
	if err != nil {
		slog.Error("bad -blocks value", "err", err)
		os.Exit(1)
	}

	switch {
	case *manifestPath != "":
		if flag.NArg() > 0 {
			slog.Error("-manifest does not take file arguments")
			os.Exit(1)
		}
		if err := runBatch(*manifestPath, *outPath, blockSizes, *precision, !*noHeader); err != nil {
			slog.Error("batch failed", "err", err)
			os.Exit(1)
		}
	case flag.NArg() > 0:
		if err := runFiles(os.Stdout, flag.Args(), blockSizes, *precision); err != nil {
			slog.Error("run failed", "err", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `commstats %s - communication matrix statistics

Usage:
  commstats [flags] matrix.csv [matrix2.csv ...]
  commstats -manifest run.yaml [-o results.csv]

Flags:
`, version)
	flag.PrintDefaults()
}

// parseBlocks turns the -blocks flag ("4,16") into block sizes.
// An empty string keeps the defaults.
func parseBlocks(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		k, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("block size %q: %w", part, err)
		}
		if k <= 0 {
			return nil, fmt.Errorf("block size %d: %w", k, stats.ErrInvalidBlockSize)
		}
		sizes = append(sizes, k)
	}
	return sizes, nil
}

// runFiles prints the metric listing for every path, continuing past
// failures, and reports how many failed.
func runFiles(w io.Writer, paths []string, blockSizes []int, precision int) error {
	if len(blockSizes) == 0 {
		blockSizes = stats.DefaultBlockSizes()
	}
	failed := 0
	for _, path := range paths {
		if err := printFile(w, path, blockSizes, precision); err != nil {
			slog.Error("file failed", "path", path, "err", err)
			failed++
			continue
		}
		slog.Debug("file done", "path", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

// printFile loads one matrix and prints each statistic on its own
// line, in the fixed metric order.
func printFile(w io.Writer, path string, blockSizes []int, precision int) error {
	m, err := csvio.Load(path)
	if err != nil {
		return err
	}
	eng, err := stats.NewEngine(m)
	if err != nil {
		return err
	}
	s, err := eng.Summary(stats.WithBlockSizes(blockSizes...))
	if err != nil {
		return err
	}

	ff := func(v float64) string { return strconv.FormatFloat(v, 'f', precision, 64) }
	fmt.Fprintf(w, "*** Communication statistics for %s ***\n", path)
	fmt.Fprintf(w, "Communication heterogeneity (CH):\t%s\n", ff(s.CH))
	fmt.Fprintf(w, "Communication heterogeneity v2 (CHv2):\t%s\n", ff(s.CHv2))
	fmt.Fprintf(w, "Communication amount (CA):\t%s\n", ff(s.CA))
	fmt.Fprintf(w, "Communication balance (CB):\t%s\n", ff(s.CB))
	fmt.Fprintf(w, "Communication balance v2 (CBv2):\t%s\n", ff(s.CBv2))
	fmt.Fprintf(w, "Communication centrality (CC):\t%s\n", ff(s.CC))
	fmt.Fprintf(w, "Neighbor communication fraction (NBC):\t%s\n", ff(s.NBC))
	for _, k := range s.BlockSizes {
		fmt.Fprintf(w, "Split fraction SP(%d):\t%s\n", k, ff(s.SP[k]))
	}
	fmt.Fprintln(w)
	return nil
}

// runBatch executes a manifest and writes the results table to outPath
// (empty means stdout). The table is written even when some entries
// fail, so a partial batch still yields its good rows.
func runBatch(manifestPath, outPath string, blockSizes []int, precision int, header bool) error {
	m, err := batch.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	if len(blockSizes) > 0 {
		m.BlockSizes = blockSizes
	}

	rows, _, runErr := batch.Run(m, slog.Default())

	out := io.Writer(os.Stdout)
	dest := "stdout"
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		out = f
		dest = outPath
	}

	cfg := report.DefaultConfig()
	cfg.BlockSizes = m.BlockSizes
	cfg.Precision = precision
	cfg.IncludeHeader = header

	w := report.NewWriter(out, cfg)
	if header && len(rows) == 0 {
		if err := w.WriteHeader(); err != nil {
			return err
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	slog.Info("table written", "rows", w.RowsWritten(), "dest", dest)
	return runErr
}
