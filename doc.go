// Package commstats computes descriptive statistics over inter-process
// communication cost matrices: square non-negative grids where cell
// (i,j) is the cost (messages or bytes) sent from rank i to rank j.
//
// What is commstats?
//
//	A small library plus CLI that turns a communication matrix into a
//	fixed set of scalars describing imbalance, locality, centrality and
//	heterogeneity:
//		• CA   — communication amount per matrix cell
//		• CB   — communication balance (max-over-mean row imbalance, %)
//		• CBv2 — balance restated on a [0,1) scale
//		• CC   — communication centrality (median-capture window radius)
//		• CH   — communication heterogeneity (row variance of the
//		         normalized matrix)
//		• CHv2 — heterogeneity on the unscaled normalization
//		• NBC  — fraction of traffic NOT exchanged with rank neighbors
//		• SP(k)— fraction of traffic NOT captured by k×k diagonal blocks
//
// Everything is organized under small, focused subpackages:
//
//	matrix/ — validated, immutable CommunicationMatrix type
//	stats/  — the statistics engine (the eight metrics + Summary)
//	csvio/  — CSV file/stream loading into a matrix
//	report/ — results table with the Application, CH, ... SP(16) layout
//	batch/  — manifest-driven runs over many matrix files
//
// Quick example:
//
//	m, err := matrix.New([][]float64{
//		{0, 4, 1},
//		{4, 0, 1},
//		{1, 1, 0},
//	})
//	if err != nil { ... }
//	eng, _ := stats.NewEngine(m)
//	fmt.Println(eng.CA(), eng.NBC())
//
// Matrices are validated once (shape, cell sanity, row connectivity) and
// immutable afterwards, so every metric is a pure read and safe for
// concurrent use.
//
//	go get github.com/katalvlaran/commstats
package commstats
