package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/commstats/stats"
)

// TestEngine_SummaryMatchesIndividualMetrics verifies the aggregate is
// assembled from the same computations as the single-metric calls.
func TestEngine_SummaryMatchesIndividualMetrics(t *testing.T) {
	e := newEngine(t, neighborTraffic(8, 100))

	s, err := e.Summary()
	require.NoError(t, err)

	assert.Equal(t, e.CH(), s.CH)
	assert.Equal(t, e.CHv2(), s.CHv2)
	assert.Equal(t, e.CA(), s.CA)
	assert.Equal(t, e.CB(), s.CB)
	assert.Equal(t, e.CBv2(), s.CBv2)
	assert.Equal(t, e.CC(), s.CC)
	assert.Equal(t, e.NBC(), s.NBC)

	require.Equal(t, []int{4, 16}, s.BlockSizes)
	sp4, err := e.SP(4)
	require.NoError(t, err)
	assert.Equal(t, sp4, s.SP[4])
	sp16, err := e.SP(16)
	require.NoError(t, err)
	assert.Equal(t, sp16, s.SP[16])
}

// TestEngine_SummaryCustomBlockSizes preserves the requested order and
// values.
func TestEngine_SummaryCustomBlockSizes(t *testing.T) {
	e := newEngine(t, uniform(8, 1))

	s, err := e.Summary(stats.WithBlockSizes(2, 4, 8))
	require.NoError(t, err)

	require.Equal(t, []int{2, 4, 8}, s.BlockSizes)
	assert.Equal(t, 0.75, s.SP[2])
	assert.Equal(t, 0.5, s.SP[4])
	assert.Equal(t, 0.0, s.SP[8])
}

// TestEngine_SummaryRejectsBadBlockSize propagates ErrInvalidBlockSize
// from any configured size.
func TestEngine_SummaryRejectsBadBlockSize(t *testing.T) {
	e := newEngine(t, uniform(4, 1))

	_, err := e.Summary(stats.WithBlockSizes(4, 0))
	assert.ErrorIs(t, err, stats.ErrInvalidBlockSize)
}

// TestDefaultOptions_FreshSlice ensures callers mutating a returned
// default never affect later calls.
func TestDefaultOptions_FreshSlice(t *testing.T) {
	o := stats.DefaultOptions()
	o.BlockSizes[0] = 999
	assert.Equal(t, []int{4, 16}, stats.DefaultBlockSizes())
}
