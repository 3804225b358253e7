package batch_test

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/commstats/batch"
	"github.com/katalvlaran/commstats/matrix"
	"github.com/katalvlaran/commstats/stats"
)

// writeFile drops contents into dir under name and returns the path.
func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// discardLogger silences run logging in tests that do not assert on it.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestLoadManifest_ParsesYAML reads block sizes and entries in order.
func TestLoadManifest_ParsesYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "run.yaml",
		"block_sizes: [2, 4]\n"+
			"entries:\n"+
			"  - application: alpha\n"+
			"    path: a.csv\n"+
			"  - application: beta\n"+
			"    path: b.csv\n")

	m, err := batch.LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 4}, m.BlockSizes)
	require.Len(t, m.Entries, 2)
	assert.Equal(t, batch.Entry{Application: "alpha", Path: "a.csv"}, m.Entries[0])
	assert.Equal(t, batch.Entry{Application: "beta", Path: "b.csv"}, m.Entries[1])
}

// TestLoadManifest_DefaultsBlockSizes fills the table layout sizes when
// the manifest stays silent.
func TestLoadManifest_DefaultsBlockSizes(t *testing.T) {
	path := writeFile(t, t.TempDir(), "run.yaml",
		"entries:\n  - application: alpha\n    path: a.csv\n")

	m, err := batch.LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, stats.DefaultBlockSizes(), m.BlockSizes)
}

// TestLoadManifest_Rejections covers empty manifests, incomplete
// entries, bad block sizes, broken YAML and a missing file.
func TestLoadManifest_Rejections(t *testing.T) {
	dir := t.TempDir()

	empty := writeFile(t, dir, "empty.yaml", "entries: []\n")
	_, err := batch.LoadManifest(empty)
	assert.ErrorIs(t, err, batch.ErrEmptyManifest)

	incomplete := writeFile(t, dir, "incomplete.yaml",
		"entries:\n  - application: alpha\n")
	_, err = batch.LoadManifest(incomplete)
	assert.ErrorIs(t, err, batch.ErrBadEntry)

	badBlock := writeFile(t, dir, "badblock.yaml",
		"block_sizes: [0]\nentries:\n  - application: alpha\n    path: a.csv\n")
	_, err = batch.LoadManifest(badBlock)
	assert.ErrorIs(t, err, stats.ErrInvalidBlockSize)

	broken := writeFile(t, dir, "broken.yaml", "entries: [\n")
	_, err = batch.LoadManifest(broken)
	assert.Error(t, err)

	_, err = batch.LoadManifest(filepath.Join(dir, "absent.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestRun_AllEntriesSucceed produces one row per entry, in manifest
// order, computed with the manifest's block sizes.
func TestRun_AllEntriesSucceed(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "alpha.csv", "0,100\n100,0\n")
	b := writeFile(t, dir, "beta.csv", "1,1\n1,1\n")

	m := &batch.Manifest{
		BlockSizes: []int{2},
		Entries: []batch.Entry{
			{Application: "alpha", Path: a},
			{Application: "beta", Path: b},
		},
	}

	rows, results, err := batch.Run(m, discardLogger())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Len(t, results, 2)

	assert.Equal(t, "alpha", rows[0].Application)
	assert.Equal(t, "beta", rows[1].Application)
	assert.Equal(t, 50.0, rows[0].Stats.CA)
	assert.Equal(t, 0.0, rows[0].Stats.SP[2], "k = n swallows the whole matrix")
	assert.True(t, results[0].Ok())
	assert.True(t, results[1].Ok())
}

// TestRun_FailingEntryIsReportedNotFatal: the bad file is logged and
// omitted while the rest of the batch still runs, and Run returns a
// non-nil error so callers exit non-zero.
func TestRun_FailingEntryIsReportedNotFatal(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.csv", "0,1\n1,0\n")
	bad := writeFile(t, dir, "bad.csv", "0,-1\n1,0\n")
	tail := writeFile(t, dir, "tail.csv", "2,2\n2,2\n")

	m := &batch.Manifest{Entries: []batch.Entry{
		{Application: "good", Path: good},
		{Application: "bad", Path: bad},
		{Application: "tail", Path: tail},
	}}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rows, results, err := batch.Run(m, logger)
	require.Error(t, err)
	assert.ErrorIs(t, err, batch.ErrEntriesFailed)
	assert.Contains(t, err.Error(), "1 of 3")

	require.Len(t, rows, 2, "failed row must be omitted, not zero-filled")
	assert.Equal(t, "good", rows[0].Application)
	assert.Equal(t, "tail", rows[1].Application)
	assert.Equal(t, 1.0, rows[0].Stats.SP[16], "defaults apply when the manifest has no sizes")

	require.Len(t, results, 3)
	assert.True(t, results[0].Ok())
	require.False(t, results[1].Ok())
	assert.ErrorIs(t, results[1].Err, matrix.ErrNegativeValue)
	assert.Contains(t, buf.String(), "bad.csv", "failure log must name the file")
}

// TestRun_MissingFile surfaces the OS error in the entry result.
func TestRun_MissingFile(t *testing.T) {
	m := &batch.Manifest{Entries: []batch.Entry{
		{Application: "ghost", Path: filepath.Join(t.TempDir(), "absent.csv")},
	}}

	rows, results, err := batch.Run(m, discardLogger())
	assert.ErrorIs(t, err, batch.ErrEntriesFailed)
	assert.Empty(t, rows)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, fs.ErrNotExist)
}
