package batch

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/commstats/stats"
)

var (
	// ErrEmptyManifest is returned when a manifest lists no entries.
	ErrEmptyManifest = errors.New("batch: manifest has no entries")

	// ErrBadEntry is returned when an entry is missing its application
	// name or file path.
	ErrBadEntry = errors.New("batch: entry needs both application and path")
)

// Entry names one matrix file and the application it belongs to.
type Entry struct {
	Application string `yaml:"application"`
	Path        string `yaml:"path"`
}

// Manifest describes one batch run.
type Manifest struct {
	// BlockSizes optionally overrides the SP(k) columns. Empty means
	// stats.DefaultBlockSizes.
	BlockSizes []int `yaml:"block_sizes"`

	// Entries lists the files to process, in output order.
	Entries []Entry `yaml:"entries"`
}

// LoadManifest reads, parses and validates a YAML manifest, filling in
// the default block sizes when none are given.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("batch: parse %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(m.BlockSizes) == 0 {
		m.BlockSizes = stats.DefaultBlockSizes()
	}
	return &m, nil
}

// Validate checks the manifest shape: at least one entry, every entry
// fully named, every block size positive.
func (m *Manifest) Validate() error {
	if len(m.Entries) == 0 {
		return ErrEmptyManifest
	}
	for i, e := range m.Entries {
		if e.Application == "" || e.Path == "" {
			return fmt.Errorf("batch: entry %d: %w", i, ErrBadEntry)
		}
	}
	for _, k := range m.BlockSizes {
		if k <= 0 {
			return fmt.Errorf("batch: block size %d: %w", k, stats.ErrInvalidBlockSize)
		}
	}
	return nil
}
