package sample

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/strata/config"
)

// Writer handles structured sample output: per-voxel density CSV, a stats
// CSV, and a snapshot of the configuration that produced them.
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at dir, creating the directory if
// needed. Returns nil if dir is empty (output disabled).
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// WriteRecords writes the per-voxel records to density.csv.
func (w *Writer) WriteRecords(records []Record) error {
	if w == nil {
		return nil
	}
	f, err := os.Create(filepath.Join(w.dir, "density.csv"))
	if err != nil {
		return fmt.Errorf("creating density.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.Marshal(records, f); err != nil {
		return fmt.Errorf("writing density records: %w", err)
	}
	return nil
}

// WriteStats writes the distribution summary to stats.csv.
func (w *Writer) WriteStats(s Stats) error {
	if w == nil {
		return nil
	}
	f, err := os.Create(filepath.Join(w.dir, "stats.csv"))
	if err != nil {
		return fmt.Errorf("creating stats.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.Marshal([]Stats{s}, f); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// WriteConfig saves the current configuration as YAML next to the CSVs.
func (w *Writer) WriteConfig(cfg *config.Config) error {
	if w == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(w.dir, "config.yaml"))
}
