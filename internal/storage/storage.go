package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/leaguetab/internal/table"
)

// Storage handles writing output tables under a data directory
type Storage struct {
	outDir string
}

// New creates a new Storage instance, creating the output directory if
// it doesn't exist. A leading ~/ is expanded to the home directory.
func New(outDir string) (*Storage, error) {
	if strings.HasPrefix(outDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		outDir = filepath.Join(home, outDir[2:])
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Storage{
		outDir: outDir,
	}, nil
}

// Path returns the full path of a named artifact.
func (s *Storage) Path(name string) string {
	return filepath.Join(s.outDir, name)
}

// WriteCSV writes a table to a named CSV file, truncating any previous
// file. The first record is the canonical header; missing cells are
// written empty.
func (s *Storage) WriteCSV(name string, t *table.Table) error {
	path := s.Path(name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Cols); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, len(t.Cols))
	for _, row := range t.Rows {
		for i, v := range row {
			record[i] = v.String()
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
