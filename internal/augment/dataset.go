// Package augment applies phrase expansion to tabular datasets, turning each
// input row into one or more output rows. Rows are plain CSV records; only
// the named text-bearing columns are rewritten and every other column is
// copied through unchanged.
package augment

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Dataset is an in-memory CSV table: a header naming the columns and one
// string slice per row.
type Dataset struct {
	Header []string
	Rows   [][]string
}

// Column returns the index of the named column, or -1 if absent.
func (d *Dataset) Column(name string) int {
	for i, h := range d.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// ReadCSV loads a dataset from path. The first record is the header; a file
// without one is malformed and fails the load.
func ReadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("augment: open dataset %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("augment: read dataset %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("augment: dataset %s has no header row", filepath.Base(path))
	}

	return &Dataset{Header: records[0], Rows: records[1:]}, nil
}

// WriteCSV writes the dataset to path, header first.
func WriteCSV(path string, d *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("augment: create output %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(d.Header); err != nil {
		return fmt.Errorf("augment: write header: %w", err)
	}
	for _, row := range d.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("augment: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("augment: flush output: %w", err)
	}
	return nil
}
