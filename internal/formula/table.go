// Package formula decides which phrase tokens denote chemical compounds and
// maps them to natural-language names. Detection is heuristic: an exclusion
// list, a digit check, and a dictionary-sense lookup — no actual formula
// parsing happens here.
package formula

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Table is an immutable mapping from a lower-case formula string to the
// ordered compound names recorded for it. Multiple table rows for the same
// formula append in file order; duplicates are kept as stored.
type Table struct {
	names map[string][]string
}

// NewTable builds a Table from an in-memory mapping. Keys are case-folded;
// the synonym slices are copied.
func NewTable(entries map[string][]string) *Table {
	names := make(map[string][]string, len(entries))
	for formula, syns := range entries {
		key := strings.ToLower(formula)
		names[key] = append(names[key], syns...)
	}
	return &Table{names: names}
}

// LoadTable reads a CSV file with at least the columns Formula and Name and
// builds the synonym table from it. Extra columns are ignored. An unreadable
// file or a header missing either required column is a fatal load error.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("formula: open table %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("formula: read table %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, errors.New("formula: empty synonym table")
	}

	formulaCol, nameCol := -1, -1
	for i, cell := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "formula":
			formulaCol = i
		case "name":
			nameCol = i
		}
	}
	if formulaCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("formula: table %s missing Formula/Name columns (header: %v)",
			filepath.Base(path), rows[0])
	}

	names := make(map[string][]string)
	for _, row := range rows[1:] {
		if formulaCol >= len(row) || nameCol >= len(row) {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(row[formulaCol]))
		name := strings.TrimSpace(row[nameCol])
		if key == "" || name == "" {
			continue
		}
		names[key] = append(names[key], name)
	}

	return &Table{names: names}, nil
}

// Synonyms returns the names recorded for token, case-folding the token
// before lookup. A missing entry returns nil — not an error.
func (t *Table) Synonyms(token string) []string {
	return t.names[strings.ToLower(token)]
}

// Len reports the number of distinct formulas in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// Formulas returns the distinct formula keys, in no particular order.
func (t *Table) Formulas() []string {
	keys := make([]string, 0, len(t.names))
	for k := range t.names {
		keys = append(keys, k)
	}
	return keys
}
