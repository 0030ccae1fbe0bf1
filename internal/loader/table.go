package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/staykit/stay/internal/common"
)

// table is a parsed tabular source: a header index plus raw string rows.
// Both the CSV and XLSX readers normalize into this shape so the parsing
// code above does not care which format the operator exports.
type table struct {
	columns map[string]int
	path    string
	rows    [][]string
}

func readTable(path string) (*table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("%s: %w (expected .csv or .xlsx)", path, common.ErrUnknownFormat)
	}
}

func readCSV(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // length checked against the header below
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	return newTable(path, records[0], records[1:]), nil
}

func readXLSX(path string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet %q: %w", path, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	return newTable(path, rows[0], rows[1:]), nil
}

func newTable(path string, header []string, rows [][]string) *table {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return &table{path: path, columns: columns, rows: rows}
}

// requireColumns verifies the header contract before any row is parsed.
func (t *table) requireColumns(names []string) error {
	for _, name := range names {
		if _, ok := t.columns[name]; !ok {
			return fmt.Errorf("%s: column %q: %w", t.path, name, common.ErrMissingColumn)
		}
	}
	return nil
}

// cell returns the value of a named column in row, or "" when the row is
// shorter than the header (xlsx exports drop trailing empty cells).
func (t *table) cell(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
