package tabular

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

// Reader dispatches to a concrete parser based on the file extension.
// CSV and Excel workbooks are supported; everything else is an input
// format error surfaced before the core pipeline runs.
type Reader struct {
	csv  *CSVReader
	xlsx *ExcelReader
}

// NewReader creates a dispatching table reader
func NewReader() *Reader {
	return &Reader{
		csv:  NewCSVReader(),
		xlsx: NewExcelReader(),
	}
}

// Read parses the catalog file at path into a table
func (r *Reader) Read(ctx context.Context, path string) (*domain.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return r.csv.Read(ctx, path)
	case ".xlsx", ".xlsm":
		return r.xlsx.Read(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported table format %q (use .csv or .xlsx)", filepath.Ext(path))
	}
}

// padRows extends every row to the header width so downstream cell
// access never has to bounds-check ragged input.
func padRows(columns []string, rows [][]string) [][]string {
	for i, row := range rows {
		for len(row) < len(columns) {
			row = append(row, "")
		}
		rows[i] = row[:len(columns)]
	}
	return rows
}
