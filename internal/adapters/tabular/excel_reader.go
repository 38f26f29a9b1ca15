package tabular

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

// ExcelReader parses .xlsx/.xlsm workbooks. Only the first sheet is
// read; its first row is the header row.
type ExcelReader struct{}

// NewExcelReader creates an Excel reader
func NewExcelReader() *ExcelReader {
	return &ExcelReader{}
}

// Read parses the workbook at path
func (r *ExcelReader) Read(ctx context.Context, path string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty: no header row", sheets[0])
	}

	header := rows[0]
	return &domain.Table{
		Columns: header,
		Rows:    padRows(header, rows[1:]),
	}, nil
}
