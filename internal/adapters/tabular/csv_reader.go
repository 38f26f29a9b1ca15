package tabular

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

// utf8BOM sometimes prefixes exports from Windows spreadsheet tools and
// would otherwise corrupt the first header name.
const utf8BOM = "\xef\xbb\xbf"

// CSVReader parses comma-separated catalog exports. The first record is
// the header row; ragged data rows are padded to the header width.
type CSVReader struct{}

// NewCSVReader creates a CSV reader
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// Read parses the CSV file at path
func (r *CSVReader) Read(ctx context.Context, path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return r.parse(bufio.NewReader(f))
}

func (r *CSVReader) parse(src io.Reader) (*domain.Table, error) {
	reader := csv.NewReader(src)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // tolerate ragged rows, pad later

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, record)
	}

	return &domain.Table{
		Columns: header,
		Rows:    padRows(header, rows),
	}, nil
}
