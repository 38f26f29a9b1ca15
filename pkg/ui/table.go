package ui

import (
	"fmt"
	"strings"
)

// Placeholder marks an absent value in mapping and stats tables, e.g.
// an unresolved column. Rendered muted.
const Placeholder = "-"

// TableColumn describes one column of a terminal table. Numeric
// columns (row counts, distributions) are right-aligned.
type TableColumn struct {
	Header   string
	MinWidth int
	Numeric  bool
}

// Table renders aligned rows under a styled header, used for the
// column-mapping and catalog-stats views.
type Table struct {
	columns []TableColumn
	widths  []int
	rows    [][]string
}

// NewTable creates a table with the given columns
func NewTable(columns []TableColumn) *Table {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col.Header)
		if col.MinWidth > widths[i] {
			widths[i] = col.MinWidth
		}
	}
	return &Table{columns: columns, widths: widths}
}

// AddRow appends one row; extra cells beyond the column count are
// dropped.
func (t *Table) AddRow(cells []string) {
	for i, cell := range cells {
		if i < len(t.widths) && len(cell) > t.widths[i] {
			t.widths[i] = len(cell)
		}
	}
	t.rows = append(t.rows, cells)
}

// Render returns the table as a string.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	var b strings.Builder

	header := make([]string, len(t.columns))
	rule := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = t.pad(col.Header, i)
		rule[i] = strings.Repeat("─", t.widths[i])
	}
	b.WriteString(StyleTableHeader.Render(strings.Join(header, "  ")))
	b.WriteString("\n")
	b.WriteString(StyleTableBorder.Render(strings.Join(rule, "  ")))
	b.WriteString("\n")

	for idx, row := range t.rows {
		rowStyle := StyleTableRow
		if idx%2 == 1 {
			rowStyle = StyleTableRowAlt
		}

		cells := make([]string, len(t.columns))
		for i := range t.columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			padded := t.pad(cell, i)
			if cell == Placeholder {
				cells[i] = StyleMuted.Render(padded)
			} else {
				cells[i] = rowStyle.Render(padded)
			}
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")
	}

	return b.String()
}

// pad aligns a cell within its column width: numeric columns right,
// everything else left.
func (t *Table) pad(s string, col int) string {
	gap := t.widths[col] - len(s)
	if gap <= 0 {
		return s
	}
	if t.columns[col].Numeric {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// RenderKeyValue renders a key-value pair
func RenderKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s",
		StyleAccent.Render(key),
		value,
	)
}
