package domain

import (
	"fmt"
	"strings"
)

// ResolvedSchema maps logical fields onto the actual column names found
// in one table. Built once per generation run; read-only afterwards.
type ResolvedSchema map[LogicalField]string

// Column returns the resolved column for a field, if any.
func (s ResolvedSchema) Column(f LogicalField) (string, bool) {
	col, ok := s[f]
	return col, ok
}

// MissingRequired lists the required fields with no resolved column,
// in field order.
func (s ResolvedSchema) MissingRequired() []LogicalField {
	var missing []LogicalField
	for _, f := range RequiredFields() {
		if _, ok := s[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

// SchemaError reports required logical fields that no table column
// matched. It is fatal: no document is produced.
type SchemaError struct {
	Missing []LogicalField
}

func (e *SchemaError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.Label()
	}
	return fmt.Sprintf("missing required columns: %s", strings.Join(names, ", "))
}

// RowIssue records a recoverable, row-scoped degradation: the affected
// region was replaced with a placeholder and the run continued.
type RowIssue struct {
	Row    int    // zero-based data row index
	Region string // "qr" or "logo"
	Reason string
}

func (i RowIssue) String() string {
	return fmt.Sprintf("row %d: %s degraded: %s", i.Row+1, i.Region, i.Reason)
}
