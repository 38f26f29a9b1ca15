package services

import (
	"strings"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

// Extractor turns one table row into a LabelData using a resolved
// schema. This is the single place where row-level absence policy is
// applied: a required field whose column never resolved reads "N/A",
// while a blank cell in a resolved column stays blank.
type Extractor struct {
	schema domain.ResolvedSchema
}

// NewExtractor creates an extractor bound to one resolved schema
func NewExtractor(schema domain.ResolvedSchema) *Extractor {
	return &Extractor{schema: schema}
}

// Extract reads the given data row into a LabelData. Deterministic and
// independent of other rows.
func (e *Extractor) Extract(t *domain.Table, row int) domain.LabelData {
	return domain.LabelData{
		Assembly:     e.required(t, row, domain.FieldAssembly),
		PartNumber:   e.required(t, row, domain.FieldPartNumber),
		Description:  e.required(t, row, domain.FieldDescription),
		Quantity:     e.optional(t, row, domain.FieldQuantity),
		Type:         e.optional(t, row, domain.FieldType),
		LineLocation: e.optional(t, row, domain.FieldLineLocation),
		PartStatus:   e.optional(t, row, domain.FieldPartStatus),
		BinType:      e.optional(t, row, domain.FieldBinType),
	}
}

func (e *Extractor) required(t *domain.Table, row int, f domain.LogicalField) string {
	col, ok := e.schema.Column(f)
	if !ok {
		return domain.NotAvailable
	}
	return strings.TrimSpace(t.Cell(row, col))
}

func (e *Extractor) optional(t *domain.Table, row int, f domain.LogicalField) string {
	col, ok := e.schema.Column(f)
	if !ok {
		return ""
	}
	return strings.TrimSpace(t.Cell(row, col))
}
