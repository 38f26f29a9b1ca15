package services

import (
	"testing"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

func testTable() *domain.Table {
	return &domain.Table{
		Columns: []string{"Assembly", "Part No", "Description", "Line Location"},
		Rows: [][]string{
			{"AX-100-123", "PN-998", "Bracket", "ST1_A_B2_C"},
			{"  BX-200  ", "", " Clamp ", ""},
		},
	}
}

func TestExtractor_Extract(t *testing.T) {
	schema := domain.ResolvedSchema{
		domain.FieldAssembly:     "Assembly",
		domain.FieldPartNumber:   "Part No",
		domain.FieldDescription:  "Description",
		domain.FieldLineLocation: "Line Location",
	}
	extractor := NewExtractor(schema)

	data := extractor.Extract(testTable(), 0)
	if data.Assembly != "AX-100-123" {
		t.Errorf("Assembly = %q", data.Assembly)
	}
	if data.PartNumber != "PN-998" {
		t.Errorf("PartNumber = %q", data.PartNumber)
	}
	if data.LineLocation != "ST1_A_B2_C" {
		t.Errorf("LineLocation = %q", data.LineLocation)
	}
	// unresolved optional fields are empty, not sentinel
	if data.Quantity != "" || data.BinType != "" {
		t.Errorf("unresolved optional fields must be empty, got %q / %q", data.Quantity, data.BinType)
	}
}

func TestExtractor_TrimsValues(t *testing.T) {
	schema := domain.ResolvedSchema{
		domain.FieldAssembly:    "Assembly",
		domain.FieldPartNumber:  "Part No",
		domain.FieldDescription: "Description",
	}
	extractor := NewExtractor(schema)

	data := extractor.Extract(testTable(), 1)
	if data.Assembly != "BX-200" {
		t.Errorf("expected trimmed assembly, got %q", data.Assembly)
	}
	if data.Description != "Clamp" {
		t.Errorf("expected trimmed description, got %q", data.Description)
	}
}

func TestExtractor_SentinelOnlyForUnresolvedColumns(t *testing.T) {
	// Part number column resolved but the row's cell is empty: the
	// value stays blank. Description column never resolved: sentinel.
	schema := domain.ResolvedSchema{
		domain.FieldAssembly:   "Assembly",
		domain.FieldPartNumber: "Part No",
	}
	extractor := NewExtractor(schema)

	data := extractor.Extract(testTable(), 1)
	if data.PartNumber != "" {
		t.Errorf("blank cell in resolved column must stay blank, got %q", data.PartNumber)
	}
	if data.Description != domain.NotAvailable {
		t.Errorf("unresolved required field must read %q, got %q", domain.NotAvailable, data.Description)
	}
}

func TestExtractor_RowOrderIndependent(t *testing.T) {
	schema := domain.ResolvedSchema{
		domain.FieldAssembly:    "Assembly",
		domain.FieldPartNumber:  "Part No",
		domain.FieldDescription: "Description",
	}
	extractor := NewExtractor(schema)
	table := testTable()

	second := extractor.Extract(table, 1)
	first := extractor.Extract(table, 0)
	again := extractor.Extract(table, 1)

	if second != again {
		t.Error("extraction must be deterministic regardless of order")
	}
	if first.Assembly != "AX-100-123" {
		t.Errorf("unexpected first row assembly %q", first.Assembly)
	}
}
