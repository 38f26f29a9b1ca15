package services

import (
	"errors"
	"testing"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

func TestSchemaResolver_ExactTier(t *testing.T) {
	resolver := NewSchemaResolver(domain.DefaultAliases())

	columns := []string{"Assembly Name", "Part No", "Description", "QTY / VEH"}
	schema := resolver.Resolve(columns)

	checks := map[domain.LogicalField]string{
		domain.FieldAssembly:    "Assembly Name",
		domain.FieldPartNumber:  "Part No",
		domain.FieldDescription: "Description",
		domain.FieldQuantity:    "QTY / VEH",
	}
	for field, want := range checks {
		got, ok := schema.Column(field)
		if !ok {
			t.Errorf("%s not resolved", field)
			continue
		}
		if got != want {
			t.Errorf("%s resolved to %q, want %q", field, got, want)
		}
	}
}

func TestSchemaResolver_ExactBeatsSubstring(t *testing.T) {
	// "Part Description" contains "part", which the part-number
	// substring tier would claim; the exact match on "PARTNO" must win
	// first.
	resolver := NewSchemaResolver(domain.DefaultAliases())

	columns := []string{"Part Description", "PARTNO", "Assembly"}
	schema := resolver.Resolve(columns)

	got, ok := schema.Column(domain.FieldPartNumber)
	if !ok {
		t.Fatal("part number not resolved")
	}
	if got != "PARTNO" {
		t.Errorf("part number resolved to %q, want exact match %q", got, "PARTNO")
	}
}

func TestSchemaResolver_SubstringBothDirections(t *testing.T) {
	resolver := NewSchemaResolver(domain.DefaultAliases())

	// alias inside column
	schema := resolver.Resolve([]string{"Main Assembly Code"})
	if got, _ := schema.Column(domain.FieldAssembly); got != "Main Assembly Code" {
		t.Errorf("alias-in-column match failed, got %q", got)
	}

	// column inside alias: "assyname" contains canonical column "assy"
	schema = resolver.Resolve([]string{"ASSY"})
	if got, _ := schema.Column(domain.FieldAssembly); got != "ASSY" {
		t.Errorf("column-in-alias match failed, got %q", got)
	}
}

func TestSchemaResolver_KeywordTier(t *testing.T) {
	resolver := NewSchemaResolver(domain.AliasTable{
		domain.FieldLineLocation: {"zzz-no-such-alias"},
	})

	tests := []struct {
		name    string
		columns []string
		want    string
	}{
		{"line and location keywords", []string{"Part", "Feeding Line Drop Location"}, "Feeding Line Drop Location"},
		{"lineloc shorthand", []string{"X", "MYLINELOC4"}, "MYLINELOC4"},
		{"first in table order", []string{"Line A Location", "Line B Location"}, "Line A Location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := resolver.Resolve(tt.columns)
			got, ok := schema.Column(domain.FieldLineLocation)
			if !ok {
				t.Fatal("line location not resolved")
			}
			if got != tt.want {
				t.Errorf("resolved to %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSchemaResolver_UnmatchedOptionalAbsent(t *testing.T) {
	resolver := NewSchemaResolver(domain.DefaultAliases())

	schema := resolver.Resolve([]string{"Assembly", "Part No", "Description"})
	if _, ok := schema.Column(domain.FieldLineLocation); ok {
		t.Error("line location should be absent, not defaulted")
	}
	if _, ok := schema.Column(domain.FieldPartStatus); ok {
		t.Error("part status should be absent, not defaulted")
	}
}

func TestSchemaResolver_ResolveStrict_MissingRequired(t *testing.T) {
	resolver := NewSchemaResolver(domain.DefaultAliases())

	_, err := resolver.ResolveStrict([]string{"Assembly", "Part No", "Weight"})
	if err == nil {
		t.Fatal("expected error for table without a description column")
	}

	var schemaErr *domain.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %T", err)
	}
	if len(schemaErr.Missing) != 1 || schemaErr.Missing[0] != domain.FieldDescription {
		t.Errorf("expected missing=[description], got %v", schemaErr.Missing)
	}
}

func TestSchemaResolver_AliasPriorityOrder(t *testing.T) {
	// Both columns substring-match, but the first alias in priority
	// order decides.
	resolver := NewSchemaResolver(domain.AliasTable{
		domain.FieldBinType: {"bintype", "container"},
	})

	schema := resolver.Resolve([]string{"Container Kind", "Bin Type Code"})
	got, _ := schema.Column(domain.FieldBinType)
	if got != "Bin Type Code" {
		t.Errorf("expected first alias to win, got %q", got)
	}
}
