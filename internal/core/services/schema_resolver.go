package services

import (
	"strings"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

// matcher is one tier of the column matching chain. It returns the
// actual column name chosen for the field, or "" when the tier has no
// hit. Tiers run in declared order; the first hit wins.
type matcher func(field domain.LogicalField, aliases []string, columns []string) string

// SchemaResolver maps a table's actual column names onto the logical
// field vocabulary using tiered fuzzy matching: exact canonical match,
// then mutual-substring match, then a line-location keyword heuristic.
type SchemaResolver struct {
	aliases domain.AliasTable
	tiers   []matcher
}

// NewSchemaResolver creates a resolver over the given alias dictionary
func NewSchemaResolver(aliases domain.AliasTable) *SchemaResolver {
	return &SchemaResolver{
		aliases: aliases,
		tiers:   []matcher{matchExact, matchSubstring, matchKeyword},
	}
}

// Resolve finds the best matching column for each logical field.
// Fields with no match are simply absent from the result; use
// ResolveStrict when required fields must be present.
func (r *SchemaResolver) Resolve(columns []string) domain.ResolvedSchema {
	schema := make(domain.ResolvedSchema)
	for _, field := range domain.AllFields() {
		for _, tier := range r.tiers {
			if col := tier(field, r.aliases[field], columns); col != "" {
				schema[field] = col
				break
			}
		}
	}
	return schema
}

// ResolveStrict resolves and fails with a SchemaError when any required
// field has no matching column.
func (r *SchemaResolver) ResolveStrict(columns []string) (domain.ResolvedSchema, error) {
	schema := r.Resolve(columns)
	if missing := schema.MissingRequired(); len(missing) > 0 {
		return nil, &domain.SchemaError{Missing: missing}
	}
	return schema, nil
}

// matchExact returns the first column whose canonical form equals a
// canonical alias, iterating aliases in priority order.
func matchExact(_ domain.LogicalField, aliases []string, columns []string) string {
	for _, alias := range aliases {
		want := domain.Normalize(alias)
		if want == "" {
			continue
		}
		for _, col := range columns {
			if domain.Normalize(col) == want {
				return col
			}
		}
	}
	return ""
}

// matchSubstring returns the first column whose canonical form contains
// a canonical alias or vice versa. Deliberately permissive: a short
// alias like "bin" can claim a longer header, with ties broken by alias
// priority then table column order.
func matchSubstring(_ domain.LogicalField, aliases []string, columns []string) string {
	for _, alias := range aliases {
		want := domain.Normalize(alias)
		if want == "" {
			continue
		}
		for _, col := range columns {
			have := domain.Normalize(col)
			if have == "" {
				continue
			}
			if strings.Contains(have, want) || strings.Contains(want, have) {
				return col
			}
		}
	}
	return ""
}

// matchKeyword is the line-location fallback: the first column whose
// canonical form contains both "line" and "location", or "lineloc".
func matchKeyword(field domain.LogicalField, _ []string, columns []string) string {
	if field != domain.FieldLineLocation {
		return ""
	}
	for _, col := range columns {
		have := domain.Normalize(col)
		if (strings.Contains(have, "line") && strings.Contains(have, "location")) ||
			strings.Contains(have, "lineloc") {
			return col
		}
	}
	return ""
}
