package services

import (
	"sort"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

// StatsService aggregates field coverage and value distributions over a
// resolved table, for the stats command and its charts.
type StatsService struct{}

// NewStatsService creates a stats service
func NewStatsService() *StatsService {
	return &StatsService{}
}

// FieldCoverage counts how many rows carry a usable value for one
// logical field.
type FieldCoverage struct {
	Field    domain.LogicalField
	Column   string // resolved column name, empty when unresolved
	NonEmpty int
}

// ValueCount is one bucket of a value distribution, e.g. one part
// status and how many rows carry it.
type ValueCount struct {
	Value string
	Count int
}

// Stats is the aggregate over one table.
type Stats struct {
	Rows       int
	Coverage   []FieldCoverage
	TypeDist   []ValueCount
	StatusDist []ValueCount
	BinDist    []ValueCount
}

// Execute walks every row once and aggregates coverage plus the type,
// status and bin-type distributions. Distributions are sorted by count
// descending, then value, for stable output.
func (s *StatsService) Execute(table *domain.Table, schema domain.ResolvedSchema) *Stats {
	extractor := NewExtractor(schema)
	stats := &Stats{Rows: table.RowCount()}

	counts := make(map[domain.LogicalField]int)
	types := make(map[string]int)
	statuses := make(map[string]int)
	bins := make(map[string]int)

	for row := 0; row < table.RowCount(); row++ {
		data := extractor.Extract(table, row)
		values := map[domain.LogicalField]string{
			domain.FieldAssembly:     data.Assembly,
			domain.FieldPartNumber:   data.PartNumber,
			domain.FieldDescription:  data.Description,
			domain.FieldQuantity:     data.Quantity,
			domain.FieldType:         data.Type,
			domain.FieldLineLocation: data.LineLocation,
			domain.FieldPartStatus:   data.PartStatus,
			domain.FieldBinType:      data.BinType,
		}
		for f, v := range values {
			if v != "" && v != domain.NotAvailable {
				counts[f]++
			}
		}
		if data.Type != "" {
			types[data.Type]++
		}
		if data.PartStatus != "" {
			statuses[data.PartStatus]++
		}
		if data.BinType != "" {
			bins[data.BinType]++
		}
	}

	for _, f := range domain.AllFields() {
		col, _ := schema.Column(f)
		stats.Coverage = append(stats.Coverage, FieldCoverage{
			Field:    f,
			Column:   col,
			NonEmpty: counts[f],
		})
	}
	stats.TypeDist = sortedCounts(types)
	stats.StatusDist = sortedCounts(statuses)
	stats.BinDist = sortedCounts(bins)
	return stats
}

func sortedCounts(m map[string]int) []ValueCount {
	out := make([]ValueCount, 0, len(m))
	for v, n := range m {
		out = append(out, ValueCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}
