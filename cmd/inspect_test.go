package cmd

import (
	"testing"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

func TestAliasSnippet(t *testing.T) {
	picked := map[domain.LogicalField]string{
		domain.FieldBinType:  "Carton Kind",
		domain.FieldQuantity: "Pcs per Car",
	}

	got := aliasSnippet(picked)
	want := "aliases:\n" +
		"  bin_type:\n" +
		"    - \"Carton Kind\"\n" +
		"  quantity_per_vehicle:\n" +
		"    - \"Pcs per Car\"\n"
	if got != want {
		t.Errorf("snippet = %q, want %q", got, want)
	}
}

func TestAliasSnippet_DeterministicOrder(t *testing.T) {
	picked := map[domain.LogicalField]string{
		domain.FieldType:       "Kind",
		domain.FieldPartStatus: "State",
		domain.FieldBinType:    "Carton",
	}

	first := aliasSnippet(picked)
	for i := 0; i < 10; i++ {
		if aliasSnippet(picked) != first {
			t.Fatal("snippet order must not depend on map iteration")
		}
	}
}
