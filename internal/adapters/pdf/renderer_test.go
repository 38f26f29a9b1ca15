package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kamal-hamza/lbl-cli/internal/adapters/qr"
	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
	"github.com/kamal-hamza/lbl-cli/internal/core/services"
)

func composeTestDocument(t *testing.T, rows int) *domain.LabelDocument {
	t.Helper()

	composer, err := services.NewComposer(domain.DefaultLayoutConfig(), qr.NewEncoder(), nil)
	if err != nil {
		t.Fatal(err)
	}

	var labels []domain.LabelDescriptor
	for i := 0; i < rows; i++ {
		data := domain.LabelData{
			Assembly:     "AX-100-123",
			PartNumber:   "PN-998",
			Description:  "Mounting Bracket LH",
			Quantity:     "2",
			Type:         "BOP",
			LineLocation: "T2_MAIN_R12_B03",
			PartStatus:   "Active",
			BinType:      "Crate",
		}
		label, issues := composer.Compose(data, "26-08-2026", i)
		if len(issues) != 0 {
			t.Fatalf("unexpected issues: %v", issues)
		}
		labels = append(labels, label)
	}
	return services.Paginate(labels)
}

func TestRenderer_Render(t *testing.T) {
	doc := composeTestDocument(t, 3)

	var buf bytes.Buffer
	if err := NewRenderer().Render(context.Background(), doc, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("output is not a PDF")
	}
	if buf.Len() < 1000 {
		t.Errorf("implausibly small document: %d bytes", buf.Len())
	}
}

func TestRenderer_Cancellation(t *testing.T) {
	doc := composeTestDocument(t, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewRenderer().Render(ctx, doc, &buf)
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing may be written after cancellation")
	}
}
