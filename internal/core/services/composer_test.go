package services

import (
	"fmt"
	"testing"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
	"github.com/kamal-hamza/lbl-cli/internal/core/ports/mocks"
)

func sampleData() domain.LabelData {
	return domain.LabelData{
		Assembly:     "AX-100-123",
		PartNumber:   "PN-998",
		Description:  "Bracket",
		Quantity:     "4",
		Type:         "Fastener",
		LineLocation: "ST1_A_B2_C",
		PartStatus:   "ACTIVE",
		BinType:      "Tote",
	}
}

func TestComposer_PanelOrderAndGeometry(t *testing.T) {
	composer, err := NewComposer(domain.DefaultLayoutConfig(), mocks.NewMockQREncoder(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	label, issues := composer.Compose(sampleData(), "26-08-2026", 0)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}

	wantNames := []string{"identity", "part", "description", "quantity", "location"}
	if len(label.Panels) != len(wantNames) {
		t.Fatalf("expected %d panels, got %d", len(wantNames), len(label.Panels))
	}
	for i, want := range wantNames {
		if label.Panels[i].Name != want {
			t.Errorf("panel %d = %q, want %q", i, label.Panels[i].Name, want)
		}
	}

	wantWidths := map[string][]float64{
		"identity":    {0.25, 0.15, 0.60},
		"part":        {0.25, 0.50, 0.25},
		"description": {0.25, 0.75},
		"quantity":    {0.25, 0.175, 0.175, 0.40},
	}
	for _, panel := range label.Panels {
		want, ok := wantWidths[panel.Name]
		if !ok {
			continue
		}
		if len(panel.ColWidths) != len(want) {
			t.Errorf("%s: %d columns, want %d", panel.Name, len(panel.ColWidths), len(want))
			continue
		}
		for i, w := range want {
			if panel.ColWidths[i] != w {
				t.Errorf("%s col %d width = %v, want %v", panel.Name, i, panel.ColWidths[i], w)
			}
		}
	}
}

func TestComposer_PanelPadding(t *testing.T) {
	composer, _ := NewComposer(domain.DefaultLayoutConfig(), mocks.NewMockQREncoder(), nil)

	label, _ := composer.Compose(sampleData(), "26-08-2026", 0)

	// identity and location pad 2pt all round; the middle panels use
	// 3pt horizontally but keep 2pt vertically.
	wantH := map[string]float64{
		"identity":    2,
		"part":        3,
		"description": 3,
		"quantity":    3,
		"location":    2,
	}
	for _, panel := range label.Panels {
		if panel.PaddingHPt != wantH[panel.Name] {
			t.Errorf("%s horizontal padding = %v, want %v", panel.Name, panel.PaddingHPt, wantH[panel.Name])
		}
		if panel.PaddingVPt != 2 {
			t.Errorf("%s vertical padding = %v, want 2", panel.Name, panel.PaddingVPt)
		}
	}
}

func TestComposer_AssemblyEmphasis(t *testing.T) {
	composer, _ := NewComposer(domain.DefaultLayoutConfig(), mocks.NewMockQREncoder(), nil)

	label, _ := composer.Compose(sampleData(), "26-08-2026", 0)
	identity := label.Panels[0]
	value := identity.Cells[0][2]

	if len(value.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(value.Runs))
	}
	if value.Runs[0].Text != "AX-100-" || value.Runs[0].Bold {
		t.Errorf("main run = %+v, want plain %q", value.Runs[0], "AX-100-")
	}
	if value.Runs[1].Text != "123" || !value.Runs[1].Bold {
		t.Errorf("suffix run = %+v, want bold %q", value.Runs[1], "123")
	}
	if value.Runs[1].Size <= value.Runs[0].Size {
		t.Error("suffix must be rendered larger than the main portion")
	}
}

func TestComposer_QRSpansThreeRows(t *testing.T) {
	composer, _ := NewComposer(domain.DefaultLayoutConfig(), mocks.NewMockQREncoder(), nil)

	label, _ := composer.Compose(sampleData(), "26-08-2026", 0)
	quantity := label.Panels[3]

	if len(quantity.Cells) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(quantity.Cells))
	}
	span, ok := quantity.SpanAt(0, 3)
	if !ok {
		t.Fatal("expected span anchored at QR cell")
	}
	if span.RowSpan != 3 || span.ColSpan != 1 {
		t.Errorf("span = %+v, want RowSpan=3 ColSpan=1", span)
	}

	qrCell := quantity.Cells[0][3]
	if qrCell.Image == nil {
		t.Fatal("QR cell should carry the encoded raster")
	}
	if qrCell.Image.WidthCm != domain.QRSizeCm || qrCell.Image.HeightCm != domain.QRSizeCm {
		t.Errorf("QR raster size = %v x %v cm, want %v", qrCell.Image.WidthCm, qrCell.Image.HeightCm, domain.QRSizeCm)
	}
}

func TestComposer_QRFailureDegrades(t *testing.T) {
	encoder := mocks.NewMockQREncoder()
	encoder.Err = fmt.Errorf("payload too long")
	composer, _ := NewComposer(domain.DefaultLayoutConfig(), encoder, nil)

	label, issues := composer.Compose(sampleData(), "26-08-2026", 7)

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Row != 7 || issues[0].Region != "qr" {
		t.Errorf("issue = %+v, want row 7 region qr", issues[0])
	}

	qrCell := label.Panels[3].Cells[0][3]
	if qrCell.Image != nil {
		t.Error("degraded QR cell must not carry an image")
	}
	if len(qrCell.Runs) != 1 || qrCell.Runs[0].Text != "QR" {
		t.Errorf("degraded QR cell should show a textual placeholder, got %+v", qrCell.Runs)
	}
}

func TestComposer_LocationPanelUsesConfiguredWidths(t *testing.T) {
	layout := domain.LayoutConfig{LocationWidths: [5]float64{0.3, 0.25, 0.15, 0.15, 0.15}}
	composer, err := NewComposer(layout, mocks.NewMockQREncoder(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	label, _ := composer.Compose(sampleData(), "26-08-2026", 0)
	location := label.Panels[4]

	for i, want := range layout.LocationWidths {
		if location.ColWidths[i] != want {
			t.Errorf("location col %d = %v, want %v", i, location.ColWidths[i], want)
		}
	}

	wantTexts := []string{"LINE LOCATION", "ST1", "A", "B2", "C"}
	for i, want := range wantTexts {
		got := location.Cells[0][i].Runs[0].Text
		if got != want {
			t.Errorf("location cell %d = %q, want %q", i, got, want)
		}
	}
}

func TestComposer_RejectsInvalidLayout(t *testing.T) {
	layout := domain.LayoutConfig{LocationWidths: [5]float64{0.5, 0.5, 0.5, 0.5, 0.5}}
	if _, err := NewComposer(layout, mocks.NewMockQREncoder(), nil); err == nil {
		t.Fatal("expected error for widths that do not sum to 1.0")
	}
}

func TestComposer_BrandingPlacement(t *testing.T) {
	logo := &domain.Raster{PNG: []byte("PNG"), WidthCm: 2.0, HeightCm: 0.75}
	composer, _ := NewComposer(domain.DefaultLayoutConfig(), mocks.NewMockQREncoder(), logo)

	label, _ := composer.Compose(sampleData(), "26-08-2026", 0)
	leading := label.Panels[0].Cells[0][0]
	if leading.Image != logo {
		t.Error("identity panel leading cell should carry the branding raster")
	}

	// without branding the slot stays an empty bordered cell
	plain, _ := NewComposer(domain.DefaultLayoutConfig(), mocks.NewMockQREncoder(), nil)
	label, _ = plain.Compose(sampleData(), "26-08-2026", 0)
	leading = label.Panels[0].Cells[0][0]
	if leading.Image != nil || len(leading.Runs) != 0 {
		t.Errorf("expected empty branding slot, got %+v", leading)
	}
}
