package services

import (
	"strings"
	"testing"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

func TestBuildPayload_AllFields(t *testing.T) {
	data := domain.LabelData{
		Assembly:     "AX-100-123",
		PartNumber:   "PN-998",
		Description:  "Bracket",
		Quantity:     "4",
		Type:         "Fastener",
		LineLocation: "ST1_A_B2_C",
		PartStatus:   "ACTIVE",
		BinType:      "Tote",
	}

	payload := BuildPayload(data, "26-08-2026")
	want := "ASSLY: AX-100-123\n" +
		"Part No: PN-998\n" +
		"Description: Bracket\n" +
		"QTY/VEH: 4\n" +
		"Bin Type: Tote\n" +
		"Type: Fastener\n" +
		"Part Status: ACTIVE\n" +
		"Line Location: ST1_A_B2_C\n" +
		"Date: 26-08-2026"

	if payload != want {
		t.Errorf("payload mismatch:\ngot:\n%s\nwant:\n%s", payload, want)
	}
}

func TestBuildPayload_OmitsEmptyOptionalFields(t *testing.T) {
	data := domain.LabelData{
		Assembly:    "AX-100-123",
		PartNumber:  "PN-998",
		Description: "Bracket",
	}

	payload := BuildPayload(data, "26-08-2026")
	want := "ASSLY: AX-100-123\nPart No: PN-998\nDescription: Bracket\nDate: 26-08-2026"
	if payload != want {
		t.Errorf("payload = %q, want %q", payload, want)
	}

	for _, label := range []string{"QTY/VEH", "Bin Type", "Type", "Part Status", "Line Location"} {
		if strings.Contains(payload, label) {
			t.Errorf("empty optional field %q must be omitted, not blank", label)
		}
	}
}

func TestBuildPayload_DateAlwaysLast(t *testing.T) {
	data := domain.LabelData{
		Assembly:    "A",
		PartNumber:  "B",
		Description: "C",
		Type:        "T",
	}
	payload := BuildPayload(data, "01-01-2026")
	lines := strings.Split(payload, "\n")
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "Date: ") {
		t.Errorf("last line must be the date, got %q", last)
	}
	if strings.HasSuffix(payload, "\n") {
		t.Error("payload must not end with a trailing newline")
	}
}
