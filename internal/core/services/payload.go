package services

import (
	"fmt"
	"strings"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

// BuildPayload serializes a LabelData into the line-delimited summary
// embedded in each label's QR code. The field order is a fixed contract
// for downstream decoders: ASSLY, Part No and Description always lead,
// each optional field appears only when non-empty, and the run date
// always closes the payload. An absent line means "field omitted", not
// "field was empty".
func BuildPayload(data domain.LabelData, date string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ASSLY: %s\n", data.Assembly)
	fmt.Fprintf(&b, "Part No: %s\n", data.PartNumber)
	fmt.Fprintf(&b, "Description: %s\n", data.Description)
	if data.Quantity != "" {
		fmt.Fprintf(&b, "QTY/VEH: %s\n", data.Quantity)
	}
	if data.BinType != "" {
		fmt.Fprintf(&b, "Bin Type: %s\n", data.BinType)
	}
	if data.Type != "" {
		fmt.Fprintf(&b, "Type: %s\n", data.Type)
	}
	if data.PartStatus != "" {
		fmt.Fprintf(&b, "Part Status: %s\n", data.PartStatus)
	}
	if data.LineLocation != "" {
		fmt.Fprintf(&b, "Line Location: %s\n", data.LineLocation)
	}
	fmt.Fprintf(&b, "Date: %s", date)

	return b.String()
}
