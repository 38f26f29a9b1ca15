package domain

import "strings"

// NotAvailable is the sentinel stored in a required field whose column
// could not be resolved at all. A blank cell in a resolved column stays
// blank; the sentinel marks a missing column, not a missing value.
const NotAvailable = "N/A"

// LabelData holds the extracted values for one catalog row. All values
// are trimmed strings; optional fields are empty when unresolved or
// blank. Immutable after extraction.
type LabelData struct {
	Assembly     string
	PartNumber   string
	Description  string
	Quantity     string
	Type         string
	LineLocation string
	PartStatus   string
	BinType      string
}

// LocationSegmentCount is the fixed number of boxes in the location
// panel of every label.
const LocationSegmentCount = 4

// LocationSegments is the ordered decomposition of a raw line-location
// value into its four display boxes.
type LocationSegments [LocationSegmentCount]string

// SplitLocation splits a raw line-location value on underscores into
// exactly four segments. Short inputs are right-padded with empty
// strings, long inputs are truncated. Empty input yields four empty
// segments.
func SplitLocation(raw string) LocationSegments {
	var segments LocationSegments
	if raw == "" {
		return segments
	}
	parts := strings.Split(raw, "_")
	for i := 0; i < LocationSegmentCount && i < len(parts); i++ {
		segments[i] = parts[i]
	}
	return segments
}

// AssemblyParts splits an assembly code for display: the last three
// characters are rendered emphasized, the remainder plain. Codes of
// three characters or fewer are all suffix.
func AssemblyParts(code string) (main, suffix string) {
	if len(code) <= 3 {
		return "", code
	}
	return code[:len(code)-3], code[len(code)-3:]
}
