package domain

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Normalize reduces a column name to its canonical matching form:
// every character that is not an ASCII letter or digit is removed and
// the remainder is lowercased. Two names match when their canonical
// forms are equal.
func Normalize(name string) string {
	return strings.ToLower(nonAlnum.ReplaceAllString(name, ""))
}
