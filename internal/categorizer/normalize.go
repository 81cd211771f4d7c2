// Package categorizer assigns legislative events to technical areas using
// a deterministic keyword heuristic. It performs no I/O: the area catalog
// and rule tables are passed in as an immutable snapshot, so the same
// event always resolves to the same area for a given snapshot.
package categorizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SearchText builds the single lower-cased string the scoring engine sees.
// Fields are joined in a fixed order with single spaces; absent fields
// contribute nothing. Dates and links are deliberately excluded so they
// can never produce keyword matches.
func SearchText(name, theme, eventType, location, source string) string {
	fields := []string{name, theme, eventType, location, source}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes combining marks after canonical decomposition, so
// "educação" and "educacao" compare equal. Handles all Portuguese
// diacritics, not just the ASCII-adjacent ones.
func StripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}
