package boggle

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics strips combining marks after Unicode NFD decomposition,
// e.g. "É" -> "E". Built once and reused across every normalisation call.
var foldDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Display returns the server's canonical uppercase, diacritic-free form of
// a raw submitted word. This is what gets stored and echoed back, and what
// scoring length is measured against.
func Display(raw string) string {
	folded, _, err := transform.String(foldDiacritics, raw)
	if err != nil {
		folded = raw
	}
	return strings.ToUpper(folded)
}

// Equality collapses the display form's "QU" digraphs to "Q", since a
// single die face labelled Q stands for QU. Two words compare/hash equal
// for duplicate-detection and path-lookup purposes iff their equality
// forms match.
func Equality(display string) string {
	return strings.ReplaceAll(display, "QU", "Q")
}

// Normalize computes both forms from a raw submission in one pass.
func Normalize(raw string) (display, equality string) {
	display = Display(raw)
	return display, Equality(display)
}
