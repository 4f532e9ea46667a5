package utils

import (
	"strings"
	"unicode"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitleCase lower-cases s and upper-cases every letter that follows a
// non-letter, so apostrophes and hyphens start a new word too
// ("o'brien" becomes "O'Brien"). Names, routes and descriptions are
// stored in this form.
func TitleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range strings.ToLower(NormalizeSpace(s)) {
		if unicode.IsLetter(r) && !prevLetter {
			r = unicode.ToUpper(r)
		}
		prevLetter = unicode.IsLetter(r)
		b.WriteRune(r)
	}
	return b.String()
}

// UpperID normalizes identifier-like fields (plate numbers, agency
// acronyms, SSS/PhilHealth/Pag-IBIG numbers).
func UpperID(s string) string {
	return strings.ToUpper(NormalizeSpace(s))
}

// Initial returns the first letter of s upper-cased, or "" when empty.
func Initial(s string) string {
	s = TrimOrEmpty(s)
	if s == "" {
		return ""
	}
	return strings.ToUpper(string([]rune(s)[0]))
}
