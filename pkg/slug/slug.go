// Package slug derives the anchor id GitLab assigns to a Markdown heading.
//
// The algorithm mirrors gitlab/utils/markdown.rb so that fragment links
// validated against these ids behave exactly as they do on a rendered
// GitLab page.
package slug

import (
	"strings"
	"unicode"
)

// Heading converts heading text to the anchor id GitLab generates for it.
//
// Algorithm:
//  1. Trim leading/trailing whitespace.
//  2. Lowercase.
//  3. Drop every rune that is not a word character (Unicode letter,
//     number, or underscore), a space, or a hyphen.
//  4. Collapse every run of spaces and hyphens into a single hyphen.
//
// Duplicate headings are not disambiguated here; GitLab appends -1, -2,
// ... suffixes, which callers tracking duplicates must handle themselves.
// An all-punctuation heading yields the empty string, matching GitLab.
func Heading(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	var buf strings.Builder
	buf.Grow(len(text))

	pendingHyphen := false

	for _, ch := range text {
		switch {
		case ch == ' ' || ch == '-':
			pendingHyphen = true
		case isWordRune(ch):
			if pendingHyphen {
				buf.WriteByte('-')
				pendingHyphen = false
			}
			buf.WriteRune(ch)
		}
		// Everything else is silently dropped without breaking a
		// space/hyphen run: "a - !!! - b" collapses to "a-b".
	}

	// A run of spaces/hyphens can survive at the end when dropped
	// punctuation follows it ("hi !"); GitLab keeps the hyphen there,
	// and a bare "! !" slugs to "-".
	if pendingHyphen {
		buf.WriteByte('-')
	}

	return buf.String()
}

// isWordRune reports whether ch matches regexp \w under Unicode
// semantics: any letter, any numeric rune, or underscore.
func isWordRune(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsNumber(ch)
}
