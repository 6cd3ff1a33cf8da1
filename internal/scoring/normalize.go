// Package scoring implements the RoleColor keyword-scoring core: text
// normalization, boundary-respecting keyword matching, damped score
// aggregation, and human-readable explanation of the dominant category.
package scoring

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text and strips punctuation while preserving word
// structure: letters, digits, underscore, hyphens and arrow glyphs survive,
// everything else becomes a space. Whitespace runs collapse to a single
// space and the result is trimmed. Input is NFKC-folded first so
// compatibility forms (full-width characters, ligatures) match the plain
// keywords in the taxonomy.
//
// Normalize is total and idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ToLower(text)

	// Keep arrows like 0->1 / 0→1; hyphens are word characters here so
	// hyphenated keywords ("fast-paced", "go-live") survive as one token.
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '→' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
