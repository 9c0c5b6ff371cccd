package core

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeTitle produces the canonical comparison form of a title:
// NFKD-decomposed, lowercased, punctuation stripped (apostrophes and
// hyphens kept), whitespace collapsed. All matching and deduplication
// keys on this form.
func NormalizeTitle(title string) string {
	decomposed := norm.NFKD.String(title)
	lower := strings.ToLower(decomposed)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '\'':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// honorifics stripped from creator names before comparison.
var honorifics = map[string]bool{
	"dr": true, "mr": true, "mrs": true, "ms": true,
	"prof": true, "sir": true, "dame": true,
}

// NormalizeCreator produces the canonical comparison form of a creator
// name: lowercased, honorific prefixes removed, whitespace collapsed.
func NormalizeCreator(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	words := strings.Fields(lower)

	kept := words[:0]
	for i, w := range words {
		trimmed := strings.TrimSuffix(w, ".")
		if honorifics[trimmed] && i < len(words)-1 {
			continue
		}
		kept = append(kept, w)
	}

	return strings.Join(kept, " ")
}

// Tokenize splits a normalized string into words.
func Tokenize(s string) []string {
	return strings.Fields(s)
}
