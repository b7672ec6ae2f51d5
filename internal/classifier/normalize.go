package classifier

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks so accented input ("kidnappé")
// still matches the ASCII reference vocabulary.
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// normalizeText lowercases, folds diacritics and replaces every
// non-alphanumeric rune with a space. Word boundaries are preserved.
func normalizeText(text string) string {
	text = strings.ToLower(text)
	if folded, _, err := transform.String(foldTransformer, text); err == nil {
		text = folded
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// tokenize returns the normalized word tokens of text.
func tokenize(text string) []string {
	return strings.Fields(normalizeText(text))
}

// canonicalText joins the normalized tokens with single spaces and pads the
// result with one leading and one trailing space. Searching for " keyword "
// inside it is an exact word-boundary match, including multi-word keywords.
func canonicalText(text string) string {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return " "
	}
	return " " + strings.Join(tokens, " ") + " "
}

// QuerySignature returns the normalized form of a query used to key
// feedback records. Distinct spellings of the same complaint collapse to
// one signature.
func QuerySignature(text string) string {
	return strings.Join(tokenize(text), " ")
}
