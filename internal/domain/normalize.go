package domain

import (
	"strings"
	"unicode"
)

// NormalizeWord prepares a word for comparison against text tokens:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - strips surrounding punctuation ("word," matches "word")
//
// Inner hyphens and apostrophes are preserved.
func NormalizeWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	word = strings.ToLower(word)
	return strings.TrimFunc(word, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

// Tokenize splits text content into whitespace-delimited tokens. The token
// count is the text's total word count; comprehension counting normalizes
// each token separately.
func Tokenize(content string) []string {
	return strings.Fields(content)
}
