package dataprep

import (
	"regexp"
	"strings"
)

var (
	wordRegexp       = regexp.MustCompile(`\b\w+\b`)
	nonAlnumRegexp   = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespaceRegexp = regexp.MustCompile(`\s+`)
)

// Tokenize lowercases text and extracts every maximal run of word
// characters (letters, digits, underscore) in order. Punctuation and
// whitespace separate tokens and are never emitted.
func Tokenize(text string) []string {
	tokens := wordRegexp.FindAllString(strings.ToLower(text), -1)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// CleanPunctuation removes every character that is not an ASCII letter,
// digit, or whitespace, collapses whitespace runs into single spaces,
// and trims the ends. Case is preserved.
func CleanPunctuation(text string) string {
	text = nonAlnumRegexp.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespaceRegexp.ReplaceAllString(text, " "))
}

// RemoveStopwords splits text on whitespace and drops every token whose
// lowercased form is a member of stopwords, rejoining the survivors
// with single spaces. Tokens are compared whole: punctuation stuck to a
// token is not stripped first, so "the." survives a "the" stopword.
// Membership against the set itself is case-sensitive as provided.
func RemoveStopwords(text string, stopwords map[string]struct{}) string {
	words := strings.Fields(text)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, drop := stopwords[strings.ToLower(w)]; drop {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// StopwordSet builds a stopword set from a comma-separated list, the
// form the CLI accepts. Entries are used verbatim; an empty list yields
// an empty set.
func StopwordSet(list string) map[string]struct{} {
	set := make(map[string]struct{})
	if list == "" {
		return set
	}
	for _, w := range strings.Split(list, ",") {
		set[w] = struct{}{}
	}
	return set
}
