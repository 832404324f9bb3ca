package langdet

import "unicode/utf8"

// MaxNGramLength is the longest n-gram a language profile may contain.
// Profiles carry one total occurrence count per length from 1 up to this.
const MaxNGramLength = 3

// ngramLen is the length of an n-gram in runes, not bytes, so a single CJK
// character counts as a 1-gram.
func ngramLen(ngram string) int {
	return utf8.RuneCountInString(ngram)
}
