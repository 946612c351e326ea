package mapreduce

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into lowercase alphanumeric tokens. Every rune that is
// neither a letter nor a digit separates tokens, and so does invalid UTF-8.
// The returned sequence is lazy and can be ranged over more than once.
func Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		i := 0
		for i < len(text) {
			r, size := utf8.DecodeRuneInString(text[i:])
			if !isWordRune(r) {
				i += size
				continue
			}

			start := i
			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if !isWordRune(r) {
					break
				}
				i += size
			}

			if !yield(strings.ToLower(text[start:i])) {
				return
			}
		}
	}
}

// CountTokens returns the number of tokens Tokenize would produce.
func CountTokens(text string) int64 {
	var n int64
	for range Tokenize(text) {
		n++
	}
	return n
}

func isWordRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
