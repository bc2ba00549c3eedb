package diff

import (
	"unicode"
	"unicode/utf8"
)

type tokenClass int

const (
	tokenNone tokenClass = iota
	tokenWord
	tokenSpace
	tokenPunct
)

func classOf(r rune) tokenClass {
	switch {
	case unicode.IsSpace(r):
		return tokenSpace
	case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
		return tokenWord
	default:
		return tokenPunct
	}
}

// Tokenize splits a line into maximal word, punctuation, and whitespace runs.
// The split is lossless: concatenating the tokens reproduces the line byte
// for byte, so offsets can be recovered by accumulating token lengths.
func Tokenize(line []byte) []string {
	if len(line) == 0 {
		return nil
	}
	var tokens []string
	start := 0
	last := tokenNone
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRune(line[i:])
		c := classOf(r)
		if last != tokenNone && c != last {
			tokens = append(tokens, string(line[start:i]))
			start = i
		}
		last = c
		i += size
	}
	return append(tokens, string(line[start:]))
}
