package strutil

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Compress run-length encodes text as each character followed by the length
// of its run, so "aabcccccaaa" becomes "a2b1c5a3". The original text is
// returned unless the encoded form is strictly shorter.
//
// Runs are made of identical UTF-8 sequences; an invalid byte is its own
// one-byte character.
func Compress(text string) string {
	// Every run costs at least two bytes, so nothing this short can shrink.
	if len(text) < 3 { //nolint:mnd
		return text
	}

	var sb strings.Builder

	sb.Grow(len(text))

	for i := 0; i < len(text); {
		_, width := utf8.DecodeRuneInString(text[i:])
		char := text[i : i+width]

		run := 0
		for strings.HasPrefix(text[i:], char) {
			run++
			i += width
		}

		sb.WriteString(char)
		sb.WriteString(strconv.Itoa(run))

		if sb.Len() >= len(text) {
			return text
		}
	}

	return sb.String()
}
