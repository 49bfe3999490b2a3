package strutil

import (
	"golang.org/x/text/cases"
)

// IsPermutation reports whether a and b contain the same characters with the
// same multiplicities. Strings of different byte length are rejected without
// counting.
func IsPermutation(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[rune]int)
	for _, r := range a {
		counts[r]++
	}

	for _, r := range b {
		if counts[r] == 0 {
			return false
		}

		counts[r]--
	}

	return true
}

// IsPermutationOfPalindrome reports whether the letters of text can be
// rearranged into a palindrome, that is whether at most one letter occurs an
// odd number of times. Only the Latin letters a to z count, without regard to
// case; digits, spaces, punctuation and other scripts are ignored.
func IsPermutationOfPalindrome(text string) bool {
	folded := cases.Fold().String(text)

	// Bit i is set while letter 'a'+i has been seen an odd number of times.
	var odd uint32

	for _, r := range folded {
		if r < 'a' || r > 'z' {
			continue
		}

		odd ^= 1 << (r - 'a')
	}

	// Zero or exactly one bit set.
	return odd&(odd-1) == 0
}
