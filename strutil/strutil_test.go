package strutil_test

import (
	"math"
	"testing"

	drillerrors "github.com/amp-labs/amp-drills/errors"
	"github.com/amp-labs/amp-drills/strutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "single char", input: "a", expected: "a"},
		{name: "equal length kept", input: "aa", expected: "aa"},
		{name: "no advantage", input: "ab", expected: "ab"},
		{name: "three of a kind", input: "aaa", expected: "a3"},
		{name: "typical example", input: "aabcccccaaa", expected: "a2b1c5a3"},
		{name: "all distinct", input: "abcdef", expected: "abcdef"},
		{name: "double digit run", input: "zzzzzzzzzzzz", expected: "z12"},
		{name: "case sensitive runs", input: "aaaAAA", expected: "a3A3"},
		{name: "multibyte runs", input: "ééééé", expected: "é5"},
		{name: "encoded equal to input", input: "aabb", expected: "aabb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, strutil.Compress(tt.input))
		})
	}
}

func TestIsPermutation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{name: "length mismatch", a: "abc", b: "ab", expected: false},
		{name: "longer second", a: "ab", b: "abb", expected: false},
		{name: "valid permutation", a: "ab", b: "ba", expected: true},
		{name: "different characters", a: "abc", b: "abd", expected: false},
		{name: "same multiset", a: "listen", b: "silent", expected: true},
		{name: "multiplicity differs", a: "aab", b: "abb", expected: false},
		{name: "both empty", a: "", b: "", expected: true},
		{name: "case sensitive", a: "Ab", b: "ab", expected: false},
		{name: "multibyte", a: "héllo", b: "olléh", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, strutil.IsPermutation(tt.a, tt.b))
		})
	}
}

func TestIsPermutationOfPalindrome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "all distinct", input: "abc", expected: false},
		{name: "palindrome", input: "aba", expected: true},
		{name: "permutation of palindrome", input: "baa", expected: true},
		{name: "digits ignored", input: "A1bc", expected: false},
		{name: "case and spaces ignored", input: "Tact Coa", expected: true},
		{name: "empty", input: "", expected: true},
		{name: "only ignored characters", input: "12 !?", expected: true},
		{name: "even counts", input: "aabbcc", expected: true},
		{name: "two odd counts", input: "aabbcd", expected: false},
		{name: "other scripts ignored", input: "aπbc", expected: false},
		{name: "other scripts do not break pairs", input: "aπa", expected: true},
		{name: "mixed case pairs", input: "AaBb", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, strutil.IsPermutationOfPalindrome(tt.input))
		})
	}
}

func TestStringToInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int32
	}{
		{name: "simple positive", input: "123", expected: 123},
		{name: "simple negative", input: "-123", expected: -123},
		{name: "explicit plus", input: "+77", expected: 77},
		{name: "zero", input: "0", expected: 0},
		{name: "negative zero", input: "-0", expected: 0},
		{name: "leading zeros", input: "000042", expected: 42},
		{name: "leading spaces", input: "   456", expected: 456},
		{name: "max value", input: "2147483647", expected: math.MaxInt32},
		{name: "min value", input: "-2147483648", expected: math.MinInt32},
		{name: "overflow clamps", input: "2147483648", expected: math.MaxInt32},
		{name: "underflow clamps", input: "-2147483649", expected: math.MinInt32},
		{name: "far overflow clamps", input: "99999999999999999999999", expected: math.MaxInt32},
		{name: "far underflow clamps", input: "-99999999999999999999999", expected: math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := strutil.StringToInteger(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStringToInteger_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "all spaces", input: "    "},
		{name: "bare sign", input: "-"},
		{name: "sign then letter", input: "+a23"},
		{name: "double sign", input: "--5"},
		{name: "trailing space", input: "12 "},
		{name: "embedded letter", input: "12a3"},
		{name: "decimal point", input: "1.5"},
		{name: "leading tab", input: "\t7"},
		{name: "letter after overflow", input: "99999999999x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := strutil.StringToInteger(tt.input)
			require.Error(t, err)
			require.ErrorIs(t, err, strutil.ErrInvalidNumber)
			require.ErrorIs(t, err, drillerrors.ErrInvalidArgument)
			assert.Zero(t, got)
		})
	}
}

func TestStringToInteger_ErrorNamesOffset(t *testing.T) {
	t.Parallel()

	_, err := strutil.StringToInteger("+a23")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 1")
}
