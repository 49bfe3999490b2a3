package strutil

import (
	"fmt"
	"math"

	"github.com/amp-labs/amp-drills/errors"
)

// ErrInvalidNumber is returned by StringToInteger for text that is not an
// optionally signed run of decimal digits.
var ErrInvalidNumber = fmt.Errorf("%w: invalid number", errors.ErrInvalidArgument)

// StringToInteger parses text as a base 10 int32. Leading spaces are skipped
// and a single '+' or '-' may precede the digits. Values above math.MaxInt32
// clamp to math.MaxInt32 and values below math.MinInt32 clamp to
// math.MinInt32; saturation is not an error.
//
// Any other character, including trailing spaces, is an ErrInvalidNumber, as
// is text that holds no digits at all (empty, only spaces, or a bare sign).
func StringToInteger(text string) (int32, error) {
	i := 0
	for i < len(text) && text[i] == ' ' {
		i++
	}

	if i == len(text) {
		return 0, fmt.Errorf("%w: no digits in %q", ErrInvalidNumber, text)
	}

	negative := false

	switch text[i] {
	case '-':
		negative = true
		i++
	case '+':
		i++
	}

	if i == len(text) {
		return 0, fmt.Errorf("%w: no digits in %q", ErrInvalidNumber, text)
	}

	// Accumulate as a magnitude in int64; one extra digit past int32 range is
	// enough to know the result saturates.
	var magnitude int64

	limit := int64(math.MaxInt32)
	if negative {
		limit = -int64(math.MinInt32)
	}

	for ; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: unexpected %q at offset %d in %q", ErrInvalidNumber, c, i, text)
		}

		if magnitude <= limit {
			magnitude = magnitude*10 + int64(c-'0') //nolint:mnd
		}
	}

	if magnitude > limit {
		magnitude = limit
	}

	if negative {
		return int32(-magnitude), nil //nolint:gosec
	}

	return int32(magnitude), nil //nolint:gosec
}
