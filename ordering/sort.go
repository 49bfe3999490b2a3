package ordering

import (
	"cmp"

	"github.com/amp-labs/amp-drills/sortable"
)

// Sort orders values in place according to mode using cmp.Less, so negative
// numbers and NaN are placed correctly. An invalid mode leaves values
// untouched.
func Sort[T cmp.Ordered](values []T, mode Mode) {
	SortFunc(values, mode, cmp.Less[T])
}

// SortSortable orders values in place using their LessThan method.
func SortSortable[T sortable.Sortable[T]](values []T, mode Mode) {
	SortFunc(values, mode, sortable.Less[T])
}

// SortFunc orders values in place according to mode, where less must be a
// strict weak order. An invalid mode, an empty slice, or a single element
// slice is a no-op.
func SortFunc[T any](values []T, mode Mode, less func(a, b T) bool) {
	if !mode.Valid() || len(values) < 2 {
		return
	}

	// outOfOrder reports whether a must move past b.
	outOfOrder := func(a, b T) bool { return less(b, a) }
	if mode == Descending {
		outOfOrder = less
	}

	for end := len(values) - 1; end > 0; end-- {
		swapped := false

		for i := range end {
			if outOfOrder(values[i], values[i+1]) {
				values[i], values[i+1] = values[i+1], values[i]
				swapped = true
			}
		}

		if !swapped {
			return
		}
	}
}

// IsSorted reports whether values already satisfy mode. It returns false for
// an invalid mode.
func IsSorted[T cmp.Ordered](values []T, mode Mode) bool {
	if !mode.Valid() {
		return false
	}

	for i := 1; i < len(values); i++ {
		if mode == Ascending && cmp.Less(values[i], values[i-1]) {
			return false
		}

		if mode == Descending && cmp.Less(values[i-1], values[i]) {
			return false
		}
	}

	return true
}
