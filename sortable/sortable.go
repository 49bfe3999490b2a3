// Package sortable provides an ordering interface and wrapper types for the
// primitive element types stored in an arraylist.List.
package sortable

import (
	"github.com/amp-labs/amp-drills/compare"
)

// Sortable is the element contract of arraylist.List: equality for value
// based removal plus a strict total order for the sorted read view.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Less adapts a Sortable type to a plain less function, which is the shape
// ordering.SortFunc expects.
func Less[T Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}
