// Package ordering sorts caller-owned slices in place in one of two
// directions.
//
// The direction is a closed [Mode] set. A value outside that set makes every
// sort call a no-op rather than an error:
//
//	values := []float64{5, 4, 3, 7, 1}
//	ordering.Sort(values, ordering.Ascending)  // [1 3 4 5 7]
//	ordering.Sort(values, ordering.Descending) // [7 5 4 3 1]
//	ordering.Sort(values, ordering.Mode(3))    // unchanged
//
// Sorting only permutes elements. Values are never rewritten, so a sort
// followed by a sort in the opposite direction yields the exact reverse
// sequence with the same multiset of values. Equal elements keep no promised
// relative order.
//
// The algorithm is a bubble sort that stops after the first pass without a
// swap. It is quadratic in the worst case and linear on already ordered input.
package ordering
