package arraylist

import "github.com/amp-labs/amp-drills/sortable"

// Container is the method set shared by List and its thread-safe wrapper.
type Container[T sortable.Sortable[T]] interface {
	// Add appends value, doubling the capacity first if the list is full.
	Add(value T)

	// AddAll appends each value in order, as repeated calls to Add.
	AddAll(values ...T)

	// Remove deletes the first element equal to value and reports whether
	// one was found.
	Remove(value T) bool

	// Contains reports whether an element equal to value is present.
	Contains(value T) bool

	// Clear removes every element. Capacity is kept.
	Clear()

	// Size returns the number of live elements.
	Size() int

	// Capacity returns the length of the backing store.
	Capacity() int

	// Elements returns a new slice holding the live elements in ascending
	// order.
	Elements() []T
}

var (
	_ Container[sortable.Int] = (*List[sortable.Int])(nil)
	_ Container[sortable.Int] = (*threadSafeList[sortable.Int])(nil)
)
