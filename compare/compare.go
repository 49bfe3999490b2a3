// Package compare defines the equality contract shared by the drill containers.
package compare

// Comparable is implemented by types that can decide equality with another
// value of the same type. The arraylist package uses it to locate the element
// a Remove or Contains call refers to.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals reports whether a and b are equal according to a's Equals method.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// IndexOf returns the first index i in values for which values[i] equals
// target, or -1 when no element matches.
func IndexOf[T Comparable[T]](values []T, target T) int {
	for i, v := range values {
		if Equals(v, target) {
			return i
		}
	}

	return -1
}
