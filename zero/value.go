// Package zero provides helpers for zero values of generic types.
package zero

// Value returns the zero value for type T.
//
//	zero.Value[int]()    // 0
//	zero.Value[string]() // ""
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// Clear overwrites every element of s with the zero value of T. The length
// of s is unchanged. Containers use it to release references held by slack
// slots past their logical size.
func Clear[T any](s []T) {
	for i := range s {
		s[i] = Value[T]()
	}
}
