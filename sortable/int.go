package sortable

// Int is a sortable wrapper for the built-in int type.
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Int32 is a sortable wrapper for int32, the result type of
// strutil.StringToInteger.
type Int32 int32

var _ Sortable[Int32] = (*Int32)(nil)

func (i Int32) Equals(other Int32) bool {
	return int32(i) == int32(other)
}

func (i Int32) LessThan(other Int32) bool {
	return int32(i) < int32(other)
}
