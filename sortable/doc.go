// Package sortable provides wrapper types for primitive types that implement
// the [Sortable] interface, so they can be stored in containers that need both
// equality and ordering.
//
// # Overview
//
// [Sortable] extends [github.com/amp-labs/amp-drills/compare.Comparable] with
// a LessThan method. The wrappers [Int], [Int32], [Float64] and [String] cover
// the element types used throughout the drills:
//
//	list := arraylist.New[sortable.Int]()
//	list.AddAll(30, 20, 10)
//	list.Elements() // [10 20 30]
//
// Convert back with a plain type conversion:
//
//	var v sortable.Int = 42
//	n := int(v)
//
// # Floating point
//
// [Float64] orders NaN before every other value and treats all NaNs as equal,
// the same rule as [cmp.Compare]. Without it a NaN would be neither less than,
// greater than nor equal to anything and no sort could place it.
//
// # Custom types
//
// Implement both methods on a value receiver:
//
//	type Version struct{ Major, Minor int }
//
//	func (v Version) Equals(o Version) bool { return v == o }
//
//	func (v Version) LessThan(o Version) bool {
//	    if v.Major != o.Major {
//	        return v.Major < o.Major
//	    }
//	    return v.Minor < o.Minor
//	}
package sortable
