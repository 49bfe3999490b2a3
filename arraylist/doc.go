// Package arraylist provides List, a growable, index-addressed sequence whose
// read view is always sorted.
//
// A List keeps its elements in a backing slice whose length is the list's
// capacity. Only the first Size slots hold live values. When an Add finds the
// backing slice full, the list allocates a new one twice as large, copies the
// live values across and drops the old one. Capacity never shrinks.
//
//	list := arraylist.New[sortable.Int]()  // capacity 2
//	list.AddAll(30, 20, 10)                // grows to 4
//	list.Remove(20)                        // true
//	list.Elements()                        // [10 30]
//
// Elements returns a fresh copy sorted in ascending order with
// ordering.SortSortable. Insertion order is not preserved in the view; callers
// that need it must track it themselves.
//
// # Concurrency
//
// List is not safe for concurrent use. Wrap it with [NewThreadSafe] when
// several goroutines share one instance. A slice returned by Elements is
// independent of the list and can be read while the list keeps changing.
//
// # Metrics
//
// Every list reports to the default Prometheus registry under its name (see
// [WithName]): arraylist_created_total, arraylist_grow_total and
// arraylist_capacity.
package arraylist
