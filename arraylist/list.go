package arraylist

import (
	"fmt"
	"log/slog"

	"github.com/amp-labs/amp-drills/assert"
	"github.com/amp-labs/amp-drills/compare"
	"github.com/amp-labs/amp-drills/errors"
	"github.com/amp-labs/amp-drills/ordering"
	"github.com/amp-labs/amp-drills/sortable"
	"github.com/amp-labs/amp-drills/zero"
)

// DefaultCapacity is the capacity of a list created with New.
const DefaultCapacity = 2

// ErrInvalidCapacity is returned by NewWithCapacity for a capacity below 1.
var ErrInvalidCapacity = fmt.Errorf("%w: capacity must be positive", errors.ErrInvalidArgument)

// List is a growable sequence of elements. The zero value is not usable;
// create lists with New or NewWithCapacity.
type List[T sortable.Sortable[T]] struct {
	// els has length equal to the capacity. Slots at and past size are
	// zeroed slack.
	els  []T
	size int

	name   string
	logger *slog.Logger
}

// New returns an empty list with DefaultCapacity.
func New[T sortable.Sortable[T]](opts ...Option) *List[T] {
	return newList[T](DefaultCapacity, newConfig(opts))
}

// NewWithCapacity returns an empty list whose capacity is exactly capacity.
func NewWithCapacity[T sortable.Sortable[T]](capacity int, opts ...Option) (*List[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCapacity, capacity)
	}

	return newList[T](capacity, newConfig(opts)), nil
}

func newList[T sortable.Sortable[T]](capacity int, cfg config) *List[T] {
	listsCreated.WithLabelValues(cfg.name).Inc()
	listCapacity.WithLabelValues(cfg.name).Set(float64(capacity))

	return &List[T]{
		els:    make([]T, capacity),
		name:   cfg.name,
		logger: cfg.logger,
	}
}

func (l *List[T]) Add(value T) {
	if l.size == len(l.els) {
		l.grow()
	}

	l.els[l.size] = value
	l.size++

	assert.True(l.size <= len(l.els), "arraylist: size %d exceeds capacity %d", l.size, len(l.els))
}

func (l *List[T]) AddAll(values ...T) {
	for _, v := range values {
		l.Add(v)
	}
}

// grow replaces the backing store with one of twice the length holding the
// same live elements.
func (l *List[T]) grow() {
	oldCap := len(l.els)

	els := make([]T, 2*oldCap)
	n := copy(els, l.els[:l.size])
	assert.True(n == l.size, "arraylist: copied %d of %d elements while growing", n, l.size)

	l.els = els

	listGrowths.WithLabelValues(l.name).Inc()
	listCapacity.WithLabelValues(l.name).Set(float64(len(els)))

	l.logger.Debug("arraylist grew",
		"list", l.name,
		"old_capacity", oldCap,
		"new_capacity", len(els),
		"size", l.size)
}

// Remove deletes the first element equal to value, shifting the elements
// after it one slot to the left. It returns false and leaves the list
// unchanged when no element matches.
func (l *List[T]) Remove(value T) bool {
	idx := compare.IndexOf(l.els[:l.size], value)
	if idx < 0 {
		return false
	}

	copy(l.els[idx:], l.els[idx+1:l.size])
	l.size--
	l.els[l.size] = zero.Value[T]()

	return true
}

func (l *List[T]) Contains(value T) bool {
	return compare.IndexOf(l.els[:l.size], value) >= 0
}

func (l *List[T]) Clear() {
	zero.Clear(l.els[:l.size])
	l.size = 0
}

func (l *List[T]) Size() int {
	return l.size
}

func (l *List[T]) Capacity() int {
	return len(l.els)
}

// Elements returns a newly allocated slice of length Size holding the live
// elements sorted in ascending order. The list itself is not reordered.
func (l *List[T]) Elements() []T {
	out := make([]T, l.size)
	copy(out, l.els[:l.size])
	ordering.SortSortable(out, ordering.Ascending)

	return out
}

// String formats the live elements in ascending order.
func (l *List[T]) String() string {
	return fmt.Sprintf("%v", l.Elements())
}
