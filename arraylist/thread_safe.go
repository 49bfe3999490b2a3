package arraylist

import (
	"fmt"
	"sync"

	"github.com/amp-labs/amp-drills/sortable"
)

// NewThreadSafe wraps a list so that it can be shared between goroutines.
// Mutations take an exclusive lock; Size, Capacity, Contains and Elements take
// a shared lock. Elements copies under the lock, so the returned slice is a
// consistent snapshot.
//
// The wrapped list must not be used directly afterwards. Wrapping a nil list
// returns nil.
func NewThreadSafe[T sortable.Sortable[T]](list *List[T]) Container[T] {
	if list == nil {
		return nil
	}

	return &threadSafeList[T]{internal: list}
}

// MakeThreadSafe wraps c with NewThreadSafe unless it is already thread-safe.
func MakeThreadSafe[T sortable.Sortable[T]](c Container[T]) Container[T] {
	switch v := c.(type) {
	case nil:
		return nil
	case *threadSafeList[T]:
		return v
	case *List[T]:
		if v == nil {
			return nil
		}

		return NewThreadSafe(v)
	default:
		return &threadSafeList[T]{internal: c}
	}
}

type threadSafeList[T sortable.Sortable[T]] struct {
	mutex    sync.RWMutex
	internal Container[T]
}

func (t *threadSafeList[T]) Add(value T) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Add(value)
}

func (t *threadSafeList[T]) AddAll(values ...T) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.AddAll(values...)
}

func (t *threadSafeList[T]) Remove(value T) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Remove(value)
}

func (t *threadSafeList[T]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Clear()
}

func (t *threadSafeList[T]) Contains(value T) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Contains(value)
}

func (t *threadSafeList[T]) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Size()
}

func (t *threadSafeList[T]) Capacity() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Capacity()
}

func (t *threadSafeList[T]) Elements() []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Elements()
}

func (t *threadSafeList[T]) String() string {
	return fmt.Sprintf("%v", t.Elements())
}
