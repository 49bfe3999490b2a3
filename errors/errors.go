// Package errors holds the error values shared across the drill packages and a
// small accumulator for reporting several failures at once.
package errors

import "errors"

// ErrInvalidArgument marks a usage error: the caller passed a value the
// operation cannot accept. Package-specific errors wrap it.
var ErrInvalidArgument = errors.New("invalid argument")

// Collection is a thread-unsafe utility for accumulating multiple errors.
// The zero value is ready to use.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when only
// one was added, and errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
