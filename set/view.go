package set

import (
	"fmt"
	"iter"
	"slices"

	"github.com/gevorghari/jcabi/errors"
	"github.com/gevorghari/jcabi/zero"
)

// sortedView is an unmodifiable ordered view over a detached slice of
// elements. Views are produced by HeadSet and TailSet and share no storage
// with the collection they were derived from.
type sortedView[T any] struct {
	values []T
}

var _ Sorted[int] = (*sortedView[int])(nil)

// Size returns the number of elements in the view.
func (v *sortedView[T]) Size() int {
	return len(v.values)
}

// IsEmpty reports whether the view has no elements.
func (v *sortedView[T]) IsEmpty() bool {
	return len(v.values) == 0
}

// Entries returns all elements as a fresh slice in view order.
func (v *sortedView[T]) Entries() []T {
	return slices.Clone(v.values)
}

// Seq returns an iterator over the elements in view order.
func (v *sortedView[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, element := range v.values {
			if !yield(element) {
				return
			}
		}
	}
}

// First returns the smallest element by sort order.
// Returns errors.ErrNoSuchElement when the view is empty.
func (v *sortedView[T]) First() (T, error) {
	if len(v.values) == 0 {
		return zero.Value[T](), fmt.Errorf("%w: view is empty", errors.ErrNoSuchElement)
	}

	return v.values[0], nil
}

// Last returns the largest element by sort order.
// Returns errors.ErrNoSuchElement when the view is empty.
func (v *sortedView[T]) Last() (T, error) {
	if len(v.values) == 0 {
		return zero.Value[T](), fmt.Errorf("%w: view is empty", errors.ErrNoSuchElement)
	}

	return v.values[len(v.values)-1], nil
}
