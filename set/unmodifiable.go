package set

import (
	"iter"

	"github.com/gevorghari/jcabi/assert"
	"github.com/gevorghari/jcabi/errors"
)

// Unmodifiable adapts an immutable sorted set to the mutable Set protocol
// for callers that expect the broader capability. Every write entry point
// fails with errors.ErrUnsupportedOperation, unconditionally and regardless
// of the set contents; read operations delegate to the underlying set.
// The rejection never mutates anything, so the underlying set is unaffected
// even when the error is ignored.
func Unmodifiable[T comparable](s *ImmutableSortedSet[T]) Set[T] {
	assert.False(s == nil, "set: nil immutable sorted set")

	return &unmodifiableSet[T]{set: s}
}

// unmodifiableSet is a decorator that exposes an immutable sorted set
// through the mutable Set protocol while refusing every write.
type unmodifiableSet[T comparable] struct {
	set *ImmutableSortedSet[T]
}

var _ Set[int] = (*unmodifiableSet[int])(nil)

// Add always fails with errors.ErrUnsupportedOperation.
func (u *unmodifiableSet[T]) Add(element T) error {
	return errors.ErrUnsupportedOperation
}

// AddAll always fails with errors.ErrUnsupportedOperation.
func (u *unmodifiableSet[T]) AddAll(elements ...T) error {
	return errors.ErrUnsupportedOperation
}

// Remove always fails with errors.ErrUnsupportedOperation.
func (u *unmodifiableSet[T]) Remove(element T) error {
	return errors.ErrUnsupportedOperation
}

// RemoveAll always fails with errors.ErrUnsupportedOperation.
func (u *unmodifiableSet[T]) RemoveAll(elements ...T) error {
	return errors.ErrUnsupportedOperation
}

// RetainAll always fails with errors.ErrUnsupportedOperation.
func (u *unmodifiableSet[T]) RetainAll(elements ...T) error {
	return errors.ErrUnsupportedOperation
}

// Clear always fails with errors.ErrUnsupportedOperation.
func (u *unmodifiableSet[T]) Clear() error {
	return errors.ErrUnsupportedOperation
}

// Contains reports whether some element equals the given value by value
// equality, delegating to the underlying set. The error is always nil.
func (u *unmodifiableSet[T]) Contains(element T) (bool, error) {
	return u.set.Contains(element), nil
}

// Size returns the number of elements in the underlying set.
func (u *unmodifiableSet[T]) Size() int {
	return u.set.Size()
}

// IsEmpty reports whether the underlying set has no elements.
func (u *unmodifiableSet[T]) IsEmpty() bool {
	return u.set.IsEmpty()
}

// Entries returns all elements of the underlying set in ascending sort order.
func (u *unmodifiableSet[T]) Entries() []T {
	return u.set.Entries()
}

// Seq returns an iterator over the underlying set in ascending sort order.
func (u *unmodifiableSet[T]) Seq() iter.Seq[T] {
	return u.set.Seq()
}
