// Package set provides set collections: a hash-keyed mutable set, a
// comparator-ordered tree set, and an immutable sorted set backed by a flat
// array. The read-only and mutable capabilities are separate interfaces, so
// immutable collections expose only the read side and opt into the mutable
// protocol through an adapter that rejects writes.
package set

import (
	"errors"
	"iter"
)

// ErrHashCollision is returned when a hashing collision is detected.
// Specifically this refers to two different (non-equal) objects
// that have the same hashing value.
var ErrHashCollision = errors.New("hashing collision")

// View is the minimal read-only collection capability: a finite enumerable
// collection with a known size. Seq is restartable; each call yields a fresh
// traversal from the start.
type View[T any] interface {
	// Size returns the number of elements in the collection.
	Size() int

	// IsEmpty reports whether the collection has no elements.
	IsEmpty() bool

	// Entries returns all elements as a fresh slice, safe to mutate
	// independently of the collection. Ordered collections return it in
	// their order; others make no ordering guarantee.
	Entries() []T

	// Seq returns an iterator over all elements, usable with
	// range-over-func syntax.
	Seq() iter.Seq[T]
}

// Sorted is the read-only capability of an ordered collection.
type Sorted[T any] interface {
	View[T]

	// First returns the smallest element by sort order.
	// Returns errors.ErrNoSuchElement when the collection is empty.
	First() (T, error)

	// Last returns the largest element by sort order.
	// Returns errors.ErrNoSuchElement when the collection is empty.
	Last() (T, error)
}

// Set is the generic mutable set protocol. Read-only implementations satisfy
// it by rejecting every write entry point with errors.ErrUnsupportedOperation.
type Set[T any] interface {
	View[T]

	// Add adds a single element to the set. If the element already exists
	// in the set, no error is returned.
	Add(element T) error

	// AddAll adds multiple elements to the set.
	AddAll(elements ...T) error

	// Remove removes an element from the set. If the element is not in the
	// set, no error is returned.
	Remove(element T) error

	// RemoveAll removes multiple elements from the set.
	RemoveAll(elements ...T) error

	// RetainAll removes every element not listed in elements.
	RetainAll(elements ...T) error

	// Clear removes all elements from the set.
	Clear() error

	// Contains checks if an element exists in the set.
	Contains(element T) (bool, error)
}
