package set

import (
	"iter"
	"sync"
)

// NewThreadSafeSet wraps an existing mutable Set implementation with
// thread-safe access using sync.RWMutex. It provides concurrent read/write
// access to the underlying set while preserving the Set protocol.
//
// Write operations (Add, AddAll, Remove, RemoveAll, RetainAll, Clear)
// acquire exclusive locks, while read operations (Contains, Size, IsEmpty,
// Entries, Seq) use shared read locks for better concurrency.
//
// ImmutableSortedSet never needs this wrapper: its instances are safe to
// share across goroutines as-is. Use it for HashSet and TreeSet.
//
// Example usage:
//
//	unsafeSet := set.NewHashSet[hashing.HashableString](hashing.Sha256)
//	safeSet := set.NewThreadSafeSet[hashing.HashableString](unsafeSet)
//	_ = safeSet.Add("element") // thread-safe
func NewThreadSafeSet[T any](s Set[T]) Set[T] {
	if s == nil {
		return nil
	}

	tss, ok := s.(*threadSafeSet[T])
	if ok {
		// Already thread-safe, return as-is
		return tss
	}

	return &threadSafeSet[T]{
		internal: s,
	}
}

// threadSafeSet is a decorator that wraps any Set implementation with thread-safe access.
// It uses sync.RWMutex to coordinate concurrent access, allowing multiple simultaneous
// readers or a single exclusive writer.
type threadSafeSet[T any] struct {
	mutex    sync.RWMutex // Protects access to internal set
	internal Set[T]       // Underlying set implementation
}

// AddAll adds multiple elements to the set with exclusive lock protection.
func (t *threadSafeSet[T]) AddAll(elements ...T) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.AddAll(elements...)
}

// Add adds a single element to the set with exclusive lock protection.
func (t *threadSafeSet[T]) Add(element T) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Add(element)
}

// Remove removes an element from the set with exclusive lock protection.
func (t *threadSafeSet[T]) Remove(element T) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Remove(element)
}

// RemoveAll removes multiple elements from the set with exclusive lock protection.
func (t *threadSafeSet[T]) RemoveAll(elements ...T) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.RemoveAll(elements...)
}

// RetainAll removes every element not listed in elements, with exclusive lock protection.
func (t *threadSafeSet[T]) RetainAll(elements ...T) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.RetainAll(elements...)
}

// Clear removes all elements from the set with exclusive lock protection.
func (t *threadSafeSet[T]) Clear() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Clear()
}

// Contains checks if an element exists in the set with shared read lock protection.
// Multiple concurrent Contains calls do not block each other.
func (t *threadSafeSet[T]) Contains(element T) (bool, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Contains(element)
}

// Size returns the number of elements in the set with shared read lock protection.
func (t *threadSafeSet[T]) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Size()
}

// IsEmpty reports whether the set has no elements, with shared read lock protection.
func (t *threadSafeSet[T]) IsEmpty() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.IsEmpty()
}

// Entries returns all elements in the set with shared read lock protection.
func (t *threadSafeSet[T]) Entries() []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Entries()
}

// Seq returns an iterator over a snapshot of the set taken under a shared
// read lock. The lock is not held while the caller consumes the iterator.
func (t *threadSafeSet[T]) Seq() iter.Seq[T] {
	entries := t.Entries()

	return func(yield func(T) bool) {
		for _, element := range entries {
			if !yield(element) {
				return
			}
		}
	}
}
