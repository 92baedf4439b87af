package set

import (
	"iter"
	"sort"

	"facette.io/natsort"

	"github.com/gevorghari/jcabi/collectable"
	"github.com/gevorghari/jcabi/compare"
	"github.com/gevorghari/jcabi/errors"
	"github.com/gevorghari/jcabi/hashing"
)

// HashSet is a mutable set of unique elements keyed by hashing. Uniqueness
// is determined by the HashFunc provided when the set is created, together
// with how the element type implements the Hashable and Comparable
// interfaces. If two non-equal elements produce the same hashing value,
// ErrHashCollision is reported.
type HashSet[T collectable.Collectable[T]] struct {
	hash     hashing.HashFunc
	elements map[string]T
}

var _ Set[hashing.HashableString] = (*HashSet[hashing.HashableString])(nil)

// NewHashSet creates a new HashSet with the provided hash function.
// The hash function is used to determine uniqueness of elements.
func NewHashSet[T collectable.Collectable[T]](hash hashing.HashFunc) *HashSet[T] {
	return &HashSet[T]{
		hash:     hash,
		elements: make(map[string]T),
	}
}

// AddAll adds multiple elements to the set. Returns an error if any element
// causes a hash collision or if hashing fails.
func (s *HashSet[T]) AddAll(elements ...T) error {
	for _, element := range elements {
		if err := s.Add(element); err != nil {
			return err
		}
	}

	return nil
}

// Add adds a single element to the set. Returns an error if the element
// causes a hash collision or if hashing fails. If the element already exists
// in the set, no error is returned.
func (s *HashSet[T]) Add(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	prev, ok := s.elements[hashVal]
	if ok {
		if compare.Equals(prev, element) {
			return nil
		}

		return ErrHashCollision
	}

	s.elements[hashVal] = element

	return nil
}

// Remove removes an element from the set. Returns an error if hashing fails.
// If the element is not in the set, no error is returned.
func (s *HashSet[T]) Remove(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	prev, ok := s.elements[hashVal]
	if ok && compare.Equals(prev, element) {
		delete(s.elements, hashVal)
	}

	return nil
}

// RemoveAll removes multiple elements from the set. Hashing failures are
// accumulated, so one bad element does not stop the rest of the batch.
func (s *HashSet[T]) RemoveAll(elements ...T) error {
	var errs errors.Collection

	for _, element := range elements {
		errs.Add(s.Remove(element))
	}

	return errs.GetError()
}

// RetainAll removes every element not listed in elements. Returns an error
// if hashing fails for any element.
func (s *HashSet[T]) RetainAll(elements ...T) error {
	keep := make(map[string]struct{}, len(elements))

	for _, element := range elements {
		hashVal, err := s.hash(element)
		if err != nil {
			return err
		}

		keep[hashVal] = struct{}{}
	}

	for hashVal := range s.elements {
		if _, ok := keep[hashVal]; !ok {
			delete(s.elements, hashVal)
		}
	}

	return nil
}

// Clear removes all elements from the set.
func (s *HashSet[T]) Clear() error {
	s.elements = make(map[string]T)

	return nil
}

// Contains checks if an element exists in the set. Returns true if the element
// exists, false otherwise. Returns an error if hashing fails or a collision is detected.
func (s *HashSet[T]) Contains(element T) (bool, error) {
	hashVal, err := s.hash(element)
	if err != nil {
		return false, err
	}

	prev, ok := s.elements[hashVal]
	if ok {
		if compare.Equals(prev, element) {
			return true, nil
		}

		return true, ErrHashCollision
	}

	return false, nil
}

// Size returns the number of elements in the set.
func (s *HashSet[T]) Size() int {
	return len(s.elements)
}

// IsEmpty reports whether the set has no elements.
func (s *HashSet[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

// Entries returns all elements in the set as a slice. The order is not guaranteed.
func (s *HashSet[T]) Entries() []T {
	items := make([]T, 0, len(s.elements))
	for _, item := range s.elements {
		items = append(items, item)
	}

	return items
}

// Seq returns an iterator over all elements. The order is not guaranteed.
func (s *HashSet[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.elements {
			if !yield(item) {
				return
			}
		}
	}
}

// Union returns a new set containing all elements from both sets. Returns an error
// if any element causes a hash collision or if hashing fails.
func (s *HashSet[T]) Union(other View[T]) (*HashSet[T], error) {
	out := NewHashSet[T](s.hash)

	if err := out.AddAll(s.Entries()...); err != nil {
		return nil, err
	}

	if err := out.AddAll(other.Entries()...); err != nil {
		return nil, err
	}

	return out, nil
}

// Intersection returns a new set containing only elements present in both sets.
// Returns an error if any element causes a hash collision or if hashing fails.
func (s *HashSet[T]) Intersection(other *HashSet[T]) (*HashSet[T], error) {
	out := NewHashSet[T](s.hash)

	for _, item := range s.Entries() {
		contains, err := other.Contains(item)
		if err != nil {
			return nil, err
		}

		if contains {
			if err := out.Add(item); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// StringSet is a specialized set implementation for string elements.
// It provides additional methods for sorting entries.
type StringSet struct {
	hash hashing.HashFunc
	set  *HashSet[hashing.HashableString]
}

// NewStringSet creates a new StringSet with the provided hash function.
func NewStringSet(hash hashing.HashFunc) *StringSet {
	return &StringSet{
		hash: hash,
		set:  NewHashSet[hashing.HashableString](hash),
	}
}

// AddAll adds multiple string elements to the set.
func (s *StringSet) AddAll(elements ...string) error {
	for _, element := range elements {
		if err := s.Add(element); err != nil {
			return err
		}
	}

	return nil
}

// Add adds a single string element to the set.
func (s *StringSet) Add(element string) error {
	return s.set.Add(hashing.HashableString(element))
}

// Clear removes all elements from the set.
func (s *StringSet) Clear() error {
	return s.set.Clear()
}

// Remove removes a string element from the set.
func (s *StringSet) Remove(element string) error {
	return s.set.Remove(hashing.HashableString(element))
}

// Contains checks if a string element exists in the set.
func (s *StringSet) Contains(element string) (bool, error) {
	return s.set.Contains(hashing.HashableString(element))
}

// Size returns the number of elements in the set.
func (s *StringSet) Size() int {
	return s.set.Size()
}

// Entries returns all string elements in the set. The order is not guaranteed.
func (s *StringSet) Entries() []string {
	items := make([]string, 0, s.Size())

	for _, item := range s.set.Entries() {
		items = append(items, string(item))
	}

	return items
}

// SortedEntries returns all string elements in the set sorted alphabetically.
func (s *StringSet) SortedEntries() []string {
	items := s.Entries()

	sort.Strings(items)

	return items
}

// NaturalSortedEntries returns all string elements in the set sorted using natural sort order.
// Natural sort treats numbers within strings numerically (e.g., "file2" comes before "file10").
func (s *StringSet) NaturalSortedEntries() []string {
	items := s.Entries()

	natsort.Sort(items)

	return items
}

// Union returns a new StringSet containing all elements from both sets.
func (s *StringSet) Union(other *StringSet) (*StringSet, error) {
	out := NewStringSet(s.hash)

	if err := out.AddAll(s.Entries()...); err != nil {
		return nil, err
	}

	if err := out.AddAll(other.Entries()...); err != nil {
		return nil, err
	}

	return out, nil
}

// Intersection returns a new StringSet containing only elements present in both sets.
func (s *StringSet) Intersection(other *StringSet) (*StringSet, error) {
	out := NewStringSet(s.hash)

	for _, item := range s.Entries() {
		contains, err := other.Contains(item)
		if err != nil {
			return nil, err
		}

		if contains {
			if err := out.Add(item); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
