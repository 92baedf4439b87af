package set

import (
	"fmt"
	"hash"
	"iter"
	"slices"
	"strings"

	"github.com/gevorghari/jcabi/assert"
	"github.com/gevorghari/jcabi/compare"
	"github.com/gevorghari/jcabi/errors"
	"github.com/gevorghari/jcabi/hashing"
	"github.com/gevorghari/jcabi/zero"
)

// ImmutableSortedSet is a sorted set on top of a flat array. It holds its
// elements in a backing slice that is strictly increasing under its
// comparator and duplicate-free under comparator order-equality. The set is
// a value type: no operation ever mutates an instance, and the "mutating"
// operations (With, WithAll, Without) return a brand-new instance built from
// a freshly sorted and deduplicated sequence.
//
// Because instances are immutable after construction, a single instance may
// be freely shared across goroutines without locks, and deriving a new
// instance never affects existing ones.
//
// Sorting and deduplication follow the comparator, while Contains and
// ContainsAll use value equality (==). The two deliberately disagree when
// the comparator does: with compare.Neutral the set keeps value-equal
// duplicates and its membership test has no relation to its ordering.
//
// Mutation via copy goes through a transient TreeSet rebuilt from the
// current contents, so element replacement and batch semantics are exactly
// those of the ordered container.
type ImmutableSortedSet[T comparable] struct {
	values []T
	cmp    compare.Func[T]
}

var (
	_ Sorted[int]                                  = (*ImmutableSortedSet[int])(nil)
	_ hashing.Hashable                             = (*ImmutableSortedSet[int])(nil)
	_ compare.Comparable[*ImmutableSortedSet[int]] = (*ImmutableSortedSet[int])(nil)
)

// NewImmutableSortedSet creates an empty immutable sorted set ordered by the
// given comparator. A nil comparator is a precondition violation.
func NewImmutableSortedSet[T comparable](cmp compare.Func[T]) *ImmutableSortedSet[T] {
	assert.False(cmp == nil, "set: immutable sorted set needs a comparator")

	return &ImmutableSortedSet[T]{cmp: cmp}
}

// ImmutableSortedSetOf creates an immutable sorted set containing the
// distinct elements of the given list, sorted by the comparator. Elements
// comparing order-equal are deduplicated, first occurrence wins. A nil
// comparator is a precondition violation.
func ImmutableSortedSetOf[T comparable](cmp compare.Func[T], elements ...T) *ImmutableSortedSet[T] {
	assert.False(cmp == nil, "set: immutable sorted set needs a comparator")

	buffer := NewTreeSet[T](cmp)
	_ = buffer.AddAll(elements...)

	return fromTreeSet(buffer)
}

// ImmutableSortedSetFrom creates an immutable sorted set containing the
// distinct elements of the source collection, sorted by the comparator.
// A nil source or nil comparator is a precondition violation.
//
// When the source is itself an *ImmutableSortedSet, its backing slice is
// adopted as-is without re-sorting and without checking that the source's
// comparator matches cmp. The caller is responsible for passing a source
// that is already ordered compatibly. Sharing the slice is safe because
// neither instance ever writes to it.
func ImmutableSortedSetFrom[T comparable](src View[T], cmp compare.Func[T]) *ImmutableSortedSet[T] {
	assert.False(cmp == nil, "set: immutable sorted set needs a comparator")
	assert.False(zero.IsNil(src), "set: nil source collection")

	if same, ok := src.(*ImmutableSortedSet[T]); ok {
		return &ImmutableSortedSet[T]{values: same.values, cmp: cmp}
	}

	buffer := NewTreeSet[T](cmp)
	for element := range src.Seq() {
		_ = buffer.Add(element)
	}

	return fromTreeSet(buffer)
}

// fromTreeSet materializes the transient ordered container into a new
// immutable instance.
func fromTreeSet[T comparable](buffer *TreeSet[T]) *ImmutableSortedSet[T] {
	return &ImmutableSortedSet[T]{
		values: buffer.Entries(),
		cmp:    buffer.Comparator(),
	}
}

// buffer rebuilds the transient ordered container holding the current
// elements. The receiver's slice is already sorted and deduplicated, so
// every add lands in a fresh slot.
func (s *ImmutableSortedSet[T]) buffer() *TreeSet[T] {
	buffer := NewTreeSet[T](s.cmp)
	for _, element := range s.values {
		_ = buffer.Add(element)
	}

	return buffer
}

// With returns a new set holding the current elements plus the given value.
// If an element comparing order-equal to the value already exists, it is
// replaced: the incoming value wins, whatever its payload. A nil value is a
// precondition violation. The receiver is unchanged.
func (s *ImmutableSortedSet[T]) With(value T) *ImmutableSortedSet[T] {
	assert.False(zero.IsNil(value), "set: nil value")

	buffer := s.buffer()
	_ = buffer.Remove(value)
	_ = buffer.Add(value)

	return fromTreeSet(buffer)
}

// WithAll returns a new set holding the current elements plus every given
// value, applied as a batch: all order-equal elements of the receiver are
// removed first, then the values are added in argument order. Among values
// that are mutually order-equal the ordered container keeps the first one.
// A nil value is a precondition violation. The receiver is unchanged.
func (s *ImmutableSortedSet[T]) WithAll(values ...T) *ImmutableSortedSet[T] {
	buffer := s.buffer()

	for _, value := range values {
		assert.False(zero.IsNil(value), "set: nil value")

		_ = buffer.Remove(value)
	}

	_ = buffer.AddAll(values...)

	return fromTreeSet(buffer)
}

// Without returns a new set holding the current elements minus any element
// comparing order-equal to the given value. Removing an absent value is a
// no-op. A nil value is a precondition violation. The receiver is unchanged.
func (s *ImmutableSortedSet[T]) Without(value T) *ImmutableSortedSet[T] {
	assert.False(zero.IsNil(value), "set: nil value")

	buffer := s.buffer()
	_ = buffer.Remove(value)

	return fromTreeSet(buffer)
}

// Size returns the number of elements. Time complexity: O(1).
func (s *ImmutableSortedSet[T]) Size() int {
	return len(s.values)
}

// IsEmpty reports whether the set has no elements.
func (s *ImmutableSortedSet[T]) IsEmpty() bool {
	return len(s.values) == 0
}

// Comparator returns the ordering the set was built with.
func (s *ImmutableSortedSet[T]) Comparator() compare.Func[T] {
	return s.cmp
}

// Contains reports whether some element equals the given value by value
// equality, not by the comparator. The backing slice is scanned linearly.
func (s *ImmutableSortedSet[T]) Contains(value T) bool {
	return slices.Contains(s.values, value)
}

// ContainsAll reports whether every given value is contained in the set by
// value equality.
func (s *ImmutableSortedSet[T]) ContainsAll(values ...T) bool {
	for _, value := range values {
		if !slices.Contains(s.values, value) {
			return false
		}
	}

	return true
}

// First returns the smallest element by sort order.
// Returns errors.ErrNoSuchElement when the set is empty.
func (s *ImmutableSortedSet[T]) First() (T, error) {
	if len(s.values) == 0 {
		return zero.Value[T](), fmt.Errorf("%w: set is empty", errors.ErrNoSuchElement)
	}

	return s.values[0], nil
}

// Last returns the largest element by sort order.
// Returns errors.ErrNoSuchElement when the set is empty.
func (s *ImmutableSortedSet[T]) Last() (T, error) {
	if len(s.values) == 0 {
		return zero.Value[T](), fmt.Errorf("%w: set is empty", errors.ErrNoSuchElement)
	}

	return s.values[len(s.values)-1], nil
}

// Seq returns an iterator over the elements in ascending sort order.
// Each call yields a fresh traversal from the start; the snapshot it
// reflects can never change.
func (s *ImmutableSortedSet[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, element := range s.values {
			if !yield(element) {
				return
			}
		}
	}
}

// Entries returns all elements as a fresh slice in ascending sort order,
// safe to mutate independently of the set.
func (s *ImmutableSortedSet[T]) Entries() []T {
	return slices.Clone(s.values)
}

// HeadSet returns an unmodifiable ordered view of the elements strictly
// before the given bound. The view is computed by rebuilding the ordered
// container from the full contents and delegating; it shares no storage
// with this set.
func (s *ImmutableSortedSet[T]) HeadSet(till T) Sorted[T] {
	out := make([]T, 0, len(s.values))

	for element := range s.buffer().Seq() {
		if s.cmp(element, till) < 0 {
			out = append(out, element)
		}
	}

	return &sortedView[T]{values: out}
}

// TailSet returns an unmodifiable ordered view of the elements at or after
// the given bound. The view is computed by rebuilding the ordered container
// from the full contents and delegating; it shares no storage with this set.
func (s *ImmutableSortedSet[T]) TailSet(from T) Sorted[T] {
	out := make([]T, 0, len(s.values))

	for element := range s.buffer().Seq() {
		if s.cmp(element, from) >= 0 {
			out = append(out, element)
		}
	}

	return &sortedView[T]{values: out}
}

// SubSet is deliberately unsupported and always returns
// errors.ErrNotImplemented.
func (s *ImmutableSortedSet[T]) SubSet(from T, till T) (Sorted[T], error) {
	return nil, fmt.Errorf("%w: sub-range views", errors.ErrNotImplemented)
}

// Equals reports whether the other set has an element-wise equal backing
// sequence, in the same order. Two sets with the same elements sorted
// differently (built with different comparators) are not equal.
func (s *ImmutableSortedSet[T]) Equals(other *ImmutableSortedSet[T]) bool {
	if other == nil {
		return false
	}

	return slices.Equal(s.values, other.values)
}

// UpdateHash writes the ordered backing sequence into the hash, making the
// result deterministic and order-sensitive. This lets the set be hashed with
// any hashing.HashFunc, such as hashing.Sha256 or hashing.XXH3.
func (s *ImmutableSortedSet[T]) UpdateHash(h hash.Hash) error {
	for _, element := range s.values {
		if _, err := fmt.Fprintf(h, "%v\x1f", element); err != nil {
			return err
		}
	}

	return nil
}

// String returns the elements in sort order, comma-separated.
func (s *ImmutableSortedSet[T]) String() string {
	var text strings.Builder

	for _, element := range s.values {
		if text.Len() > 0 {
			text.WriteString(", ")
		}

		fmt.Fprintf(&text, "%v", element)
	}

	return text.String()
}
