package compare

import (
	"cmp"
)

// Func is a total-order comparison function over T. It returns a negative
// value when a sorts before b, zero when the two are order-equal, and a
// positive value when a sorts after b.
//
// A Func is the ordering strategy used by sorted collections (see
// [github.com/gevorghari/jcabi/set.TreeSet] and
// [github.com/gevorghari/jcabi/set.ImmutableSortedSet]) to sort elements and
// to eliminate duplicates. Order-equality under a Func is independent of
// value equality: a Func that never returns zero effectively disables
// deduplication.
type Func[T any] func(a, b T) int

// Natural returns the ascending natural ordering for any inherently
// orderable type.
func Natural[T cmp.Ordered]() Func[T] {
	return func(a, b T) int {
		return cmp.Compare(a, b)
	}
}

// Neutral returns an ordering that treats all values as mutually
// non-matching: it never reports two values as order-equal. Collections
// ordered by it keep every element they are given, in insertion order, and
// comparator-based removal never matches anything.
func Neutral[T any]() Func[T] {
	return func(a, b T) int {
		return 1
	}
}

// Reverse returns the descending natural ordering for any inherently
// orderable type.
func Reverse[T cmp.Ordered]() Func[T] {
	return func(a, b T) int {
		return cmp.Compare(b, a)
	}
}

// Reversed returns an ordering that inverts f.
func Reversed[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}
