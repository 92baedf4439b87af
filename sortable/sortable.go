// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/gevorghari/jcabi/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Comparator bridges a Sortable type to a compare.Func ordering, so Sortable
// implementations can be used with comparator-driven collections.
func Comparator[T Sortable[T]]() compare.Func[T] {
	return func(a, b T) int {
		switch {
		case a.Equals(b):
			return 0
		case a.LessThan(b):
			return -1
		default:
			return 1
		}
	}
}
