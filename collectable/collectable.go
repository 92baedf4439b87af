// Package collectable defines the constraint for elements of hashed collections.
package collectable

import (
	"github.com/gevorghari/jcabi/compare"
	"github.com/gevorghari/jcabi/hashing"
)

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. This is useful for objects that need
// to be stored in a Set, where uniqueness is determined by
// the hashing value, and collisions are resolved by comparing
// the objects.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}
