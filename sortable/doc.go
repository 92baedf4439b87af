// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in sorted data structures.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides
// ready-to-use implementations for common primitive types: [Int], [Byte],
// and [String]. These types are designed to work with sorted collections
// (see [github.com/gevorghari/jcabi/set.NewTreeSet] and
// [github.com/gevorghari/jcabi/set.ImmutableSortedSetOf]) via the
// [Comparator] bridge, which turns any Sortable type into a
// [github.com/gevorghari/jcabi/compare.Func] ordering.
//
// The Sortable interface extends [github.com/gevorghari/jcabi/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
//	s := set.NewTreeSet[sortable.Int](sortable.Comparator[sortable.Int]())
//	_ = s.Add(sortable.Int(42))
//	_ = s.Add(sortable.Int(10))
//	_ = s.Add(sortable.Int(25))
//
//	// Elements are returned in sorted order: 10, 25, 42
//	for val := range s.Seq() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently
// thread-safe for read operations. Collections using these types may not be
// thread-safe themselves; see the set package for details.
package sortable
