// Package zero provides utilities for working with zero values of generic types.
package zero

import "reflect"

// Value returns the zero value for type T.
// This is useful when you need to explicitly obtain the zero value of a generic type parameter.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultStr = zero.Value[string]()     // returns ""
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T.
// It uses reflect.DeepEqual to perform a deep comparison between value and the zero value of T.
//
// Example:
//
//	zero.IsZero(0)              // returns true
//	zero.IsZero(42)             // returns false
//	zero.IsZero("")             // returns true
//	zero.IsZero("hello")        // returns false
//	zero.IsZero[*MyStruct](nil) // returns true
func IsZero[T any](value T) bool {
	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}

// IsNil reports whether value is nil. Unlike IsZero, it only reports true for
// nilable kinds (pointers, interfaces, maps, slices, channels, functions), so
// zero values of value kinds like 0 and "" are not considered nil.
//
// Example:
//
//	zero.IsNil[*MyStruct](nil) // returns true
//	zero.IsNil(0)              // returns false
//	zero.IsNil("")             // returns false
func IsNil[T any](value T) bool {
	// Indirection through a pointer keeps the static type T, so a nil
	// interface value does not become an invalid reflect.Value.
	val := reflect.ValueOf(&value).Elem()

	if val.Kind() == reflect.Interface {
		if val.IsNil() {
			return true
		}

		// Unwrap so a typed nil pointer inside an interface is caught too.
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return val.IsNil()
	default:
		return false
	}
}
