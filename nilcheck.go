// nilcheck.go — the generic nil check shared by every instantiation.
//
// IfNilAndNilsAreIllegalThenThrow is called from generic code instantiated
// with many element types. Whether nil is possible is a property of T alone,
// so the decision is made from T's static type (no value reflection):
//
//   - value kinds (numbers, strings, structs, arrays, …): never raises
//   - interface kinds: raises when the interface is nil
//   - pointer-shaped kinds (pointer, map, slice, chan, func, unsafe pointer):
//     raises when the value's data word is nil
//   - Nullable[U]: raises when it holds no value
package xgxthrow

import (
	"reflect"
	"strings"
	"unsafe"
)

type nilability uint8

const (
	neverNil nilability = iota
	nilInterface
	nilPointerShaped
	nilWrapper
)

// nullable is implemented by Nullable[T] for every T.
type nullable interface {
	HasValue() bool
	isNullable()
}

var nullableType = reflect.TypeFor[nullable]()

func nilabilityOf[T any]() nilability {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Interface:
		return nilInterface
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return nilPointerShaped
	case reflect.Struct:
		// Structs embedding Nullable inherit its methods; only Nullable itself
		// is the wrapper.
		if t.PkgPath() == nullableType.PkgPath() && strings.HasPrefix(t.Name(), "Nullable[") && t.Implements(nullableType) {
			return nilWrapper
		}
	}
	return neverNil
}

// isNil reports whether value is nil for a T that can hold nil.
func isNil[T any](value T) bool {
	switch nilabilityOf[T]() {
	case nilInterface:
		return any(value) == nil
	case nilPointerShaped:
		// The first word of every pointer-shaped value is its data pointer.
		return *(*unsafe.Pointer)(unsafe.Pointer(&value)) == nil
	case nilWrapper:
		return !any(value).(nullable).HasValue()
	}
	return false
}

// IfNilAndNilsAreIllegalThenThrow raises argument_null for arg when T can
// hold nil and value is nil. For value types it never raises.
func IfNilAndNilsAreIllegalThenThrow[T any](value T, arg ExceptionArgument) {
	if isNil(value) {
		ThrowArgumentNull(arg)
	}
}

// Nullable is an explicit optional wrapper for value types.
type Nullable[T any] struct {
	value T
	ok    bool
}

// Some returns a Nullable holding v.
func Some[T any](v T) Nullable[T] { return Nullable[T]{value: v, ok: true} }

// None returns an empty Nullable.
func None[T any]() Nullable[T] { return Nullable[T]{} }

// HasValue reports whether n holds a value.
func (n Nullable[T]) HasValue() bool { return n.ok }

// Value returns the held value; an empty Nullable raises invalid_operation.
func (n Nullable[T]) Value() T {
	if !n.ok {
		ThrowNoValue()
	}
	return n.value
}

// ValueOr returns the held value or d.
func (n Nullable[T]) ValueOr(d T) T {
	if !n.ok {
		return d
	}
	return n.value
}

func (Nullable[T]) isNullable() {}
