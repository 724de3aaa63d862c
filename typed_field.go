// typed_field.go — type-safe reads of the runtime context on raised errors.
//
// Overview
//   Dispatch functions attach a few well-known context entries (see the Ctx*
//   keys). TypedField gives callers a typed view of them without asserting on
//   Context() by hand:
//
//     if v, ok := xgxthrow.FieldObjectName.Get(err); ok {
//         log.Printf("disposed: %s", v)
//     }
//
// Caveats
//   • The dynamic type stored in the context MUST match T exactly; no implicit
//     conversions are made.
//   • Get reads the first Error along err's chain and returns its copy of the
//     context, so it is one map allocation per call.
package xgxthrow

import (
	"errors"
	"fmt"
)

// TypedField is a typed key into the runtime context of a raised error.
type TypedField[T any] struct {
	key string
}

// NewField constructs a TypedField[T] for key.
func NewField[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Well-known context entries set by the dispatch functions.
var (
	FieldActualValue = NewField[any](CtxActualValue)
	FieldObjectName  = NewField[string](CtxObjectName)
	FieldTargetType  = NewField[string](CtxTargetType)
	FieldValue       = NewField[any](CtxValue)
)

// Key returns the underlying context key.
func (f TypedField[T]) Key() string { return f.key }

// Get returns the value stored under f's key on the first Error along err's
// chain. ok is false if there is no Error, no such key, or the value is not
// a T.
func (f TypedField[T]) Get(err error) (val T, ok bool) {
	var xe Error
	if !errors.As(err, &xe) {
		return val, false
	}
	raw, present := xe.Context()[f.key]
	if !present {
		return val, false
	}
	val, ok = raw.(T)
	return val, ok
}

// MustGet is Get that panics when the value is absent or of another type.
// Intended for tests.
func (f TypedField[T]) MustGet(err error) T {
	v, ok := f.Get(err)
	if !ok {
		panic(fmt.Sprintf("xgxthrow: context field %q missing or not %T", f.key, v))
	}
	return v
}
