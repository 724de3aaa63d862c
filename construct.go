// construct.go — the concrete error type and its constructors.
//
// Scope:
//   - One unexported concrete type, exceptionErr, implements Error for every
//     kind; the kind is data, not a type parameter.
//   - Internal constructors take the sr.Provider explicitly so the provider is
//     read once per construction and tests can inject their own tables.
//   - Exported New* constructors serve Go call sites that return errors
//     instead of raising them. They capture no stack.
//
// Notes:
//   - All text (message, parameter suffix, context lines) is resolved and
//     rendered at construction; the value is immutable afterwards.
package xgxthrow

import (
	"reflect"
	"strings"

	"github.com/xgx-io/xgx-throw/sr"
)

// -----------------------------------------------------------------------------
// Concrete type
// -----------------------------------------------------------------------------

type exceptionErr struct {
	kind  Kind
	param string
	msg   string
	text  string
	ctx   fields
	stk   Stack
}

func (e *exceptionErr) Error() string           { return e.text }
func (e *exceptionErr) Kind() Kind              { return e.kind }
func (e *exceptionErr) ParamName() string       { return e.param }
func (e *exceptionErr) Message() string         { return e.msg }
func (e *exceptionErr) Context() map[string]any { return ctxToMap(e.ctx) }
func (e *exceptionErr) Stack() Stack            { return e.stk }
func (e *exceptionErr) Unwrap() error           { return nil }

// Is matches Kind targets, honouring the kind hierarchy.
func (e *exceptionErr) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && e.kind.within(k)
}

// newException takes msg and param as resolved text and renders Error(),
// resolving the parameter and context fragments via p.
func newException(p sr.Provider, kind Kind, param, msg string, ctx fields) *exceptionErr {
	e := &exceptionErr{kind: kind, param: param, msg: msg, ctx: ctx}

	var b strings.Builder
	b.WriteString(string(kind))
	if msg != "" {
		b.WriteString(": ")
		b.WriteString(msg)
	}
	if param != "" {
		if s := formatResource(p, ResArgParamName, param); s != "" {
			b.WriteByte(' ')
			b.WriteString(s)
		}
	}
	for _, f := range ctx {
		var line string
		switch f.Key {
		case CtxActualValue:
			line = formatResource(p, ResArgumentOutOfRangeActualValue, f.Val)
		case CtxObjectName:
			line = formatResource(p, ResObjectDisposedObjectName, f.Val)
		}
		if line != "" {
			b.WriteByte('\n')
			b.WriteString(line)
		}
	}
	e.text = b.String()
	return e
}

// -----------------------------------------------------------------------------
// Internal constructors, one per error shape
// -----------------------------------------------------------------------------

func newArgumentNull(p sr.Provider, arg ExceptionArgument) *exceptionErr {
	return newException(p, KindArgumentNull, ArgumentName(arg), resolveResource(p, ResArgumentNullGeneric), nil)
}

func newArgumentOutOfRange(p sr.Provider, arg ExceptionArgument, res ExceptionResource) *exceptionErr {
	return newException(p, KindArgumentOutOfRange, ArgumentName(arg), resolveResource(p, res), nil)
}

func newArgumentOutOfRangeValue(p sr.Provider, arg ExceptionArgument, actual any, res ExceptionResource) *exceptionErr {
	var ctx fields
	if actual != nil {
		ctx = ctxOf(CtxActualValue, actual)
	}
	return newException(p, KindArgumentOutOfRange, ArgumentName(arg), resolveResource(p, res), ctx)
}

// newArgument builds an argument error; param is "" for shapes without an
// argument identity.
func newArgument(p sr.Provider, res ExceptionResource, param string) *exceptionErr {
	return newException(p, KindArgument, param, resolveResource(p, res), nil)
}

func newAddingDuplicate(p sr.Provider, key any) *exceptionErr {
	return newException(p, KindArgument, ArgumentName(ArgKey),
		formatResource(p, ResArgumentAddingDuplicate, key),
		ctxOf(CtxValue, key))
}

func newWrongType(p sr.Provider, arg ExceptionArgument, value any, target reflect.Type) *exceptionErr {
	name := typeName(target)
	return newException(p, KindArgument, ArgumentName(arg),
		formatResource(p, ResArgWrongType, value, name),
		ctxOf(CtxValue, value, CtxTargetType, name))
}

func newTypeMismatch(p sr.Provider, value any, target reflect.Type) *exceptionErr {
	from, to := typeName(reflect.TypeOf(value)), typeName(target)
	return newException(p, KindTypeMismatch, "",
		formatResource(p, ResInvalidCastFromTo, from, to),
		ctxOf(CtxValue, value, CtxTargetType, to))
}

// newFixed builds the shapes that carry a kind and a message only.
func newFixed(p sr.Provider, kind Kind, res ExceptionResource) *exceptionErr {
	return newException(p, kind, "", resolveResource(p, res), nil)
}

func newObjectDisposed(p sr.Provider, objectName string, res ExceptionResource) *exceptionErr {
	var ctx fields
	if objectName != "" {
		ctx = ctxOf(CtxObjectName, objectName)
	}
	return newException(p, KindObjectDisposed, "", resolveResource(p, res), ctx)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// -----------------------------------------------------------------------------
// Exported constructors: build without raising
// -----------------------------------------------------------------------------

// NewArgumentNull returns the argument_null error for arg.
func NewArgumentNull(arg ExceptionArgument) Error {
	return newArgumentNull(resources(), arg)
}

// NewArgumentOutOfRange returns an argument_out_of_range error for arg with
// the message res.
func NewArgumentOutOfRange(arg ExceptionArgument, res ExceptionResource) Error {
	return newArgumentOutOfRange(resources(), arg, res)
}

// NewArgument returns an argument error that names no parameter.
func NewArgument(res ExceptionResource) Error {
	return newArgument(resources(), res, "")
}

// NewArgumentWithParam returns an argument error naming arg.
func NewArgumentWithParam(res ExceptionResource, arg ExceptionArgument) Error {
	return newArgument(resources(), res, ArgumentName(arg))
}

// NewInvalidOperation returns an invalid_operation error.
func NewInvalidOperation(res ExceptionResource) Error {
	return newFixed(resources(), KindInvalidOperation, res)
}

// NewNotSupported returns a not_supported error.
func NewNotSupported(res ExceptionResource) Error {
	return newFixed(resources(), KindNotSupported, res)
}

// NewObjectDisposed returns an object_disposed error. objectName may be "".
func NewObjectDisposed(objectName string, res ExceptionResource) Error {
	return newObjectDisposed(resources(), objectName, res)
}

// -----------------------------------------------------------------------------
// Interface conformance guards (keep in the file that defines the types)
// -----------------------------------------------------------------------------
var _ Error = (*exceptionErr)(nil)
