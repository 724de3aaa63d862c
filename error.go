// error.go — the public contract of every raised error.
package xgxthrow

// Error is the value every dispatch function raises.
//
// All text is resolved when the error is built; accessors never consult the
// string-resource provider again, so an Error is safe to share between
// goroutines.
type Error interface {
	// error renders "<kind>: <message>" followed by the parameter name and
	// any runtime context lines.
	error

	// Kind reports the exact category of the error.
	Kind() Kind

	// ParamName returns the resolved name of the offending parameter, or ""
	// for shapes that carry no argument identity.
	ParamName() string

	// Message returns the resolved diagnostic text without parameter or
	// context lines.
	Message() string

	// Context returns a COPY of the runtime context attached by the dispatch
	// function (for example actual_value, object_name, target_type).
	Context() map[string]any

	// Stack returns the call stack captured when the error was raised, or nil
	// for errors built with a New* constructor.
	Stack() Stack

	// Unwrap always returns nil; raised errors have no cause.
	Unwrap() error
}
