// predicates.go — stdlib-aligned helpers for inspecting raised errors.
//
// Scope:
//   • nil-safe classification questions over arbitrary error chains.
//   • errors.Is / errors.As so wrapping with %w or errors.Join is traversed.
package xgxthrow

import "errors"

// KindOf returns the exact Kind of the first Error along err's chain, or "".
func KindOf(err error) Kind {
	var xe Error
	if errors.As(err, &xe) {
		return xe.Kind()
	}
	return ""
}

// IsKind reports whether any error in err's chain is of kind k or of a kind
// that descends from k.
func IsKind(err error, k Kind) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, k)
}

// IsArgumentError reports whether err is an argument, argument_null or
// argument_out_of_range error.
func IsArgumentError(err error) bool {
	return IsKind(err, KindArgument)
}

// ParamNameOf returns the parameter name of the first Error along err's
// chain, or "".
func ParamNameOf(err error) string {
	var xe Error
	if errors.As(err, &xe) {
		return xe.ParamName()
	}
	return ""
}
