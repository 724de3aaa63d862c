// kinds.go — the closed set of error categories raised by xgx-throw.
//
// Intent:
//   - One Kind per error category the dispatch functions can raise.
//   - Kinds are stringly-typed for readable logs and %+v output.
//   - A Kind is itself an error value so callers can test categories with
//     errors.Is(err, xgxthrow.KindArgumentNull).
//
// Hierarchy (mirrors the usual host exception families):
//   - argument_null, argument_out_of_range → argument
//   - object_disposed → invalid_operation
//
// errors.Is honours the hierarchy; Error.Kind always reports the exact kind.
package xgxthrow

// Kind classifies a raised error.
type Kind string

const (
	KindArgumentNull       Kind = "argument_null"
	KindArgumentOutOfRange Kind = "argument_out_of_range"
	KindArgument           Kind = "argument"
	KindTypeMismatch       Kind = "type_mismatch"
	KindArrayTypeMismatch  Kind = "array_type_mismatch"
	KindRankMismatch       Kind = "rank_mismatch"
	KindIndexOutOfRange    Kind = "index_out_of_range"
	KindInvalidOperation   Kind = "invalid_operation"
	KindNotSupported       Kind = "not_supported"
	KindObjectDisposed     Kind = "object_disposed"
)

// allBuiltinKinds is the ordered set of kinds. Unexported to avoid exposing
// mutable slice identity to callers.
var allBuiltinKinds = []Kind{
	KindArgumentNull,
	KindArgumentOutOfRange,
	KindArgument,
	KindTypeMismatch,
	KindArrayTypeMismatch,
	KindRankMismatch,
	KindIndexOutOfRange,
	KindInvalidOperation,
	KindNotSupported,
	KindObjectDisposed,
}

// kindParents maps a kind to its more general family. Kinds absent here are roots.
var kindParents = map[Kind]Kind{
	KindArgumentNull:       KindArgument,
	KindArgumentOutOfRange: KindArgument,
	KindObjectDisposed:     KindInvalidOperation,
}

var builtinKindSet = map[Kind]struct{}{
	KindArgumentNull:       {},
	KindArgumentOutOfRange: {},
	KindArgument:           {},
	KindTypeMismatch:       {},
	KindArrayTypeMismatch:  {},
	KindRankMismatch:       {},
	KindIndexOutOfRange:    {},
	KindInvalidOperation:   {},
	KindNotSupported:       {},
	KindObjectDisposed:     {},
}

// BuiltinKinds returns a defensive copy of the kinds in a stable order.
func BuiltinKinds() []Kind {
	out := make([]Kind, len(allBuiltinKinds))
	copy(out, allBuiltinKinds)
	return out
}

// IsBuiltin reports whether k is one of the kinds above.
func (k Kind) IsBuiltin() bool {
	_, ok := builtinKindSet[k]
	return ok
}

// Parent returns the more general kind k belongs to, or "" for a root kind.
func (k Kind) Parent() Kind { return kindParents[k] }

// Error makes a Kind usable as an errors.Is target.
func (k Kind) Error() string { return string(k) }

// within reports whether k equals target or descends from it.
func (k Kind) within(target Kind) bool {
	for ; k != ""; k = k.Parent() {
		if k == target {
			return true
		}
	}
	return false
}
