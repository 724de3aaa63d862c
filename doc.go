// doc.go — package documentation for xgx-throw
//
// Package xgxthrow raises precisely-typed, precisely-worded precondition
// errors from library code without each call site carrying its own strings or
// construction code.
//
// # Call sites
//
// A call site picks the dispatch function whose shape matches what it knows
// and passes symbols, not text:
//
//	func (l *List[T]) At(i int) T {
//		if uint(i) >= uint(len(l.items)) {
//			xgxthrow.ThrowIndexArgumentOutOfRange()
//		}
//		return l.items[i]
//	}
//
//	func (l *List[T]) CopyTo(dst []T, at int) {
//		xgxthrow.IfNilAndNilsAreIllegalThenThrow(dst, xgxthrow.ArgArray)
//		if at < 0 {
//			xgxthrow.ThrowArgumentOutOfRangeWithValue(xgxthrow.ArgArrayIndex, at,
//				xgxthrow.ResArgumentOutOfRangeNeedNonNegNum)
//		}
//		...
//	}
//
// Dispatch functions panic with an Error and never return. Code that would
// rather return errors either uses the New* constructors or defers Recover at
// its API boundary.
//
// # Symbols and text
//
//	+------------------------+-------------------------+--------------------------+
//	| Symbol                 | Resolver                | Source of text           |
//	+------------------------+-------------------------+--------------------------+
//	| ExceptionArgument      | ArgumentName            | table compiled in        |
//	| ExceptionResource      | ResourceString          | installed sr.Provider    |
//	+------------------------+-------------------------+--------------------------+
//
// The built-in provider is the English table in package sr. A localized
// provider may be installed once with InstallResources before first use:
//
//	tbl, err := sr.New(sr.WithBundleReader(f), sr.WithAcceptLanguage("de, en;q=0.5"))
//	if err != nil { ... }
//	if err := xgxthrow.InstallResources(tbl); err != nil { ... }
//
// A symbol without text is a development-time defect. Builds tagged
// xgxthrow_debug panic on it; other builds resolve it to "" so that building
// one error never fails with another.
//
// # Inspecting errors
//
//   - errors.Is(err, xgxthrow.KindArgumentOutOfRange) matches by category;
//     argument_null and argument_out_of_range also match KindArgument, and
//     object_disposed also matches KindInvalidOperation.
//   - KindOf, ParamNameOf and IsArgumentError are nil-safe shorthands.
//   - %+v prints kind, message, parameter, context and the raise-site stack.
//
// # Concurrency
//
// Every function is safe for concurrent use. Symbol tables are constants, the
// provider is read-only once frozen, and raised errors are immutable.
package xgxthrow
