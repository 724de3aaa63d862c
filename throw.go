// throw.go — dispatch functions: one fixed entry point per error shape.
//
// Contract:
//   - Each function resolves its symbols, builds exactly one Error, captures
//     the caller's stack and panics with the Error. None returns normally.
//   - Each function calls raise directly (never another Throw*), so the first
//     captured frame is the call site.
//   - Functions are kept out of line so a call site costs one call, whatever
//     the shape.
//
// Go has no bottom type, so these are statements rather than expressions. In
// functions with results, guard the call and fall through to the normal
// return, or write panic(xgxthrow.NewX(...)) where a terminating statement is
// required.
package xgxthrow

import "reflect"

// raise records the call site and panics with e.
//
//go:noinline
func raise(e *exceptionErr) {
	// skip raise and the dispatch function.
	e.stk = captureStack(2, maxStackDepth)
	panic(e)
}

// -----------------------------------------------------------------------------
// Argument errors
// -----------------------------------------------------------------------------

// ThrowArgumentNull raises argument_null for arg.
//
//go:noinline
func ThrowArgumentNull(arg ExceptionArgument) {
	raise(newArgumentNull(resources(), arg))
}

// ThrowArgumentOutOfRange raises argument_out_of_range for arg with the
// generic message.
//
//go:noinline
func ThrowArgumentOutOfRange(arg ExceptionArgument) {
	raise(newArgumentOutOfRange(resources(), arg, ResArgumentOutOfRangeGeneric))
}

// ThrowArgumentOutOfRangeWithMessage raises argument_out_of_range for arg
// with the message res.
//
//go:noinline
func ThrowArgumentOutOfRangeWithMessage(arg ExceptionArgument, res ExceptionResource) {
	raise(newArgumentOutOfRange(resources(), arg, res))
}

// ThrowArgumentOutOfRangeWithValue raises argument_out_of_range for arg with
// the message res and the offending value.
//
//go:noinline
func ThrowArgumentOutOfRangeWithValue(arg ExceptionArgument, actual any, res ExceptionResource) {
	raise(newArgumentOutOfRangeValue(resources(), arg, actual, res))
}

// ThrowIndexArgumentOutOfRange raises argument_out_of_range for "index".
//
//go:noinline
func ThrowIndexArgumentOutOfRange() {
	raise(newArgumentOutOfRange(resources(), ArgIndex, ResArgumentOutOfRangeIndex))
}

// ThrowCountArgumentOutOfRange raises argument_out_of_range for "count".
//
//go:noinline
func ThrowCountArgumentOutOfRange() {
	raise(newArgumentOutOfRange(resources(), ArgCount, ResArgumentOutOfRangeCount))
}

// ThrowArgument raises an argument error that names no parameter.
//
//go:noinline
func ThrowArgument(res ExceptionResource) {
	raise(newArgument(resources(), res, ""))
}

// ThrowArgumentWithParam raises an argument error naming arg.
//
//go:noinline
func ThrowArgumentWithParam(res ExceptionResource, arg ExceptionArgument) {
	raise(newArgument(resources(), res, ArgumentName(arg)))
}

// ThrowInvalidArrayType raises the argument error for a destination array
// whose element type cannot hold the collection's items.
//
//go:noinline
func ThrowInvalidArrayType() {
	raise(newArgument(resources(), ResArgumentInvalidArrayType, ""))
}

// ThrowDestinationTooShort raises the argument error for a short "destination".
//
//go:noinline
func ThrowDestinationTooShort() {
	raise(newArgument(resources(), ResArgumentDestinationTooShort, ArgumentName(ArgDestination)))
}

// ThrowAddingDuplicateKey raises the argument error for a key already present.
//
//go:noinline
func ThrowAddingDuplicateKey(key any) {
	raise(newAddingDuplicate(resources(), key))
}

// ThrowWrongKeyType raises the argument error for a key that is not of target.
//
//go:noinline
func ThrowWrongKeyType(key any, target reflect.Type) {
	raise(newWrongType(resources(), ArgKey, key, target))
}

// ThrowWrongValueType raises the argument error for a value that is not of target.
//
//go:noinline
func ThrowWrongValueType(value any, target reflect.Type) {
	raise(newWrongType(resources(), ArgValue, value, target))
}

// -----------------------------------------------------------------------------
// Type, array and index errors
// -----------------------------------------------------------------------------

// ThrowTypeMismatch raises type_mismatch for value not convertible to target.
//
//go:noinline
func ThrowTypeMismatch(value any, target reflect.Type) {
	raise(newTypeMismatch(resources(), value, target))
}

// ThrowArrayTypeMismatch raises array_type_mismatch.
//
//go:noinline
func ThrowArrayTypeMismatch() {
	raise(newFixed(resources(), KindArrayTypeMismatch, ResArgArrayTypeMismatch))
}

// ThrowRankMismatch raises rank_mismatch with the message res.
//
//go:noinline
func ThrowRankMismatch(res ExceptionResource) {
	raise(newFixed(resources(), KindRankMismatch, res))
}

// ThrowMultiDimNotSupported raises rank_mismatch for a multi-dimensional array.
//
//go:noinline
func ThrowMultiDimNotSupported() {
	raise(newFixed(resources(), KindRankMismatch, ResArgRankMultiDimNotSupported))
}

// ThrowNonZeroLowerBound raises rank_mismatch for an array not based at zero.
//
//go:noinline
func ThrowNonZeroLowerBound() {
	raise(newFixed(resources(), KindRankMismatch, ResArgNonZeroLowerBound))
}

// ThrowIndexOutOfRange raises index_out_of_range.
//
//go:noinline
func ThrowIndexOutOfRange() {
	raise(newFixed(resources(), KindIndexOutOfRange, ResArgIndexOutOfRange))
}

// -----------------------------------------------------------------------------
// State errors
// -----------------------------------------------------------------------------

// ThrowInvalidOperation raises invalid_operation with the message res.
//
//go:noinline
func ThrowInvalidOperation(res ExceptionResource) {
	raise(newFixed(resources(), KindInvalidOperation, res))
}

// ThrowEnumFailedVersion raises invalid_operation for a collection modified
// during enumeration.
//
//go:noinline
func ThrowEnumFailedVersion() {
	raise(newFixed(resources(), KindInvalidOperation, ResInvalidOperationEnumFailedVersion))
}

// ThrowEnumOpCantHappen raises invalid_operation for Current read outside an
// enumeration.
//
//go:noinline
func ThrowEnumOpCantHappen() {
	raise(newFixed(resources(), KindInvalidOperation, ResInvalidOperationEnumOpCantHappen))
}

// ThrowEnumNotStarted raises invalid_operation for an enumeration not yet started.
//
//go:noinline
func ThrowEnumNotStarted() {
	raise(newFixed(resources(), KindInvalidOperation, ResInvalidOperationEnumNotStarted))
}

// ThrowEnumEnded raises invalid_operation for an enumeration already finished.
//
//go:noinline
func ThrowEnumEnded() {
	raise(newFixed(resources(), KindInvalidOperation, ResInvalidOperationEnumEnded))
}

// ThrowNoValue raises invalid_operation for reading an empty Nullable.
//
//go:noinline
func ThrowNoValue() {
	raise(newFixed(resources(), KindInvalidOperation, ResInvalidOperationNoValue))
}

// ThrowNotSupported raises not_supported with the message res.
//
//go:noinline
func ThrowNotSupported(res ExceptionResource) {
	raise(newFixed(resources(), KindNotSupported, res))
}

// ThrowReadOnlyCollection raises not_supported for a mutation of a read-only
// collection.
//
//go:noinline
func ThrowReadOnlyCollection() {
	raise(newFixed(resources(), KindNotSupported, ResNotSupportedReadOnlyCollection))
}

// ThrowObjectDisposed raises object_disposed. objectName may be "".
//
//go:noinline
func ThrowObjectDisposed(objectName string, res ExceptionResource) {
	raise(newObjectDisposed(resources(), objectName, res))
}
