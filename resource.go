// resource.go — symbol table of diagnostic messages and the message resolver.
//
// Each ExceptionResource maps to a resource key; the text for that key comes
// from an sr.Provider. The provider is installed at most once, before the
// first resolution, and is read-only afterwards.
package xgxthrow

import (
	"sync"
	"sync/atomic"

	"github.com/xgx-io/xgx-throw/sr"
)

// ExceptionResource names a diagnostic message.
type ExceptionResource uint8

const (
	ResArgumentNullGeneric ExceptionResource = iota
	ResArgumentOutOfRangeGeneric
	ResArgumentOutOfRangeActualValue
	ResArgumentOutOfRangeIndex
	ResArgumentOutOfRangeCount
	ResArgumentOutOfRangeNeedNonNegNum
	ResArgumentOutOfRangeListInsert
	ResArgumentOutOfRangeSmallCapacity
	ResArgumentOutOfRangeBiggerThanCollection
	ResArgumentGeneric
	ResArgumentInvalidArrayType
	ResArgumentInvalidOffLen
	ResArgumentDestinationTooShort
	ResArgumentAddingDuplicate
	ResArgumentImplementComparable
	ResArgArrayPlusOffTooSmall
	ResArgWrongType
	ResArgParamName
	ResArgArrayTypeMismatch
	ResArgIndexOutOfRange
	ResArgRankMismatch
	ResArgRankMultiDimNotSupported
	ResArgNonZeroLowerBound
	ResInvalidCastFromTo
	ResInvalidOperationGeneric
	ResInvalidOperationEnumFailedVersion
	ResInvalidOperationEnumOpCantHappen
	ResInvalidOperationEnumNotStarted
	ResInvalidOperationEnumEnded
	ResInvalidOperationEmptyQueue
	ResInvalidOperationEmptyStack
	ResInvalidOperationNoValue
	ResInvalidOperationComparerFailed
	ResInvalidOperationResourcesFrozen
	ResNotSupportedGeneric
	ResNotSupportedReadOnlyCollection
	ResNotSupportedKeyCollectionSet
	ResNotSupportedValueCollectionSet
	ResNotSupportedFixedSizeCollection
	ResObjectDisposedGeneric
	ResObjectDisposedObjectName

	resourceCount
)

var resourceKeys = [resourceCount]string{
	ResArgumentNullGeneric:                    "ArgumentNull_Generic",
	ResArgumentOutOfRangeGeneric:              "ArgumentOutOfRange_Generic",
	ResArgumentOutOfRangeActualValue:          "ArgumentOutOfRange_ActualValue",
	ResArgumentOutOfRangeIndex:                "ArgumentOutOfRange_Index",
	ResArgumentOutOfRangeCount:                "ArgumentOutOfRange_Count",
	ResArgumentOutOfRangeNeedNonNegNum:        "ArgumentOutOfRange_NeedNonNegNum",
	ResArgumentOutOfRangeListInsert:           "ArgumentOutOfRange_ListInsert",
	ResArgumentOutOfRangeSmallCapacity:        "ArgumentOutOfRange_SmallCapacity",
	ResArgumentOutOfRangeBiggerThanCollection: "ArgumentOutOfRange_BiggerThanCollection",
	ResArgumentGeneric:                        "Argument_Generic",
	ResArgumentInvalidArrayType:               "Argument_InvalidArrayType",
	ResArgumentInvalidOffLen:                  "Argument_InvalidOffLen",
	ResArgumentDestinationTooShort:            "Argument_DestinationTooShort",
	ResArgumentAddingDuplicate:                "Argument_AddingDuplicate",
	ResArgumentImplementComparable:            "Argument_ImplementComparable",
	ResArgArrayPlusOffTooSmall:                "Arg_ArrayPlusOffTooSmall",
	ResArgWrongType:                           "Arg_WrongType",
	ResArgParamName:                           "Arg_ParamName_Name",
	ResArgArrayTypeMismatch:                   "Arg_ArrayTypeMismatch",
	ResArgIndexOutOfRange:                     "Arg_IndexOutOfRange",
	ResArgRankMismatch:                        "Arg_RankMismatch",
	ResArgRankMultiDimNotSupported:            "Arg_RankMultiDimNotSupported",
	ResArgNonZeroLowerBound:                   "Arg_NonZeroLowerBound",
	ResInvalidCastFromTo:                      "InvalidCast_FromTo",
	ResInvalidOperationGeneric:                "InvalidOperation_Generic",
	ResInvalidOperationEnumFailedVersion:      "InvalidOperation_EnumFailedVersion",
	ResInvalidOperationEnumOpCantHappen:       "InvalidOperation_EnumOpCantHappen",
	ResInvalidOperationEnumNotStarted:         "InvalidOperation_EnumNotStarted",
	ResInvalidOperationEnumEnded:              "InvalidOperation_EnumEnded",
	ResInvalidOperationEmptyQueue:             "InvalidOperation_EmptyQueue",
	ResInvalidOperationEmptyStack:             "InvalidOperation_EmptyStack",
	ResInvalidOperationNoValue:                "InvalidOperation_NoValue",
	ResInvalidOperationComparerFailed:         "InvalidOperation_ComparerFailed",
	ResInvalidOperationResourcesFrozen:        "InvalidOperation_ResourcesFrozen",
	ResNotSupportedGeneric:                    "NotSupported_Generic",
	ResNotSupportedReadOnlyCollection:         "NotSupported_ReadOnlyCollection",
	ResNotSupportedKeyCollectionSet:           "NotSupported_KeyCollectionSet",
	ResNotSupportedValueCollectionSet:         "NotSupported_ValueCollectionSet",
	ResNotSupportedFixedSizeCollection:        "NotSupported_FixedSizeCollection",
	ResObjectDisposedGeneric:                  "ObjectDisposed_Generic",
	ResObjectDisposedObjectName:               "ObjectDisposed_ObjectName_Name",
}

// Key returns the resource key looked up in the string-resource provider,
// or "" for an undefined ordinal.
func (r ExceptionResource) Key() string {
	if r < resourceCount {
		return resourceKeys[r]
	}
	return ""
}

// String implements fmt.Stringer.
func (r ExceptionResource) String() string { return r.Key() }

// AllResources returns every defined identity in ordinal order.
func AllResources() []ExceptionResource {
	out := make([]ExceptionResource, resourceCount)
	for i := range out {
		out[i] = ExceptionResource(i)
	}
	return out
}

// ResourceKeys returns the key of every defined identity in ordinal order.
func ResourceKeys() []string {
	out := make([]string, resourceCount)
	copy(out, resourceKeys[:])
	return out
}

// -----------------------------------------------------------------------------
// Provider installation
// -----------------------------------------------------------------------------

var (
	providerMu   sync.Mutex
	providerOnce sync.Once
	provider     sr.Provider
	frozen       atomic.Bool
)

// InstallResources replaces the built-in English table with p. It must be
// called before any message is resolved; afterwards the provider is frozen
// and an invalid_operation error is returned.
func InstallResources(p sr.Provider) error {
	if p == nil {
		// Reported from the built-in table so a bad call does not freeze it.
		return newArgumentNull(sr.Default(), ArgProvider)
	}
	providerMu.Lock()
	installed := !frozen.Load()
	if installed {
		provider = p
	}
	providerMu.Unlock()
	if !installed {
		return NewInvalidOperation(ResInvalidOperationResourcesFrozen)
	}
	return nil
}

// resources returns the installed provider, freezing it on first use.
func resources() sr.Provider {
	providerOnce.Do(func() {
		providerMu.Lock()
		defer providerMu.Unlock()
		if provider == nil {
			provider = sr.Default()
		}
		frozen.Store(true)
	})
	return provider
}

// -----------------------------------------------------------------------------
// Resolver
// -----------------------------------------------------------------------------

// ResourceString returns the text for r from the installed provider. A
// missing mapping is a development-time defect: debug builds panic, release
// builds return "".
func ResourceString(r ExceptionResource) string {
	return resolveResource(resources(), r)
}

func resolveResource(p sr.Provider, r ExceptionResource) string {
	key := r.Key()
	if key != "" {
		if text, ok := p.Resolve(key); ok {
			return text
		}
	}
	assertf("xgxthrow: ExceptionResource(%d) %q has no text", uint8(r), key)
	return ""
}

func formatResource(p sr.Provider, r ExceptionResource, args ...any) string {
	key := r.Key()
	if key != "" {
		if text, ok := p.Format(key, args...); ok {
			return text
		}
	}
	assertf("xgxthrow: ExceptionResource(%d) %q has no text", uint8(r), key)
	return ""
}
