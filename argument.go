// argument.go — symbol table of call-site parameter identities.
//
// Call sites pass an ExceptionArgument instead of a string literal; the name
// is resolved in one place by ArgumentName. Ordinals are assigned by iota and
// only need to be stable within one build. Append new identities before
// argumentCount; never remove one that call sites still reference.
package xgxthrow

// ExceptionArgument names a parameter of the function raising an error.
type ExceptionArgument uint8

const (
	ArgAction ExceptionArgument = iota
	ArgArray
	ArgArrayIndex
	ArgCapacity
	ArgCollection
	ArgComparer
	ArgComparison
	ArgConverter
	ArgCount
	ArgDestination
	ArgDictionary
	ArgIndex
	ArgItem
	ArgKey
	ArgLength
	ArgList
	ArgMatch
	ArgObj
	ArgOffset
	ArgProvider
	ArgSource
	ArgStart
	ArgStartIndex
	ArgValue
	ArgValues

	argumentCount
)

var argumentNames = [argumentCount]string{
	ArgAction:      "action",
	ArgArray:       "array",
	ArgArrayIndex:  "arrayIndex",
	ArgCapacity:    "capacity",
	ArgCollection:  "collection",
	ArgComparer:    "comparer",
	ArgComparison:  "comparison",
	ArgConverter:   "converter",
	ArgCount:       "count",
	ArgDestination: "destination",
	ArgDictionary:  "dictionary",
	ArgIndex:       "index",
	ArgItem:        "item",
	ArgKey:         "key",
	ArgLength:      "length",
	ArgList:        "list",
	ArgMatch:       "match",
	ArgObj:         "obj",
	ArgOffset:      "offset",
	ArgProvider:    "provider",
	ArgSource:      "source",
	ArgStart:       "start",
	ArgStartIndex:  "startIndex",
	ArgValue:       "value",
	ArgValues:      "values",
}

// ArgumentName returns the parameter name for a. An identity without a name
// is a development-time defect: debug builds panic, release builds return "".
func ArgumentName(a ExceptionArgument) string {
	if a < argumentCount {
		if name := argumentNames[a]; name != "" {
			return name
		}
	}
	assertf("xgxthrow: ExceptionArgument(%d) has no name", uint8(a))
	return ""
}

// String implements fmt.Stringer.
func (a ExceptionArgument) String() string { return ArgumentName(a) }

// AllArguments returns every defined identity in ordinal order.
func AllArguments() []ExceptionArgument {
	out := make([]ExceptionArgument, argumentCount)
	for i := range out {
		out[i] = ExceptionArgument(i)
	}
	return out
}
