//go:build xgxthrow_debug

package xgxthrow

import "fmt"

// assertf panics: a missing symbol mapping is a development-time defect.
func assertf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
