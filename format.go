// format.go — fmt.Formatter for raised errors.
//
// Behavior:
//
//   %s, %v   → Error().
//   %+v      → verbose, multi-line:
//                kind=<kind> msg="<message>" param=<name>
//                ctx: key1=val1 key2=val2
//                stack:
//                  funcA file.go:123
//   %q       → quoted Error().
package xgxthrow

import (
	"fmt"
	"io"
)

func (e *exceptionErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.text)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.text)
	default:
		_, _ = io.WriteString(s, e.text)
	}
}

func (e *exceptionErr) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "kind=%s msg=%q", e.kind, e.msg)
	if e.param != "" {
		_, _ = fmt.Fprintf(w, " param=%s", e.param)
	}

	if len(e.ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range e.ctx {
			_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
		}
	}

	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
