// stack.go — call-site stack capture for raised errors.
//
// Notes:
//   - Only the raise path captures; New* constructors do not.
//   - runtime.CallersFrames resolves inlined frames, so the first frame is the
//     caller of the dispatch function even when the optimizer inlines it.
//   - Depth is bounded; raising is already the slow path.
package xgxthrow

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame is a single call site in a stack trace.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const maxStackDepth = 32

// Top returns the most recent frame, or the zero Frame for an empty stack.
func (s Stack) Top() Frame {
	if len(s) == 0 {
		return Frame{}
	}
	return s[0]
}

// String renders one "function file:line" line per frame.
func (s Stack) String() string {
	var b strings.Builder
	for i, fr := range s {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s:%d", fr.Function, fr.File, fr.Line)
	}
	return b.String()
}

// captureStack records up to maxDepth frames. skip=0 makes the first frame the
// caller of captureStack.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = maxStackDepth
	}

	// +2 skips runtime.Callers and captureStack itself.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
