// stack_test.go — verification of stack capture semantics and metadata.
package xgxthrow

import (
	"strings"
	"testing"
)

// --- Helpers to build a known call chain -------------------------------------

//go:noinline
func stackTestLevel2(skip int) Stack {
	return captureStack(skip, maxStackDepth)
}

//go:noinline
func stackTestLevel1(skip int) Stack {
	return stackTestLevel2(skip)
}

// --- Tests -------------------------------------------------------------------

func TestCaptureStack_UsesDefaultWhenMaxDepthZero(t *testing.T) {
	t.Parallel()

	s := captureStack(0, 0)
	if len(s) == 0 {
		t.Fatalf("expected non-empty stack when maxDepth=0 (default), got 0")
	}
	if len(s) > maxStackDepth {
		t.Fatalf("stack length exceeds maxStackDepth: len=%d max=%d", len(s), maxStackDepth)
	}
}

func TestCaptureStack_RespectsMaxDepthLimit(t *testing.T) {
	t.Parallel()

	const limit = 3
	s := captureStack(0, limit)
	if len(s) == 0 || len(s) > limit {
		t.Fatalf("expected 1..%d frames; got %d", limit, len(s))
	}
}

func TestCaptureStack_SkipSemantics(t *testing.T) {
	t.Parallel()

	if top := stackTestLevel1(0).Top(); !strings.HasSuffix(top.Function, ".stackTestLevel2") {
		t.Fatalf("skip=0: want stackTestLevel2 on top, got %q", top.Function)
	}
	if top := stackTestLevel1(1).Top(); !strings.HasSuffix(top.Function, ".stackTestLevel1") {
		t.Fatalf("skip=1: want stackTestLevel1 on top, got %q", top.Function)
	}
}

func TestStack_FramesHaveMetadata(t *testing.T) {
	t.Parallel()

	for i, fr := range captureStack(0, 4) {
		if fr.Function == "" || fr.File == "" || fr.Line <= 0 || fr.PC == 0 {
			t.Fatalf("frame %d incomplete: %+v", i, fr)
		}
	}
}

func TestStack_StringAndEmptyTop(t *testing.T) {
	t.Parallel()

	var empty Stack
	if empty.Top() != (Frame{}) || empty.String() != "" {
		t.Fatalf("empty stack: want zero Top and empty String")
	}

	s := Stack{
		{Function: "pkg.a", File: "a.go", Line: 1},
		{Function: "pkg.b", File: "b.go", Line: 2},
	}
	if want := "pkg.a a.go:1\npkg.b b.go:2"; s.String() != want {
		t.Fatalf("String: want=%q got=%q", want, s.String())
	}
}
