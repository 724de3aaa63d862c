package xgxthrow

import "testing"

func TestArgumentName_Total(t *testing.T) {
	t.Parallel()

	seen := make(map[string]ExceptionArgument)
	for _, a := range AllArguments() {
		name := ArgumentName(a)
		if name == "" {
			t.Fatalf("ExceptionArgument(%d) has no name", a)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("name %q shared by %d and %d", name, prev, a)
		}
		seen[name] = a
	}
	if len(seen) != int(argumentCount) {
		t.Fatalf("names: want=%d got=%d", argumentCount, len(seen))
	}
}

func TestArgumentName_Known(t *testing.T) {
	t.Parallel()

	cases := map[ExceptionArgument]string{
		ArgIndex:      "index",
		ArgStartIndex: "startIndex",
		ArgArrayIndex: "arrayIndex",
		ArgKey:        "key",
		ArgProvider:   "provider",
	}
	for a, want := range cases {
		if got := ArgumentName(a); got != want {
			t.Fatalf("ArgumentName(%d): want=%q got=%q", a, want, got)
		}
		if got := a.String(); got != want {
			t.Fatalf("String(): want=%q got=%q", want, got)
		}
	}
}
