package xgxthrow

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mustRaise runs fn and returns the Error it raised, failing the test if it
// returned normally.
func mustRaise(t *testing.T, fn func()) Error {
	t.Helper()
	xe := Catch(fn)
	if xe == nil {
		t.Fatalf("expected a raised error, got normal return")
	}
	return xe
}
