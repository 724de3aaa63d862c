package xgxthrow

import (
	"strings"
	"sync"
	"testing"

	"github.com/xgx-io/xgx-throw/sr"
	"golang.org/x/text/language"
)

// resetProvider restores the never-used state. Only non-parallel tests may
// call it; parallel tests start after every sequential test has finished.
func resetProvider(t *testing.T) {
	t.Helper()
	providerMu.Lock()
	providerOnce = sync.Once{}
	provider = nil
	frozen.Store(false)
	providerMu.Unlock()
}

const germanYAML = `
language: de
messages:
  ArgumentNull_Generic: "Der Wert darf nicht NULL sein."
  Arg_ParamName_Name: "(Parameter „%[1]v“)"
`

func TestInstallResources_LocalizedTable(t *testing.T) {
	resetProvider(t)
	t.Cleanup(func() { resetProvider(t) })

	tbl, err := sr.New(
		sr.WithBundleReader(strings.NewReader(germanYAML)),
		sr.WithLanguage(language.German),
	)
	if err != nil {
		t.Fatalf("sr.New: %v", err)
	}
	if err := InstallResources(tbl); err != nil {
		t.Fatalf("InstallResources before first use: %v", err)
	}

	xe := mustRaise(t, func() { ThrowArgumentNull(ArgKey) })
	if want := "argument_null: Der Wert darf nicht NULL sein. (Parameter „key“)"; xe.Error() != want {
		t.Fatalf("Error():\nwant=%q\ngot =%q", want, xe.Error())
	}
	// Keys without a translation fall back to English.
	if got := ResourceString(ResInvalidOperationEmptyStack); got != "Stack empty." {
		t.Fatalf("fallback: want=%q got=%q", "Stack empty.", got)
	}
}

func TestInstallResources_FrozenAfterFirstUse(t *testing.T) {
	resetProvider(t)
	t.Cleanup(func() { resetProvider(t) })

	_ = ResourceString(ResArgumentGeneric)

	err := InstallResources(sr.Default())
	if err == nil {
		t.Fatalf("install after first use must fail")
	}
	if KindOf(err) != KindInvalidOperation {
		t.Fatalf("kind: want=%s got=%s", KindInvalidOperation, KindOf(err))
	}
	if !strings.Contains(err.Error(), "cannot be replaced after first use") {
		t.Fatalf("message: got=%q", err.Error())
	}
}

func TestInstallResources_NilProvider(t *testing.T) {
	resetProvider(t)
	t.Cleanup(func() { resetProvider(t) })

	err := InstallResources(nil)
	if KindOf(err) != KindArgumentNull || ParamNameOf(err) != "provider" {
		t.Fatalf("want argument_null for provider, got %v", err)
	}
	if frozen.Load() {
		t.Fatalf("a rejected install must not freeze the provider")
	}
	if err := InstallResources(sr.Default()); err != nil {
		t.Fatalf("install after rejected nil: %v", err)
	}
}
