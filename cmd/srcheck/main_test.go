package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/xgx-io/xgx-throw/sr"
)

func writeBundle(t *testing.T, name string, b map[string]any) string {
	t.Helper()
	data, err := yaml.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestRun_EnglishTableIsClean(t *testing.T) {
	t.Parallel()

	path := writeBundle(t, "en.yaml", map[string]any{
		"language": "en",
		"messages": sr.DefaultBundle().Messages,
	})
	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, &stdout, &stderr, false); code != exitOK {
		t.Fatalf("exit: want=%d got=%d\nstdout=%s\nstderr=%s", exitOK, code, stdout.String(), stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("unexpected findings:\n%s", stdout.String())
	}
}

func TestRun_ReportsFindings(t *testing.T) {
	t.Parallel()

	msgs := sr.DefaultBundle().Messages
	delete(msgs, "InvalidOperation_EmptyStack")
	msgs["Arg_WrongType"] = "Falscher Typ."
	msgs["Bogus_Key"] = "x"

	path := writeBundle(t, "de.yaml", map[string]any{"language": "de", "messages": msgs})
	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, &stdout, &stderr, false); code != exitFindings {
		t.Fatalf("exit: want=%d got=%d", exitFindings, code)
	}

	out := stdout.String()
	for _, want := range []string{
		"missing InvalidOperation_EmptyStack",
		"unknown Bogus_Key",
		"arity Arg_WrongType: want=2 got=0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("colour codes written when colour is off")
	}
}

func TestRun_QuietAndColour(t *testing.T) {
	t.Parallel()

	path := writeBundle(t, "fr.yaml", map[string]any{
		"language": "fr",
		"messages": map[string]string{"ArgumentNull_Generic": "La valeur ne peut pas être nulle."},
	})

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-q", path}, &stdout, &stderr, true); code != exitFindings {
		t.Fatalf("exit: want=%d got=%d", exitFindings, code)
	}
	if !strings.HasSuffix(strings.TrimSpace(stdout.String()), ": 40") {
		t.Fatalf("quiet output: got=%q", stdout.String())
	}

	stdout.Reset()
	run([]string{path}, &stdout, &stderr, true)
	if !strings.Contains(stdout.String(), ansiRed+"missing ") {
		t.Fatalf("want red missing findings, got:\n%s", stdout.String())
	}
}

func TestRun_UsageAndParseErrors(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr, false); code != exitUsage {
		t.Fatalf("no args: want=%d got=%d", exitUsage, code)
	}
	if code := run([]string{"-x"}, &stdout, &stderr, false); code != exitUsage {
		t.Fatalf("bad flag: want=%d got=%d", exitUsage, code)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("language: [\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	stderr.Reset()
	if code := run([]string{bad}, &stdout, &stderr, false); code != exitUsage {
		t.Fatalf("parse error: want=%d got=%d", exitUsage, code)
	}
	if !strings.Contains(stderr.String(), "read bundle") {
		t.Fatalf("want a logged read error, got %q", stderr.String())
	}
}

func TestArity(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"no args":           0,
		"%[1]v":             1,
		"%[2]v then %[1]v":  2,
		"100%% done, %[3]q": 3,
	}
	for text, want := range cases {
		if got := arity(text); got != want {
			t.Fatalf("arity(%q): want=%d got=%d", text, want, got)
		}
	}
}
