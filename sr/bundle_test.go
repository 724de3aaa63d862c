package sr

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestParseBundle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantErr bool
		wantTag language.Tag
		wantLen int
	}{
		{name: "valid", in: "language: pt-BR\nmessages:\n  A: a\n  B: b\n", wantTag: language.BrazilianPortuguese, wantLen: 2},
		{name: "no messages", in: "language: fr\n", wantTag: language.French, wantLen: 0},
		{name: "empty", in: "", wantErr: true},
		{name: "no language", in: "messages:\n  A: a\n", wantErr: true},
		{name: "bad language", in: "language: not_a_tag!\n", wantErr: true},
		{name: "unknown field", in: "language: en\ncolour: red\n", wantErr: true},
		{name: "not yaml", in: "language: [\n", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseBundle(strings.NewReader(tc.in))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got bundle %+v", b)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Language != tc.wantTag {
				t.Fatalf("language: want=%v got=%v", tc.wantTag, b.Language)
			}
			if len(b.Messages) != tc.wantLen || b.Messages == nil {
				t.Fatalf("messages: want len %d got %#v", tc.wantLen, b.Messages)
			}
		})
	}
}

func TestDefaultBundle_IsEnglishAndIsolated(t *testing.T) {
	t.Parallel()

	b := DefaultBundle()
	if b.Language != language.English {
		t.Fatalf("language: want=en got=%v", b.Language)
	}
	for key, text := range b.Messages {
		if text == "" {
			t.Fatalf("key %q has empty text", key)
		}
	}

	b.Messages["ArgumentNull_Generic"] = "mutated"
	if DefaultBundle().Messages["ArgumentNull_Generic"] != "Value cannot be null." {
		t.Fatalf("DefaultBundle exposed shared map")
	}
}
