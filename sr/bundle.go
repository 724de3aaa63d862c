// bundle.go — YAML message bundles for the string-resource provider.
//
// Format:
//
//	language: de
//	messages:
//	  ArgumentOutOfRange_Index: "Der Index lag außerhalb des Bereichs. …"
//
// Notes:
//   - Message texts are fmt-style and SHOULD use explicit argument indexes
//     (%[1]v) so translations may reorder arguments.
//   - Unknown top-level fields are rejected; unknown message keys are kept and
//     left for cmd/srcheck to report.
package sr

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/en.yaml
var englishYAML []byte

// Bundle is one language's message table.
type Bundle struct {
	Language language.Tag
	Messages map[string]string
}

type bundleFile struct {
	Language string            `yaml:"language"`
	Messages map[string]string `yaml:"messages"`
}

// ParseBundle decodes a YAML bundle from r.
func ParseBundle(r io.Reader) (Bundle, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f bundleFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Bundle{}, errors.New("sr: empty bundle")
		}
		return Bundle{}, fmt.Errorf("sr: decode bundle: %w", err)
	}
	if f.Language == "" {
		return Bundle{}, errors.New("sr: bundle has no language")
	}
	tag, err := language.Parse(f.Language)
	if err != nil {
		return Bundle{}, fmt.Errorf("sr: bundle language %q: %w", f.Language, err)
	}
	if f.Messages == nil {
		f.Messages = map[string]string{}
	}
	return Bundle{Language: tag, Messages: f.Messages}, nil
}

// DefaultBundle returns a copy of the built-in English table.
func DefaultBundle() Bundle {
	b := englishBundle()
	b.Messages = maps.Clone(b.Messages)
	return b
}

var englishBundle = sync.OnceValue(func() Bundle {
	b, err := ParseBundle(bytes.NewReader(englishYAML))
	if err != nil {
		// The embedded table is part of the build.
		panic(err)
	}
	return b
})
