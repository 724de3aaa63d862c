// table.go — immutable, localized string-resource provider.
//
// Design:
//   - A Table is built once from one or more Bundles and never mutated, so it
//     is safe for concurrent use without locks.
//   - English is always loaded and serves as the fallback for keys a chosen
//     translation lacks.
//   - Lookup is a map read; formatting goes through an x/text message.Printer
//     so argument rendering follows the chosen language.
package sr

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Provider resolves resource keys to current-locale text.
type Provider interface {
	// Resolve returns the text stored for key. ok is false when the key has
	// no mapping.
	Resolve(key string) (text string, ok bool)
	// Format renders the text stored for key with args.
	Format(key string, args ...any) (text string, ok bool)
}

// Table is the Provider backed by YAML bundles and an x/text catalog.
type Table struct {
	tag       language.Tag
	languages []language.Tag
	messages  map[string]string
	printer   *message.Printer
	logger    *slog.Logger
}

var _ Provider = (*Table)(nil)

// New builds a Table. Without WithLanguage/WithAcceptLanguage the English
// table is selected.
func New(opts ...Option) (*Table, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// Merge bundles per language; the first tag (English) is the matcher default.
	tags := make([]language.Tag, 0, len(cfg.bundles))
	byTag := make(map[language.Tag]map[string]string, len(cfg.bundles))
	for _, b := range cfg.bundles {
		m, ok := byTag[b.Language]
		if !ok {
			m = make(map[string]string, len(b.Messages))
			byTag[b.Language] = m
			tags = append(tags, b.Language)
		}
		maps.Copy(m, b.Messages)
	}

	chosen := tags[0]
	if len(cfg.want) > 0 {
		_, idx, _ := language.NewMatcher(tags).Match(cfg.want...)
		chosen = tags[idx]
	}

	merged := maps.Clone(byTag[language.English])
	maps.Copy(merged, byTag[chosen])

	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range merged {
		if err := builder.SetString(chosen, key, text); err != nil {
			return nil, fmt.Errorf("sr: message %q: %w", key, err)
		}
	}

	return &Table{
		tag:       chosen,
		languages: tags,
		messages:  merged,
		printer:   message.NewPrinter(chosen, message.Catalog(builder)),
		logger:    cfg.logger,
	}, nil
}

// Default returns the process-wide English table.
func Default() *Table {
	return defaultTable()
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := New()
	if err != nil {
		panic(err)
	}
	return t
})

// Language reports the language the table resolves in.
func (t *Table) Language() language.Tag { return t.tag }

// Languages reports every language a bundle was supplied for, English first.
func (t *Table) Languages() []language.Tag { return slices.Clone(t.languages) }

// Keys returns the resolvable keys in sorted order.
func (t *Table) Keys() []string {
	return slices.Sorted(maps.Keys(t.messages))
}

// Resolve implements Provider.
func (t *Table) Resolve(key string) (string, bool) {
	text, ok := t.messages[key]
	if !ok {
		t.missing(key)
		return "", false
	}
	return text, true
}

// Format implements Provider.
func (t *Table) Format(key string, args ...any) (string, bool) {
	if _, ok := t.messages[key]; !ok {
		t.missing(key)
		return "", false
	}
	return t.printer.Sprintf(key, plain(args)...), true
}

// plain renders each argument with fmt so values keep their exact text;
// the printer would otherwise apply locale digit grouping to numbers.
func plain(args []any) []any {
	if len(args) == 0 {
		return args
	}
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = fmt.Sprint(a)
	}
	return out
}

func (t *Table) missing(key string) {
	t.logger.LogAttrs(context.Background(), slog.LevelWarn, "sr: missing resource",
		slog.String("key", key),
		slog.String("language", t.tag.String()),
	)
}
