package sr

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"
)

// config stores resolved table settings after option application.
type config struct {
	bundles []Bundle
	want    []language.Tag
	logger  *slog.Logger
	err     error
}

// Option mutates table construction configuration.
type Option func(*config)

func defaultConfig() config {
	return config{
		bundles: []Bundle{englishBundle()},
		logger:  slog.Default(),
	}
}

// WithBundle adds a message bundle. A later bundle for the same language
// overrides keys of an earlier one.
func WithBundle(b Bundle) Option {
	return func(cfg *config) {
		cfg.bundles = append(cfg.bundles, b)
	}
}

// WithBundleReader parses a YAML bundle from r and adds it.
func WithBundleReader(r io.Reader) Option {
	return func(cfg *config) {
		b, err := ParseBundle(r)
		if err != nil {
			if cfg.err == nil {
				cfg.err = err
			}
			return
		}
		cfg.bundles = append(cfg.bundles, b)
	}
}

// WithLanguage appends tag to the list of preferred languages.
func WithLanguage(tag language.Tag) Option {
	return func(cfg *config) {
		cfg.want = append(cfg.want, tag)
	}
}

// WithAcceptLanguage appends the languages of an Accept-Language style list,
// in preference order.
func WithAcceptLanguage(s string) Option {
	return func(cfg *config) {
		tags, _, err := language.ParseAcceptLanguage(s)
		if err != nil {
			if cfg.err == nil {
				cfg.err = fmt.Errorf("sr: accept-language %q: %w", s, err)
			}
			return
		}
		cfg.want = append(cfg.want, tags...)
	}
}

// WithLogger configures the logger used to report missing keys.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
