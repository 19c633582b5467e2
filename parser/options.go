package parser

import (
	"os"

	"github.com/npillmayer/compose/locale"
)

// PathExpander resolves the %-substitutions of include paths.
// *locale.Resolver is a PathExpander.
type PathExpander interface {
	HomeDir() (string, bool)               // %H
	ComposeFile(loc string) (string, bool) // %L
	LocaleDir() string                     // %S
}

// Option configures parsing.
type Option func(*config)

type config struct {
	locale          string
	expander        PathExpander
	report          func(Diagnostic)
	maxIncludeDepth int
	readFile        func(string) ([]byte, error)
}

func newConfig(opts []Option) *config {
	cfg := &config{
		locale:          "C",
		maxIncludeDepth: MaxIncludeDepth,
		readFile:        os.ReadFile,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.expander == nil {
		cfg.expander = locale.Default()
	}
	return cfg
}

// WithLocale sets the locale used to expand %L in include paths.
func WithLocale(loc string) Option {
	return func(cfg *config) {
		if loc != "" {
			cfg.locale = loc
		}
	}
}

// WithResolver sets the expander for include paths.
func WithResolver(x PathExpander) Option {
	return func(cfg *config) {
		cfg.expander = x
	}
}

// WithDiagnostics sets a function which receives every diagnostic.
// Diagnostics are traced in any case.
func WithDiagnostics(f func(Diagnostic)) Option {
	return func(cfg *config) {
		cfg.report = f
	}
}

// WithMaxIncludeDepth limits the nesting of include statements.
func WithMaxIncludeDepth(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.maxIncludeDepth = n
		}
	}
}

// WithReadFile replaces os.ReadFile for reading included files.
func WithReadFile(f func(string) ([]byte, error)) Option {
	return func(cfg *config) {
		if f != nil {
			cfg.readFile = f
		}
	}
}
