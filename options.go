package compose

import (
	"os"

	"github.com/npillmayer/compose/locale"
	"github.com/npillmayer/compose/parser"
)

// Option configures the construction of a table.
type Option func(*options)

type options struct {
	maxNodes        int
	resolver        *locale.Resolver
	report          func(parser.Diagnostic)
	maxIncludeDepth int
	readFile        func(string) ([]byte, error)
}

func newOptions(opts []Option) *options {
	o := &options{
		maxNodes:        DefaultMaxNodes,
		resolver:        locale.Default(),
		maxIncludeDepth: parser.MaxIncludeDepth,
		readFile:        os.ReadFile,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.resolver.ReadFile == nil {
		r := *o.resolver
		r.ReadFile = o.readFile
		o.resolver = &r
	}
	return o
}

// WithDiagnostics sets a function to receive diagnostics about problems
// in Compose files, including conflicting sequences.
func WithDiagnostics(f func(parser.Diagnostic)) Option {
	return func(o *options) {
		o.report = f
	}
}

// WithResolver sets the resolver for locales and Compose file locations.
// The default resolver reads the process environment.
func WithResolver(r *locale.Resolver) Option {
	return func(o *options) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithMaxNodes limits the number of nodes of a table. Sequences which would
// exceed the limit are dropped. The default is DefaultMaxNodes.
func WithMaxNodes(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxNodes = n
		}
	}
}

// WithMaxIncludeDepth limits the nesting of include statements.
func WithMaxIncludeDepth(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxIncludeDepth = n
		}
	}
}

// WithReadFile replaces os.ReadFile for reading Compose files. It is also
// used for the locale index files, unless the resolver has its own ReadFile.
func WithReadFile(f func(string) ([]byte, error)) Option {
	return func(o *options) {
		if f != nil {
			o.readFile = f
		}
	}
}

// parserOptions translates table options for the parser.
func (o *options) parserOptions(loc string, report func(parser.Diagnostic)) []parser.Option {
	return []parser.Option{
		parser.WithLocale(loc),
		parser.WithResolver(o.resolver),
		parser.WithDiagnostics(report),
		parser.WithMaxIncludeDepth(o.maxIncludeDepth),
		parser.WithReadFile(o.readFile),
	}
}
