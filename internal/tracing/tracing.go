/*
Package tracing selects the tracers used throughout the compose module.

Table construction, matching and locale lookup trace to the core tracer,
lexing and parsing of Compose files trace to the syntax tracer. Both are
taken from schuko's global tracers; if a client did not configure them,
errors are logged through a Go log adapter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tracing

import (
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var fallback tracing.Trace
var fallbackOnce sync.Once

func defaultTracer() tracing.Trace {
	fallbackOnce.Do(func() {
		fallback = gologadapter.New()
		fallback.SetTraceLevel(tracing.LevelError)
	})
	return fallback
}

// Core returns the core tracer.
func Core() tracing.Trace {
	if gtrace.CoreTracer == nil {
		return defaultTracer()
	}
	return gtrace.CoreTracer
}

// Syntax returns the tracer for the Compose file lexer and parser.
func Syntax() tracing.Trace {
	if gtrace.SyntaxTracer == nil {
		return defaultTracer()
	}
	return gtrace.SyntaxTracer
}
