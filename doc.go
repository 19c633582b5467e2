/*
Package compose implements X11-style compose sequences.

Description

A compose sequence is an ordered list of keysyms which together produce a
single output, for example

    <Multi_key> <a> <p>   : "@"  at
    <dead_acute> <a>      : "á"  aacute

Compose sequences are read from Compose files (see package parser for the
format) and compiled into a Table. A table is a ternary search tree over
keysyms: every node holds a single keysym, with links to siblings holding
smaller and larger keysyms at the same position of a sequence, and a link to
the node for the next position. Complete sequences end in leaf nodes, which
carry the output text and an optional output keysym. No sequence of a table
is a prefix of another one.

Tables are immutable after construction and may be shared between
goroutines. Clients match keystrokes against a table with a State, which
consumes one keysym at a time:

    table, err := compose.NewTableFromLocale("", compose.CompileNoFlags)
    ...
    state, _ := compose.NewState(table, compose.StateNoFlags)
    for _, ks := range keystrokes {
        state.Feed(ks)
        switch state.Status() {
        case compose.StatusComposed:
            insert(state.Text())
            state.Reset()
        case compose.StatusCancelled:
            state.Reset()
        }
    }

A State is cheap and must not be used from more than one goroutine at a
time. Entries of a table may be enumerated with an Iterator.

Recoverable problems during construction, like syntax errors or conflicting
sequences, are reported as diagnostics (see WithDiagnostics) and traced to
the core and syntax tracers. They do not prevent the table from being built.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package compose

import (
	"github.com/npillmayer/compose/internal/tracing"
	tr "github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tr.Trace {
	return tracing.Core()
}
