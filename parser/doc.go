/*
Package parser reads the X11 Compose rule language.

A Compose file consists of productions, one per line. The left-hand side of a
production is a sequence of keysyms, each optionally preceded by modifiers;
the right-hand side is a string, a keysym, or both:

    <Multi_key> <a> <p>       : "@"   at
    <dead_acute> <a>          : "á"   aacute
    !Shift ~Ctrl <dead_grave> <A> : "À"
    include "%L"

Comments start with '#' and run to the end of the line. Strings may contain
the escapes \\, \", octal \NNN and hexadecimal \xNN. Include paths may contain
%H (home directory), %L (Compose file of the current locale), %S (system
locale directory) and %% (a literal percent sign).

The parser is a line-oriented state machine. Problems are reported as
diagnostics and affect only the line they occur on, unless too many errors
accumulate or an include fails. Parsed productions are handed to a Sink,
usually a compose table under construction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package parser

import (
	"github.com/npillmayer/compose/internal/tracing"
	tr "github.com/npillmayer/schuko/tracing"
)

// T traces to the syntax tracer.
func T() tr.Trace {
	return tracing.Syntax()
}
