/*
Package locale finds the Compose files relevant for a user locale.

Compose files are searched in the places X11 input methods look for them:
a file named by the XCOMPOSEFILE environment variable, the user's XDG
configuration directory, a dot-file in the home directory and finally the
system-wide Compose file of the locale. The latter is looked up in the
X11 locale directory (XLOCALEDIR, default /usr/share/X11/locale) using the
index files "locale.alias" and "compose.dir".

If no locale is given, it is detected from the environment (LC_ALL,
LC_CTYPE, LANG) and, as a last resort, from the operating system.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package locale

import (
	"github.com/npillmayer/compose/internal/tracing"
	tr "github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tr.Trace {
	return tracing.Core()
}
