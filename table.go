package compose

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/compose/keysym"
	"github.com/npillmayer/compose/parser"
)

// Format identifies the format of Compose input.
type Format int

// FormatTextV1 is the textual Compose file format.
const FormatTextV1 Format = 1

// CompileFlags modify the construction of a table. No flags are defined yet.
type CompileFlags int

// CompileNoFlags is the only valid value for CompileFlags.
const CompileNoFlags CompileFlags = 0

// DefaultMaxNodes is the default limit for the number of nodes of a table.
const DefaultMaxNodes = 1 << 23

// Errors returned by the table constructors.
var (
	ErrUnknownFormat = errors.New("compose: unknown format")
	ErrUnknownFlags  = errors.New("compose: unknown flags")
	ErrNoComposeFile = errors.New("compose: no Compose file found")
)

// Table is a compiled set of compose sequences. Tables are immutable and
// safe for concurrent use.
type Table struct {
	nodes  []node // node 0 is a sentinel leaf, node 1 the root
	utf8   []byte // NUL-terminated output strings; offset 0 is ""
	locale string
	leaves int
}

// node is a node of a ternary search tree. Links are indices into the node
// array, 0 meaning "no link".
type node struct {
	keysym  keysym.Keysym
	lokid   uint32
	hikid   uint32
	payload payload
}

// payload is either internalNode or leafNode.
type payload interface {
	isPayload()
}

// internalNode continues a sequence at node eqkid.
type internalNode struct {
	eqkid uint32
}

// leafNode ends a sequence.
type leafNode struct {
	utf8   uint32 // offset into the string pool
	keysym keysym.Keysym
}

func (internalNode) isPayload() {}
func (leafNode) isPayload() {}

func newTable(loc string) *Table {
	t := &Table{locale: loc}
	t.nodes = make([]node, 1, 256)
	t.nodes[0].payload = leafNode{}
	t.utf8 = []byte{0}
	return t
}

// Locale returns the (resolved) locale the table has been built for.
func (t *Table) Locale() string {
	return t.locale
}

// Len returns the number of sequences in the table.
func (t *Table) Len() int {
	return t.leaves
}

func (t *Table) isLeaf(n uint32) bool {
	_, ok := t.nodes[n].payload.(leafNode)
	return ok
}

// eqkid returns the next-position link of an internal node, or 0 for leaves.
func (t *Table) eqkid(n uint32) uint32 {
	if in, ok := t.nodes[n].payload.(internalNode); ok {
		return in.eqkid
	}
	return 0
}

// str returns the string at offset off of the string pool.
func (t *Table) str(off uint32) string {
	if off == 0 || int(off) >= len(t.utf8) {
		return ""
	}
	s := t.utf8[off:]
	if end := bytes.IndexByte(s, 0); end >= 0 {
		s = s[:end]
	}
	return string(s)
}

// --- Construction ----------------------------------------------------------

// NewTableFromBuffer compiles a table from Compose text in buf. loc is the
// locale used for %L in include statements; if empty, it is detected from
// the environment.
//
// Recoverable problems are reported as diagnostics. An error is returned if
// format or flags are invalid, or if the input cannot be parsed as a whole
// (see parser.Parse).
func NewTableFromBuffer(buf []byte, loc string, format Format, flags CompileFlags,
	opts ...Option) (*Table, error) {
	if err := checkFormat(format, flags); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return o.compile(buf, "(buffer)", o.resolveLocale(loc))
}

// NewTableFromReader compiles a table from Compose text read from r.
// See NewTableFromBuffer.
func NewTableFromReader(r io.Reader, loc string, format Format, flags CompileFlags,
	opts ...Option) (*Table, error) {
	if err := checkFormat(format, flags); err != nil {
		return nil, err
	}
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compose: reading Compose input: %w", err)
	}
	o := newOptions(opts)
	return o.compile(buf, "(stream)", o.resolveLocale(loc))
}

// NewTableFromFile compiles a table from a Compose file.
// See NewTableFromBuffer.
func NewTableFromFile(path string, loc string, format Format, flags CompileFlags,
	opts ...Option) (*Table, error) {
	if err := checkFormat(format, flags); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	buf, err := o.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	return o.compile(buf, path, o.resolveLocale(loc))
}

// NewTableFromLocale compiles a table from the first Compose file found for
// a locale. Candidates are, in order:
//
//    $XCOMPOSEFILE
//    $XDG_CONFIG_HOME/XCompose, or $HOME/.config/XCompose
//    $HOME/.XCompose
//    the Compose file of the locale, as listed in $XLOCALEDIR/compose.dir
//
// If loc is empty, it is detected from the environment. If none of the
// candidates can be read, ErrNoComposeFile is returned.
func NewTableFromLocale(loc string, flags CompileFlags, opts ...Option) (*Table, error) {
	if err := checkFormat(FormatTextV1, flags); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	loc = o.resolveLocale(loc)
	for _, path := range o.resolver.Candidates(loc) {
		buf, err := o.readFile(path)
		if err != nil {
			T().Debugf("skipping Compose file candidate: %v", err)
			continue
		}
		T().Infof("loading Compose file %s for locale %s", path, loc)
		return o.compile(buf, path, loc)
	}
	return nil, fmt.Errorf("%w for locale %s", ErrNoComposeFile, loc)
}

func checkFormat(format Format, flags CompileFlags) error {
	if format != FormatTextV1 {
		return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if flags != CompileNoFlags {
		return fmt.Errorf("%w: %#x", ErrUnknownFlags, int(flags))
	}
	return nil
}

func (o *options) resolveLocale(loc string) string {
	if loc == "" {
		loc = o.resolver.Detect()
	}
	return o.resolver.Resolve(loc)
}

// compile parses Compose input into a new table.
func (o *options) compile(buf []byte, name string, loc string) (*Table, error) {
	t := newTable(loc)
	b := newBuilder(t, o.maxNodes)
	if err := parser.Parse(buf, name, b, o.parserOptions(loc, o.report)...); err != nil {
		return nil, err
	}
	T().Debugf("compiled %d compose sequences into %d nodes", t.leaves, len(t.nodes))
	return t, nil
}
