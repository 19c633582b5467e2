package compose

import (
	"errors"

	"github.com/npillmayer/compose/keysym"
	"github.com/npillmayer/compose/parser"
)

// Conflicts while inserting sequences. They are reported as warnings; the
// conflicting sequence is skipped, except for ErrOverriding.
var (
	ErrDuplicateSequence = errors.New("this compose sequence is a duplicate of another; skipping line")
	ErrOverriding        = errors.New("this compose sequence already exists; overriding")
	ErrPrefixOfExisting  = errors.New("this compose sequence is a prefix of another; skipping line")
	ErrExistingIsPrefix  = errors.New("another compose sequence is a prefix of this sequence; skipping line")
	ErrTableFull         = errors.New("too many nodes in compose table; dropping this and further sequences")
)

// builder inserts productions into a table. It implements parser.Sink.
type builder struct {
	t        *Table
	maxNodes int
	full     bool // ErrTableFull has been reported
	seq      []keysym.Keysym
}

func newBuilder(t *Table, maxNodes int) *builder {
	return &builder{
		t:        t,
		maxNodes: maxNodes,
		seq:      make([]keysym.Keysym, 0, parser.MaxLHSLen),
	}
}

// AddProduction is part of interface parser.Sink.
func (b *builder) AddProduction(p *parser.Production) error {
	b.seq = b.seq[:0]
	for _, ev := range p.LHS {
		b.seq = append(b.seq, ev.Keysym)
	}
	ks := keysym.NoSymbol
	if p.HasKeysym {
		ks = p.Keysym
	}
	var text string
	if p.HasString {
		text = p.String
	}
	return b.insert(b.seq, text, ks)
}

// slot addresses a link field of a node. Node references must not be held
// across appends to the node array, so parents are remembered this way.
type slot struct {
	node uint32
	kind int8
}

const (
	noLink int8 = iota
	loLink
	hiLink
	eqLink
)

func (b *builder) setLink(s slot, target uint32) {
	if s.kind == noLink {
		return
	}
	n := &b.t.nodes[s.node]
	switch s.kind {
	case loLink:
		n.lokid = target
	case hiLink:
		n.hikid = target
	case eqLink:
		n.payload = internalNode{eqkid: target}
	}
}

func (b *builder) root() uint32 {
	if len(b.t.nodes) > 1 {
		return 1
	}
	return 0
}

// required returns the number of nodes an insertion of seq would append.
func (b *builder) required(seq []keysym.Keysym) int {
	t := b.t
	curr, pos := b.root(), 0
	for curr != 0 {
		n := &t.nodes[curr]
		switch {
		case seq[pos] < n.keysym:
			curr = n.lokid
		case seq[pos] > n.keysym:
			curr = n.hikid
		case pos+1 < len(seq):
			if t.isLeaf(curr) {
				return 0
			}
			pos++
			curr = t.eqkid(curr)
		default:
			return 0
		}
	}
	return len(seq) - pos
}

// insert adds a sequence with output text and/or keysym. An empty text and
// keysym.NoSymbol mean "no output". The returned error is a conflict warning
// or nil.
func (b *builder) insert(seq []keysym.Keysym, text string, ks keysym.Keysym) error {
	t := b.t
	if len(seq) == 0 {
		return nil
	}
	if need := b.required(seq); len(t.nodes)+need > b.maxNodes {
		if b.full {
			return nil
		}
		b.full = true
		T().Errorf("compose table is full with %d nodes", len(t.nodes))
		return ErrTableFull
	}
	curr, parent, pos := b.root(), slot{}, 0
	for {
		last := pos+1 == len(seq)
		if curr == 0 {
			curr = uint32(len(t.nodes))
			nd := node{keysym: seq[pos]}
			if last {
				nd.payload = leafNode{}
			} else {
				nd.payload = internalNode{}
			}
			t.nodes = append(t.nodes, nd)
			b.setLink(parent, curr)
			if last {
				t.leaves++
				b.setLeaf(curr, text, ks)
				return nil
			}
		}
		n := &t.nodes[curr]
		switch {
		case seq[pos] < n.keysym:
			parent, curr = slot{curr, loLink}, n.lokid
		case seq[pos] > n.keysym:
			parent, curr = slot{curr, hiLink}, n.hikid
		case !last:
			if t.isLeaf(curr) {
				return ErrExistingIsPrefix
			}
			parent, curr = slot{curr, eqLink}, t.eqkid(curr)
			pos++
		default:
			return b.resolveLeaf(curr, text, ks)
		}
	}
}

// resolveLeaf handles a sequence ending at an existing node.
func (b *builder) resolveLeaf(curr uint32, text string, ks keysym.Keysym) error {
	t := b.t
	switch p := t.nodes[curr].payload.(type) {
	case internalNode:
		if p.eqkid != 0 {
			return ErrPrefixOfExisting
		}
		t.leaves++
		b.setLeaf(curr, text, ks)
		return nil
	case leafNode:
		if t.str(p.utf8) == text && p.keysym == ks {
			return ErrDuplicateSequence
		}
		b.setLeaf(curr, text, ks)
		return ErrOverriding
	}
	return nil
}

// setLeaf turns node n into a leaf with the given output.
func (b *builder) setLeaf(n uint32, text string, ks keysym.Keysym) {
	t := b.t
	leaf := leafNode{keysym: ks}
	if text != "" {
		leaf.utf8 = uint32(len(t.utf8))
		t.utf8 = append(t.utf8, text...)
		t.utf8 = append(t.utf8, 0)
	}
	t.nodes[n].payload = leaf
}
