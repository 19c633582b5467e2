package compose

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/compose/keysym"
)

// Entry is a sequence of a table together with its output.
type Entry struct {
	sequence []keysym.Keysym
	keysym   keysym.Keysym
	utf8     string
}

// Sequence returns the keysyms of the sequence.
func (e *Entry) Sequence() []keysym.Keysym {
	return e.sequence
}

// Keysym returns the output keysym, or keysym.NoSymbol.
func (e *Entry) Keysym() keysym.Keysym {
	return e.keysym
}

// UTF8 returns the output string, which may be empty.
func (e *Entry) UTF8() string {
	return e.utf8
}

// Iterator enumerates the entries of a table in order of their sequences.
// It walks the tree without recursion.
type Iterator struct {
	table   *Table
	cursors *arraystack.Stack // of *cursor
	entry   Entry
}

type direction int8

const (
	left  direction = iota // visit lower siblings
	down                   // visit this node and its successors
	right                  // visit higher siblings
)

type cursor struct {
	node uint32
	dir  direction
}

// Iterator creates an iterator over the entries of t.
func (t *Table) Iterator() *Iterator {
	it := &Iterator{
		table:   t,
		cursors: arraystack.New(),
	}
	it.entry.sequence = make([]keysym.Keysym, 0, 16)
	if len(t.nodes) > 1 {
		it.cursors.Push(&cursor{node: 1, dir: left})
	}
	return it
}

// Next returns the next entry. The entry is only valid until the next call
// of Next. If the iteration is complete, Next returns false.
func (it *Iterator) Next() (*Entry, bool) {
	t := it.table
	for !it.cursors.Empty() {
		top, _ := it.cursors.Peek()
		c := top.(*cursor)
		n := &t.nodes[c.node]
		switch c.dir {
		case left:
			c.dir = down
			if n.lokid != 0 {
				it.cursors.Push(&cursor{node: n.lokid, dir: left})
			}
		case down:
			c.dir = right
			it.entry.sequence = append(it.entry.sequence, n.keysym)
			if leaf, ok := n.payload.(leafNode); ok {
				it.entry.keysym = leaf.keysym
				it.entry.utf8 = t.str(leaf.utf8)
				return &it.entry, true
			}
			if eq := t.eqkid(c.node); eq != 0 {
				it.cursors.Push(&cursor{node: eq, dir: left})
			}
		case right:
			it.entry.sequence = it.entry.sequence[:len(it.entry.sequence)-1]
			it.cursors.Pop()
			if n.hikid != 0 {
				it.cursors.Push(&cursor{node: n.hikid, dir: left})
			}
		}
	}
	return nil, false
}
