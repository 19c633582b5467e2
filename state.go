package compose

import (
	"errors"
	"fmt"

	"github.com/npillmayer/compose/keysym"
)

// StateFlags modify the behaviour of a State. No flags are defined yet.
type StateFlags int

// StateNoFlags is the only valid value for StateFlags.
const StateNoFlags StateFlags = 0

// Status is the status of a compose state.
type Status int

// Statuses of a State.
const (
	StatusNothing   Status = iota // no sequence in progress
	StatusComposing               // a sequence is in progress
	StatusComposed                // a sequence has been completed
	StatusCancelled               // a sequence in progress has been aborted
)

func (s Status) String() string {
	switch s {
	case StatusNothing:
		return "nothing"
	case StatusComposing:
		return "composing"
	case StatusComposed:
		return "composed"
	case StatusCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// FeedResult tells if a keysym has been considered by Feed.
type FeedResult int

// Results of Feed.
const (
	FeedIgnored  FeedResult = iota // modifier keysyms do not affect the state
	FeedAccepted                   // the keysym has been processed
)

func (r FeedResult) String() string {
	if r == FeedAccepted {
		return "accepted"
	}
	return "ignored"
}

// State matches keysyms against the sequences of a table, one keysym at
// a time. States are not safe for concurrent use, but any number of states
// may share a table.
type State struct {
	table       *Table
	context     uint32 // current node, 0 if no sequence is in progress
	prevContext uint32 // node before the last accepted keysym
}

// NewState creates a compose state for table t.
func NewState(t *Table, flags StateFlags) (*State, error) {
	if t == nil {
		return nil, errors.New("compose: state requires a table")
	}
	if flags != StateNoFlags {
		return nil, fmt.Errorf("%w: %#x", ErrUnknownFlags, int(flags))
	}
	return &State{table: t}, nil
}

// Table returns the table of the state.
func (s *State) Table() *Table {
	return s.table
}

// Reset aborts any sequence in progress. Status will be StatusNothing.
func (s *State) Reset() {
	s.context, s.prevContext = 0, 0
}

// Feed updates the state with a keysym. Modifier keysyms are ignored.
// Any other keysym is accepted: it either continues the sequence in
// progress, starts a new one, or ends up not matching anything.
func (s *State) Feed(ks keysym.Keysym) FeedResult {
	if ks.IsModifier() {
		return FeedIgnored
	}
	t := s.table
	var context uint32
	if t.isLeaf(s.context) {
		context = 1 // start over at the root
		if len(t.nodes) == 1 {
			context = 0
		}
	} else {
		context = t.eqkid(s.context)
	}
	for context != 0 {
		n := &t.nodes[context]
		if ks < n.keysym {
			context = n.lokid
		} else if ks > n.keysym {
			context = n.hikid
		} else {
			break
		}
	}
	s.prevContext, s.context = s.context, context
	return FeedAccepted
}

// Status returns the status of the state.
func (s *State) Status() Status {
	t := s.table
	if s.context == 0 {
		if !t.isLeaf(s.prevContext) {
			return StatusCancelled
		}
		return StatusNothing
	}
	if t.isLeaf(s.context) {
		return StatusComposed
	}
	return StatusComposing
}

// Text returns the output of a completed sequence: its string, or else the
// text of its output keysym. It returns "" if the status is not
// StatusComposed.
func (s *State) Text() string {
	if s.context == 0 {
		return ""
	}
	leaf, ok := s.table.nodes[s.context].payload.(leafNode)
	if !ok {
		return ""
	}
	if leaf.utf8 != 0 {
		return s.table.str(leaf.utf8)
	}
	if leaf.keysym != keysym.NoSymbol {
		return leaf.keysym.UTF8()
	}
	return ""
}

// UTF8 copies the output of a completed sequence (see Text) to buf.
// Like C's snprintf it writes at most len(buf)-1 bytes followed by a NUL byte
// and returns the length of the full output, excluding the NUL. The output
// has been truncated if the result is >= len(buf).
func (s *State) UTF8(buf []byte) int {
	text := s.Text()
	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], text)
		buf[n] = 0
	}
	return len(text)
}

// OneKeysym returns the output keysym of a completed sequence, or
// keysym.NoSymbol.
func (s *State) OneKeysym() keysym.Keysym {
	if s.context == 0 {
		return keysym.NoSymbol
	}
	if leaf, ok := s.table.nodes[s.context].payload.(leafNode); ok {
		return leaf.keysym
	}
	return keysym.NoSymbol
}
