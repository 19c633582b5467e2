package parser

import (
	"context"
	"fmt"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/compose/keysym"
)

// Limits of the Compose language.
const (
	MaxLHSLen       = 10  // maximum number of keysyms on a left-hand side
	MaxStringLen    = 256 // maximum byte length of a right-hand side string
	MaxIncludeDepth = 5   // maximum nesting of include statements
	MaxErrors       = 10  // errors tolerated before parsing is aborted
)

// ModMask is a set of modifiers.
type ModMask uint8

// Modifiers which may constrain an event of a left-hand side.
const (
	ModShift ModMask = 1 << iota
	ModLock
	ModCtrl
	ModAlt
	ModAll = ModShift | ModLock | ModCtrl | ModAlt
)

var modifierNames = map[string]ModMask{
	"Shift": ModShift,
	"Lock":  ModLock,
	"Caps":  ModLock,
	"Ctrl":  ModCtrl,
	"Alt":   ModAlt,
	"Meta":  ModAlt,
}

// ModifierFromName returns the modifier for a name as used in Compose files.
func ModifierFromName(name string) (ModMask, bool) {
	m, ok := modifierNames[name]
	return m, ok
}

func (m ModMask) String() string {
	var names []string
	for _, n := range [...]string{"Shift", "Lock", "Ctrl", "Alt"} {
		if m&modifierNames[n] != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, "|")
}

// Event is a single position of a left-hand side: a keysym and the modifier
// state it requires. Modifiers in ModMask are required to be set if they are
// in Mods, and to be clear otherwise.
type Event struct {
	Keysym  keysym.Keysym
	Mods    ModMask
	ModMask ModMask
}

// Production is a parsed line of a Compose file.
type Production struct {
	LHS       []Event
	String    string // output text, if HasString
	HasString bool
	Keysym    keysym.Keysym // output keysym, if HasKeysym
	HasKeysym bool
}

// Keysyms returns the keysyms of the left-hand side.
func (p *Production) Keysyms() []keysym.Keysym {
	seq := make([]keysym.Keysym, len(p.LHS))
	for i, ev := range p.LHS {
		seq[i] = ev.Keysym
	}
	return seq
}

// Source renders a production in Compose syntax.
func (p *Production) Source() string {
	var b strings.Builder
	for _, ev := range p.LHS {
		if ev.ModMask != 0 {
			b.WriteString(modifierString(ev))
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "<%s> ", ev.Keysym.Name())
	}
	b.WriteByte(':')
	if p.HasString {
		fmt.Fprintf(&b, " %q", p.String)
	}
	if p.HasKeysym {
		fmt.Fprintf(&b, " %s", p.Keysym.Name())
	}
	return b.String()
}

func modifierString(ev Event) string {
	if ev.ModMask == ModAll && ev.Mods == 0 {
		return "None"
	}
	var b strings.Builder
	b.WriteByte('!')
	for _, n := range [...]string{"Shift", "Lock", "Ctrl", "Alt"} {
		m := modifierNames[n]
		if ev.ModMask&m == 0 {
			continue
		}
		b.WriteByte(' ')
		if ev.Mods&m == 0 {
			b.WriteByte('~')
		}
		b.WriteString(n)
	}
	return b.String()
}

// reset clears a production for the next line.
func (p *Production) reset() {
	p.LHS = p.LHS[:0]
	p.String = ""
	p.HasString = false
	p.Keysym = keysym.NoSymbol
	p.HasKeysym = false
}

// Productions are scratch objects, one per file being parsed.
// To avoid repeated allocation we will pool them.
type productionPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalProductionPool *productionPool

func init() {
	globalProductionPool = &productionPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			p := &Production{LHS: make([]Event, 0, MaxLHSLen)}
			return p, nil
		})
	globalProductionPool.ctx = context.Background()
	poolConfig := pool.NewDefaultPoolConfig()
	poolConfig.MaxTotal = -1 // infinity
	poolConfig.BlockWhenExhausted = false
	globalProductionPool.opool = pool.NewObjectPool(globalProductionPool.ctx, factory, poolConfig)
}

func borrowProduction() *Production {
	o, err := globalProductionPool.opool.BorrowObject(globalProductionPool.ctx)
	if err != nil {
		T().Errorf("cannot borrow production from pool: %v", err)
		return &Production{LHS: make([]Event, 0, MaxLHSLen)}
	}
	p := o.(*Production)
	p.reset()
	return p
}

func (p *Production) releaseIntoPool() {
	p.reset()
	_ = globalProductionPool.opool.ReturnObject(globalProductionPool.ctx, p)
}
