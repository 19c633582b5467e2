package parser

import (
	"errors"
	"fmt"

	"github.com/npillmayer/compose/keysym"
	lrscanner "github.com/npillmayer/gorgo/lr/scanner"
)

// Errors which abort parsing.
var (
	ErrIncludeDepth  = errors.New("maximum include depth exceeded")
	ErrTooManyErrors = errors.New("too many errors")
)

// Sink receives parsed productions. A production is valid only for the
// duration of the call. A non-nil error is reported as a warning.
type Sink interface {
	AddProduction(*Production) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(*Production) error

// AddProduction calls f(p).
func (f SinkFunc) AddProduction(p *Production) error {
	return f(p)
}

// Parse parses a Compose file from buf and hands every valid production to
// sink. Included files are parsed recursively into the same sink. name is
// used for diagnostics.
//
// Parse returns an error if the input cannot be parsed as a whole: too many
// errors, an include exceeding the maximum include depth, or an included file
// which cannot be read or parsed.
func Parse(buf []byte, name string, sink Sink, opts ...Option) error {
	r := &run{cfg: newConfig(opts), sink: sink}
	return r.parse(buf, name, 0)
}

// run holds the state shared between a file and the files it includes.
type run struct {
	cfg      *config
	sink     Sink
	errCount int
}

type parseState int8

const (
	stInitial parseState = iota
	stLHS
	stLHSModList
	stLHSKeysym
	stRHS
	stInclude
	stIncludeEOL
	stUnexpected
	stError
	stSkip
)

// parser parses a single file.
type parser struct {
	*run
	lx      *Lexer
	depth   int
	prod    *Production
	tok     int
	val     string
	reuse   bool    // dispatch the current token again in the next state
	mods    ModMask // modifiers of the event being read
	modmask ModMask
	bang    bool // event has a '!' modifier list
	modSeen bool // at least one modifier name has been read for the event
}

func (r *run) parse(buf []byte, name string, depth int) error {
	p := &parser{run: r, depth: depth, prod: borrowProduction()}
	defer p.prod.releaseIntoPool()
	p.lx = newLexer(buf, name, r.cfg)
	p.lx.SetErrorHandler(p.lexError)
	T().Debugf("parsing %s, include depth %d", name, depth)
	var includePath string
	state := stInitial
	for {
		switch state {
		case stInitial:
			p.prod.reset()
			p.clearMods()
			p.advance()
			for p.tok == TokEndOfLine {
				p.advance()
			}
			switch p.tok {
			case TokEndOfFile:
				return nil
			case TokInclude:
				state = stInclude
			default:
				p.reuse = true
				state = stLHS
			}
		case stInclude:
			p.tok, p.val = p.nextToken(expectIncludePath)
			if p.tok != TokIncludePath {
				state = stUnexpected
				break
			}
			includePath = p.val
			state = stIncludeEOL
		case stIncludeEOL:
			p.advance()
			if p.tok != TokEndOfLine && p.tok != TokEndOfFile {
				state = stUnexpected
				break
			}
			if err := p.include(includePath); err != nil {
				p.errorf("failed to parse file")
				return err
			}
			state = stInitial
		case stLHS:
			p.advance()
			switch p.tok {
			case TokColon:
				if len(p.prod.LHS) == 0 {
					p.warnf("expected at least one keysym on left-hand side; skipping line")
					state = stSkip
					break
				}
				state = stRHS
			case TokKeysym:
				state = p.addEvent()
			case TokIdent:
				if p.val == "None" {
					p.mods, p.modmask = 0, ModAll
					state = stLHSKeysym
					break
				}
				p.reuse = true
				state = stLHSModList
			case TokTilde:
				p.reuse = true
				state = stLHSModList
			case TokBang:
				p.mods, p.modmask = 0, 0
				p.bang = true
				state = stLHSModList
			default:
				state = stUnexpected
			}
		case stLHSModList:
			p.advance()
			if p.tok != TokTilde && p.tok != TokIdent {
				if p.bang && !p.modSeen { // bare '!'
					p.modmask = ModAll
				}
				p.reuse = true
				state = stLHSKeysym
				break
			}
			tilde := p.tok == TokTilde
			if tilde {
				p.advance()
			}
			if p.tok != TokIdent {
				state = stUnexpected
				break
			}
			m, ok := ModifierFromName(p.val)
			if !ok {
				p.warnf("unrecognized modifier %q; skipping line", p.val)
				state = stSkip
				break
			}
			p.modSeen = true
			p.modmask |= m
			if tilde {
				p.mods &^= m
			} else {
				p.mods |= m
			}
		case stLHSKeysym:
			p.advance()
			if p.tok != TokKeysym {
				state = stUnexpected
				break
			}
			state = p.addEvent()
		case stRHS:
			state = p.rhs()
		case stUnexpected:
			if p.tok != TokError {
				p.errorf("unexpected token %s", TokenString(p.tok))
			}
			state = stError
		case stError:
			p.errCount++
			if p.errCount > MaxErrors {
				p.errorf("too many errors")
				p.errorf("failed to parse file")
				return fmt.Errorf("%s: %w", p.lx.file, ErrTooManyErrors)
			}
			state = stSkip
		case stSkip:
			for p.tok != TokEndOfLine && p.tok != TokEndOfFile {
				p.advance()
			}
			state = stInitial
		}
	}
}

// rhs reads one token of a right-hand side.
func (p *parser) rhs() parseState {
	p.advance()
	switch p.tok {
	case TokString:
		if p.prod.HasString {
			p.warnf("right-hand side can have at most one string; skipping line")
			return stSkip
		}
		if p.val == "" {
			p.warnf("right-hand side string must not be empty; skipping line")
			return stSkip
		}
		if len(p.val) > MaxStringLen {
			p.warnf("right-hand side string is too long; skipping line")
			return stSkip
		}
		p.prod.String, p.prod.HasString = p.val, true
		return stRHS
	case TokIdent:
		ks := keysym.FromName(p.val)
		if ks == keysym.NoSymbol {
			p.errorf("unrecognized keysym %q on right-hand side", p.val)
			return stError
		}
		if p.prod.HasKeysym {
			p.warnf("right-hand side can have at most one keysym; skipping line")
			return stSkip
		}
		p.prod.Keysym, p.prod.HasKeysym = ks, true
		return stRHS
	case TokEndOfLine, TokEndOfFile:
		if !p.prod.HasString && !p.prod.HasKeysym {
			p.warnf("right-hand side must have at least one of string or keysym; skipping line")
			return stSkip
		}
		p.emit()
		return stInitial
	}
	return stUnexpected
}

// addEvent appends the current keysym token, together with the modifiers
// read so far, to the left-hand side.
func (p *parser) addEvent() parseState {
	ks := keysym.FromName(p.val)
	if ks == keysym.NoSymbol {
		p.errorf("unrecognized keysym %q on left-hand side", p.val)
		return stError
	}
	if len(p.prod.LHS) >= MaxLHSLen {
		p.warnf("too many keysyms (%d) on left-hand side; skipping line", MaxLHSLen+1)
		return stSkip
	}
	p.prod.LHS = append(p.prod.LHS, Event{Keysym: ks, Mods: p.mods, ModMask: p.modmask})
	p.clearMods()
	return stLHS
}

func (p *parser) clearMods() {
	p.mods, p.modmask = 0, 0
	p.bang, p.modSeen = false, false
}

func (p *parser) emit() {
	if p.sink == nil {
		return
	}
	if err := p.sink.AddProduction(p.prod); err != nil {
		p.warnf("%v", err)
	}
}

func (p *parser) include(path string) error {
	if p.depth >= p.cfg.maxIncludeDepth {
		p.errorf("maximum include depth (%d) exceeded; maybe there is an include loop?",
			p.cfg.maxIncludeDepth)
		return fmt.Errorf("%s: include %q: %w", p.lx.file, path, ErrIncludeDepth)
	}
	buf, err := p.cfg.readFile(path)
	if err != nil {
		p.errorf("failed to open included Compose file %q: %v", path, err)
		return fmt.Errorf("%s: include %q: %w", p.lx.file, path, err)
	}
	return p.run.parse(buf, path, p.depth+1)
}

// --- Tokens ----------------------------------------------------------------

// advance moves to the next token, unless the current one is to be reused.
func (p *parser) advance() {
	if p.reuse {
		p.reuse = false
		return
	}
	p.tok, p.val = p.nextToken(lrscanner.AnyToken)
}

func (p *parser) nextToken(expected []int) (int, string) {
	tok, val, _, _ := p.lx.NextToken(expected)
	s, _ := val.(string)
	return tok, s
}

// --- Diagnostics -----------------------------------------------------------

func (p *parser) report(d Diagnostic) {
	d.trace()
	if p.cfg.report != nil {
		p.cfg.report(d)
	}
}

func (p *parser) lexError(err error) {
	d, ok := err.(Diagnostic)
	if !ok {
		line, col := p.lx.Position()
		d = Diagnostic{Severity: SeverityError, File: p.lx.file, Line: line, Column: col, Message: err.Error()}
	}
	p.report(d)
}

func (p *parser) diagnostic(sev Severity, format string, args ...interface{}) {
	line, col := p.lx.Position()
	p.report(Diagnostic{
		Severity: sev,
		File:     p.lx.file,
		Line:     line,
		Column:   col,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (p *parser) warnf(format string, args ...interface{}) {
	p.diagnostic(SeverityWarning, format, args...)
}

func (p *parser) errorf(format string, args ...interface{}) {
	p.diagnostic(SeverityError, format, args...)
}
