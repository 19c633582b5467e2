package parser

import (
	"fmt"
	"unicode/utf8"

	lrscanner "github.com/npillmayer/gorgo/lr/scanner"
)

// Token types of the Compose language.
const (
	TokEndOfFile   = lrscanner.EOF
	TokEndOfLine   = iota + 1 // '\n'
	TokInclude                // keyword "include"
	TokKeysym                 // <name>
	TokString                 // "..."
	TokIdent                  // identifier, including "None"
	TokColon                  // ':'
	TokBang                   // '!'
	TokTilde                  // '~'
	TokIncludePath            // path following "include", after %-expansion
	TokError                  // malformed input; the rest of the line is discarded
)

// TokenString returns a printable name for a token type.
func TokenString(tok int) string {
	switch tok {
	case TokEndOfFile:
		return "EOF"
	case TokEndOfLine:
		return "EOL"
	case TokInclude:
		return "include"
	case TokKeysym:
		return "keysym"
	case TokString:
		return "string"
	case TokIdent:
		return "identifier"
	case TokColon:
		return "':'"
	case TokBang:
		return "'!'"
	case TokTilde:
		return "'~'"
	case TokIncludePath:
		return "include path"
	case TokError:
		return "error"
	}
	return fmt.Sprintf("token(%d)", tok)
}

// expectIncludePath switches the lexer to include path mode.
var expectIncludePath = []int{TokIncludePath}

// Lexer splits Compose input into tokens. It implements the Tokenizer
// interface of package gorgo/lr/scanner.
//
// Token values are strings: the keysym name without angle brackets, the
// decoded contents of a string literal, an identifier or an expanded include
// path. Problems are reported to the error handler as values of type
// Diagnostic.
type Lexer struct {
	sc       *scanner
	file     string
	locale   string
	expander PathExpander
	errh     func(error)
	start    int // byte offset of current token
	line     int // line of current token
	column   int // column of current token
}

// NewLexer creates a lexer for a buffer. name is used for diagnostics.
// Of the options, only WithLocale and WithResolver are relevant for lexing.
func NewLexer(buf []byte, name string, opts ...Option) *Lexer {
	return newLexer(buf, name, newConfig(opts))
}

var _ lrscanner.Tokenizer = (*Lexer)(nil)

func newLexer(buf []byte, name string, cfg *config) *Lexer {
	return &Lexer{
		sc:       newScanner(buf),
		file:     name,
		locale:   cfg.locale,
		expander: cfg.expander,
		errh:     func(err error) { traceError(err) },
	}
}

func traceError(err error) {
	if d, ok := err.(Diagnostic); ok {
		d.trace()
		return
	}
	T().Errorf("%v", err)
}

// SetErrorHandler sets a function to receive lexical diagnostics.
// Diagnostics are of type Diagnostic.
func (lx *Lexer) SetErrorHandler(h func(error)) {
	if h == nil {
		h = traceError
	}
	lx.errh = h
}

// Position returns the line and column of the most recent token.
func (lx *Lexer) Position() (int, int) {
	return lx.line, lx.column
}

// NextToken returns the next token. If expected is exactly
// []int{TokIncludePath}, a quoted include path is read and %-expanded;
// otherwise expected is ignored.
func (lx *Lexer) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	var tok int
	var val string
	if len(expected) == 1 && expected[0] == TokIncludePath {
		tok, val = lx.lexIncludePath()
	} else {
		tok, val = lx.lex()
	}
	T().Debugf("%s:%d:%d: token %s %q", lx.file, lx.line, lx.column, TokenString(tok), val)
	return tok, val, uint64(lx.start), uint64(lx.sc.pos - lx.start)
}

func (lx *Lexer) mark() {
	lx.start = lx.sc.pos
	lx.line = lx.sc.line
	lx.column = lx.sc.column
}

func (lx *Lexer) diagnostic(sev Severity, format string, args ...interface{}) {
	lx.errh(Diagnostic{
		Severity: sev,
		File:     lx.file,
		Line:     lx.sc.line,
		Column:   lx.sc.column,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (lx *Lexer) warnf(format string, args ...interface{}) {
	lx.diagnostic(SeverityWarning, format, args...)
}

// errorf reports an error and discards the rest of the line.
func (lx *Lexer) errorf(format string, args ...interface{}) (int, string) {
	lx.diagnostic(SeverityError, format, args...)
	lx.sc.skipToEOL()
	return TokError, ""
}

func (lx *Lexer) skipSpace() {
	for !lx.sc.eof() {
		if c := lx.sc.peek(); isSpace(c) {
			lx.sc.next()
		} else if c == '#' {
			lx.sc.skipToEOL()
		} else {
			return
		}
	}
}

func (lx *Lexer) lex() (int, string) {
	sc := lx.sc
	lx.skipSpace()
	lx.mark()
	if sc.eof() {
		return TokEndOfFile, ""
	}
	if sc.chr('\n') {
		return TokEndOfLine, ""
	}
	switch c := sc.peek(); {
	case c == '<':
		return lx.lexKeysym()
	case c == '"':
		return lx.lexString()
	case c == ':':
		sc.next()
		return TokColon, ":"
	case c == '!':
		sc.next()
		return TokBang, "!"
	case c == '~':
		sc.next()
		return TokTilde, "~"
	case isAlpha(c) || c == '_':
		sc.resetBuf()
		for isIdentChar(sc.peek()) {
			if !sc.bufAppend(sc.next()) {
				return lx.errorf("identifier is too long")
			}
		}
		if id := string(sc.buf); id != "include" {
			return TokIdent, id
		}
		return TokInclude, "include"
	}
	return lx.errorf("unrecognized token")
}

func (lx *Lexer) lexKeysym() (int, string) {
	sc := lx.sc
	sc.next() // '<'
	sc.resetBuf()
	for sc.peek() != '>' {
		if sc.eof() || sc.eol() {
			return lx.errorf("unterminated keysym literal")
		}
		if !sc.bufAppend(sc.next()) {
			return lx.errorf("keysym literal is too long")
		}
	}
	sc.next() // '>'
	return TokKeysym, string(sc.buf)
}

func (lx *Lexer) lexString() (int, string) {
	sc := lx.sc
	sc.next() // '"'
	sc.resetBuf()
	for !sc.eof() && !sc.eol() && sc.peek() != '"' {
		if sc.chr(0) {
			lx.warnf("illegal NUL byte in string literal")
			continue
		}
		if !sc.chr('\\') {
			if !sc.bufAppend(sc.next()) {
				return lx.errorf("string literal is too long")
			}
			continue
		}
		var ok = true
		switch c := sc.peek(); {
		case c == '\\' || c == '"':
			ok = sc.bufAppend(sc.next())
		case c == 'x' || c == 'X':
			sc.next()
			if v, found := sc.hex(); !found {
				lx.warnf("illegal hexadecimal escape sequence in string literal")
			} else if v == 0 {
				lx.warnf("illegal hexadecimal escape sequence (NUL) in string literal")
			} else {
				ok = sc.bufAppend(byte(v))
			}
		case isOctal(c):
			v, _ := sc.oct()
			if v == 0 || v > 0xff {
				lx.warnf("illegal octal escape sequence (%o) in string literal", v)
			} else {
				ok = sc.bufAppend(byte(v))
			}
		case sc.eof() || sc.eol():
			lx.warnf("unterminated escape sequence in string literal")
		default:
			lx.warnf("unknown escape sequence (\\%c) in string literal", c)
			sc.next()
		}
		if !ok {
			return lx.errorf("string literal is too long")
		}
	}
	if !sc.chr('"') {
		return lx.errorf("unterminated string literal")
	}
	if !utf8.Valid(sc.buf) {
		return lx.errorf("string literal is not a valid UTF-8 string")
	}
	return TokString, string(sc.buf)
}

// lexIncludePath reads the quoted target of an include statement.
func (lx *Lexer) lexIncludePath() (int, string) {
	sc := lx.sc
	for isSpace(sc.peek()) {
		sc.next()
	}
	lx.mark()
	if sc.eof() {
		return TokEndOfFile, ""
	}
	if sc.chr('\n') {
		return TokEndOfLine, ""
	}
	if !sc.chr('"') {
		return lx.errorf("include statement must be followed by a path")
	}
	sc.resetBuf()
	for !sc.eof() && !sc.eol() && sc.peek() != '"' {
		if !sc.chr('%') {
			if !sc.bufAppend(sc.next()) {
				return lx.errorf("include path is too long")
			}
			continue
		}
		var ok bool
		switch c := sc.next(); c {
		case '%':
			ok = sc.bufAppend('%')
		case 'H':
			home, found := lx.expander.HomeDir()
			if !found {
				return lx.errorf("%%H was used in an include statement, but the home directory is unknown")
			}
			ok = sc.bufAppendString(home)
		case 'L':
			path, found := lx.expander.ComposeFile(lx.locale)
			if !found {
				return lx.errorf("failed to expand %%L to the Compose file of locale %s", lx.locale)
			}
			ok = sc.bufAppendString(path)
		case 'S':
			ok = sc.bufAppendString(lx.expander.LocaleDir())
		default:
			return lx.errorf("unknown %% format (%c) in include statement", c)
		}
		if !ok {
			return lx.errorf("include path is too long")
		}
	}
	if !sc.chr('"') {
		return lx.errorf("unterminated include statement")
	}
	return TokIncludePath, string(sc.buf)
}
