package parser

// maxTokenLen bounds the byte length of a single token.
const maxTokenLen = 1024

// scanner is a cursor over an in-memory buffer. Lines and columns are 1-based.
type scanner struct {
	s      []byte
	pos    int
	line   int
	column int
	buf    []byte // lexeme buffer, bounded by maxTokenLen
}

func newScanner(s []byte) *scanner {
	return &scanner{
		s:      s,
		line:   1,
		column: 1,
		buf:    make([]byte, 0, 64),
	}
}

func (sc *scanner) eof() bool {
	return sc.pos >= len(sc.s)
}

func (sc *scanner) eol() bool {
	return sc.peek() == '\n'
}

// peek returns the next byte without consuming it, or 0 at EOF.
func (sc *scanner) peek() byte {
	if sc.eof() {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) next() byte {
	if sc.eof() {
		return 0
	}
	c := sc.s[sc.pos]
	sc.pos++
	if c == '\n' {
		sc.line++
		sc.column = 1
	} else {
		sc.column++
	}
	return c
}

// chr consumes c if it is the next byte.
func (sc *scanner) chr(c byte) bool {
	if sc.eof() || sc.peek() != c {
		return false
	}
	sc.next()
	return true
}

// skipToEOL advances up to, but not including, the next newline.
func (sc *scanner) skipToEOL() {
	for !sc.eof() && !sc.eol() {
		sc.next()
	}
}

func (sc *scanner) resetBuf() {
	sc.buf = sc.buf[:0]
}

// bufAppend appends to the lexeme buffer. It returns false if the token
// would grow beyond maxTokenLen.
func (sc *scanner) bufAppend(c byte) bool {
	if len(sc.buf) >= maxTokenLen {
		return false
	}
	sc.buf = append(sc.buf, c)
	return true
}

func (sc *scanner) bufAppendString(s string) bool {
	if len(sc.buf)+len(s) > maxTokenLen {
		return false
	}
	sc.buf = append(sc.buf, s...)
	return true
}

// oct reads 1 to 3 octal digits.
func (sc *scanner) oct() (int, bool) {
	v, i := 0, 0
	for ; i < 3 && isOctal(sc.peek()); i++ {
		v = v*8 + int(sc.next()-'0')
	}
	return v, i > 0
}

// hex reads 1 or 2 hexadecimal digits.
func (sc *scanner) hex() (int, bool) {
	v, i := 0, 0
	for ; i < 2 && isHex(sc.peek()); i++ {
		c := sc.next()
		switch {
		case c >= '0' && c <= '9':
			v = v*16 + int(c-'0')
		case c >= 'a' && c <= 'f':
			v = v*16 + int(c-'a') + 10
		default:
			v = v*16 + int(c-'A') + 10
		}
	}
	return v, i > 0
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9') || c == '_'
}
