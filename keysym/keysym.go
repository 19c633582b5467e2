/*
Package keysym knows about X11-style key symbols (keysyms).

A keysym identifies the meaning of a key, independent of the physical layout.
Package keysym maps keysym names to values and back, tells modifier keysyms
apart from others, and converts keysyms to the Unicode text they produce.

The name table covers ASCII and Latin-1, function and keypad keys, modifiers,
dead keys and a selection of frequently composed legacy keysyms. Every
Unicode character is reachable through names of the form "U20AC" or
"U+20AC", and numeric names of the form "0x1000e9" are accepted as well.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package keysym

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Keysym is a key symbol.
type Keysym uint32

// NoSymbol is the "none" keysym.
const NoSymbol Keysym = 0

// Keysyms with a dedicated role in compose processing.
const (
	MultiKey       Keysym = 0xff20
	ShiftL         Keysym = 0xffe1
	HyperR         Keysym = 0xffee
	ISOLock        Keysym = 0xfe01
	ISOLastGrpLock Keysym = 0xfe0f
	ModeSwitch     Keysym = 0xff7e
	NumLock        Keysym = 0xff7f
	Delete         Keysym = 0xffff
)

// Unicode keysyms are a code-point plus unicodeOffset.
const (
	unicodeOffset Keysym = 0x01000000
	unicodeMin    Keysym = unicodeOffset + 0x100
	unicodeMax    Keysym = unicodeOffset + 0x10ffff
)

// FromName returns the keysym for a name. Names are case-sensitive.
// Unknown names result in NoSymbol.
func FromName(name string) Keysym {
	if name == "" {
		return NoSymbol
	}
	if ks, ok := byName[name]; ok {
		return ks
	}
	if name[0] == 'U' && len(name) > 1 {
		hex := strings.TrimPrefix(name[1:], "+")
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil && hex != "" {
			return FromRune(rune(v))
		}
		return NoSymbol
	}
	if strings.HasPrefix(name, "0x") && len(name) > 2 {
		if v, err := strconv.ParseUint(name[2:], 16, 32); err == nil {
			return Keysym(v)
		}
	}
	return NoSymbol
}

// FromRune returns the keysym which produces code-point r. Printable Latin-1
// characters have legacy keysyms identical to their code-point; all other
// characters map to the Unicode keysym range.
func FromRune(r rune) Keysym {
	switch {
	case r < 0x20 || (r > 0x7e && r < 0xa0):
		return NoSymbol
	case r < 0x100:
		return Keysym(r)
	case r > utf8.MaxRune:
		return NoSymbol
	}
	return Keysym(r) + unicodeOffset
}

// Name returns the canonical name of a keysym. Keysyms without a registered
// name are returned as "U<hex>" for Unicode keysyms or as "0x<hex>".
func (ks Keysym) Name() string {
	if name, ok := byValue[ks]; ok {
		return name
	}
	if ks >= unicodeMin && ks <= unicodeMax {
		return fmt.Sprintf("U%04X", uint32(ks-unicodeOffset))
	}
	return fmt.Sprintf("0x%08x", uint32(ks))
}

func (ks Keysym) String() string {
	return ks.Name()
}

// IsModifier is true for keysyms of modifier keys, i.e. Shift, Control,
// Caps Lock, Alt, Meta, Super, Hyper, the ISO level and group keys,
// Mode_switch and Num_Lock.
func (ks Keysym) IsModifier() bool {
	return (ks >= ShiftL && ks <= HyperR) ||
		(ks >= ISOLock && ks <= ISOLastGrpLock) ||
		ks == ModeSwitch || ks == NumLock
}

// Rune returns the Unicode code-point a keysym produces, if any.
func (ks Keysym) Rune() (rune, bool) {
	switch {
	case ks == NoSymbol:
		return 0, false
	case (ks >= 0x20 && ks <= 0x7e) || (ks >= 0xa0 && ks <= 0xff):
		return rune(ks), true
	case ks >= unicodeMin && ks <= unicodeMax:
		r := rune(ks - unicodeOffset)
		if !utf8.ValidRune(r) { // surrogates
			return 0, false
		}
		return r, true
	case (ks >= 0xff08 && ks <= 0xff0b) || ks == 0xff0d || ks == 0xff1b:
		return rune(ks & 0x7f), true // BackSpace, Tab, Linefeed, Clear, Return, Escape
	case ks == Delete:
		return 0x7f, true
	case ks == 0xff80: // KP_Space
		return ' ', true
	case ks == 0xff89: // KP_Tab
		return '\t', true
	case ks == 0xff8d: // KP_Enter
		return '\r', true
	case ks == 0xffbd: // KP_Equal
		return '=', true
	case ks >= 0xffaa && ks <= 0xffb9: // KP_Multiply … KP_9
		return rune(ks & 0x7f), true
	}
	if r, ok := legacyRunes[ks]; ok {
		return r, true
	}
	return 0, false
}

// UTF8 returns the text a keysym produces, or "" if it does not produce any.
func (ks Keysym) UTF8() string {
	if r, ok := ks.Rune(); ok {
		return string(r)
	}
	return ""
}
