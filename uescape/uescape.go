// Package uescape converts text to and from \uXXXX escape
// sequences, the form used by JavaScript and JSON string
// literals.
package uescape

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// Escape returns s with every code point replaced by a \uXXXX
// escape of four upper-case hexadecimal digits. Code points
// above U+FFFF are written as a UTF-16 surrogate pair of two
// escapes, high surrogate first.
//
//    Escape("A😀") == `\u0041\uD83D\uDE00`
//
// Invalid UTF-8 in s is escaped as U+FFFD.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 6)
	for _, r := range s {
		if r <= 0xffff {
			writeUnit(&b, uint16(r))
			continue
		}
		hi, lo := utf16.EncodeRune(r)
		writeUnit(&b, uint16(hi))
		writeUnit(&b, uint16(lo))
	}
	return b.String()
}

func writeUnit(b *strings.Builder, u uint16) {
	b.WriteString(`\u`)
	b.WriteByte(upperhex[u>>12])
	b.WriteByte(upperhex[u>>8&0xf])
	b.WriteByte(upperhex[u>>4&0xf])
	b.WriteByte(upperhex[u&0xf])
}

// Unescape replaces the escape sequences in s with the text
// they name. It never fails.
//
// A \u followed by exactly four hexadecimal digits names one
// UTF-16 code unit. A \u{...} with one or more hexadecimal
// digits names a code point directly. Decoded code units are
// joined with the surrounding text as UTF-16, so an escaped
// surrogate pair becomes a single code point:
//
//    Unescape(`\uD83D\uDE00`) == "😀"
//
// A surrogate without its partner, like each byte of s that is
// not valid UTF-8, becomes U+FFFD. Any other
// backslash sequence, a malformed escape, or a \u{...} beyond
// U+10FFFF is copied through unchanged.
func Unescape(s string) string {
	if !strings.Contains(s, `\u`) && utf8.ValidString(s) {
		return s
	}

	units := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == 'u' {
			if u, ok := parseUnit(s[i+2:]); ok {
				units = append(units, u)
				i += 6
				continue
			}
			if r, n, ok := parseBraced(s[i+2:]); ok {
				units = utf16.AppendRune(units, r)
				i += 2 + n
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		units = utf16.AppendRune(units, r)
		i += size
	}
	return string(utf16.Decode(units))
}

// parseUnit parses the four hexadecimal digits at the start of
// s.
func parseUnit(s string) (uint16, bool) {
	if len(s) < 4 {
		return 0, false
	}
	var u uint16
	for i := 0; i < 4; i++ {
		v, ok := fromHex(s[i])
		if !ok {
			return 0, false
		}
		u = u<<4 | uint16(v)
	}
	return u, true
}

// parseBraced parses a "{hex}" code point at the start of s and
// returns the number of bytes consumed.
func parseBraced(s string) (rune, int, bool) {
	if len(s) < 3 || s[0] != '{' {
		return 0, 0, false
	}
	end := strings.IndexByte(s, '}')
	if end < 2 {
		return 0, 0, false
	}
	digits := s[1:end]
	for i := 0; i < len(digits); i++ {
		if _, ok := fromHex(digits[i]); !ok {
			return 0, 0, false
		}
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || v > utf8.MaxRune {
		return 0, 0, false
	}
	return rune(v), end + 1, true
}

func fromHex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
