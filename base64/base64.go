package base64

import (
	"github.com/ericlagergren/radix"
)

const (
	StdPadding = radix.StdPadding // standard padding '='
	NoPadding  = radix.NoPadding  // no padding
)

var (
	// ErrCorrupt is returned when the Base64-encoded input
	// contains a character outside of the alphabet.
	ErrCorrupt = radix.ErrInvalidCharacter

	// ErrLength is returned when the Base64-encoded input has
	// an impossible length, e.g. a single character in its
	// final block.
	ErrLength = radix.ErrInvalidLength
)

// StdEncoding is the standard Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
var StdEncoding = &Encoding{
	lookup:    stdLookup,
	revLookup: stdRevLookup,
	padChar:   StdPadding,
}

// RawStdEncoding is the unpadded standard Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
var RawStdEncoding = StdEncoding.WithPadding(NoPadding)

// URLEncoding is the base64url Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    -_
//
var URLEncoding = &Encoding{
	lookup:    urlLookup,
	revLookup: urlRevLookup,
	padChar:   StdPadding,
}

// RawURLEncoding is the unpadded base64url Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    -_
//
var RawURLEncoding = URLEncoding.WithPadding(NoPadding)

// Encoding is a particular Base64 encoding.
//
// See the package docs for a comparison with encoding/base64.
type Encoding struct {
	lookup    func(c uint) byte
	revLookup func(c uint) byte
	padChar   rune
	strict    bool
}

// Strict returns an identical Encoding that operates in "strict"
// mode where all padding bits MUST be zero (see section 3.5 of
// RFC 4648 and golang.org/issues/15656).
func (e Encoding) Strict() *Encoding {
	e.strict = true
	return &e
}

// WithPadding returns an identical Encoding that uses the
// specified padding character.
//
// The padding character must be less than 0xff and cannot be
// '\r', '\n', or a character in the encoding's alphabet.
func (e Encoding) WithPadding(r rune) *Encoding {
	switch {
	case r == NoPadding:
	case r == '\r', r == '\n', r < 0, r >= 0xff:
		panic("base64: invalid padding")
	case urlRevLookup(uint(r)) != 0xff,
		stdRevLookup(uint(r)) != 0xff:
		panic("base64: padding contained in alphabet")
	}
	e.padChar = r
	return &e
}

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
func (e *Encoding) EncodedLen(n int) int {
	if e.padChar == NoPadding {
		return (n*8 + 5) / 6
	}
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of n bytes of
// Base64-encoded data.
func (e *Encoding) DecodedLen(n int) int {
	if e.padChar == NoPadding {
		return n * 6 / 8
	}
	return n / 4 * 3
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to
// dst.
//
// Encode runs in constant time for the length of src.
func (e *Encoding) Encode(dst, src []byte) {
	encode(dst, src, e.lookup, e.padChar)
}

// EncodeToString encodes src.
//
// EncodeToString runs in constant time for the length of src.
func (e *Encoding) EncodeToString(src []byte) string {
	dst := make([]byte, e.EncodedLen(len(src)))
	e.Encode(dst, src)
	return string(dst)
}

// Decode decodes src, writing at most DecodedLen(len(src)) bytes
// to dst, and returns the number of bytes written.
//
// If src has an impossible length Decode returns ErrLength. If
// src contains invalid Base64, Decode returns ErrCorrupt. In
// either case it returns zero and the contents of dst are
// unspecified.
//
// Decode runs in constant time for the length of src.
//
// See the package docs for a comparison with encoding/base64.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	return decode(dst, src, e.revLookup, e.padChar, e.strict)
}

// DecodeString decodes src.
//
// See Decode for the error semantics. DecodeString never
// returns partial output.
func (e *Encoding) DecodeString(src string) ([]byte, error) {
	dst := make([]byte, e.DecodedLen(len(src)))
	n, err := e.Decode(dst, []byte(src))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

func encode(dst, src []byte, lookup func(uint) byte, padChar rune) {
	// Convert 3 -> 4.
	for len(src) >= 3 {
		v := uint(src[0])<<16 | uint(src[1])<<8 | uint(src[2])
		dst[0] = lookup(v >> 18 & 0x3f)
		dst[1] = lookup(v >> 12 & 0x3f)
		dst[2] = lookup(v >> 6 & 0x3f)
		dst[3] = lookup(v & 0x3f)
		src = src[3:]
		dst = dst[4:]
	}

	switch len(src) {
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		dst[2] = lookup(v >> 6 & 0x3f)
		dst[1] = lookup(v >> 12 & 0x3f)
		dst[0] = lookup(v >> 18 & 0x3f)
		if padChar != NoPadding {
			dst[3] = byte(padChar)
		}
	case 1:
		v := uint(src[0]) << 16
		dst[1] = lookup(v >> 12 & 0x3f)
		dst[0] = lookup(v >> 18 & 0x3f)
		if padChar != NoPadding {
			dst[3] = byte(padChar)
			dst[2] = byte(padChar)
		}
	}
}

func decode(dst, src []byte, revLookup func(uint) byte, padChar rune, strict bool) (n int, err error) {
	if len(src) == 0 {
		return 0, nil
	}
	switch len(src) % 4 {
	case 0:
		// OK
	case 2, 3:
		if padChar != NoPadding {
			// Padded base64 should be a multiple of 4.
			return 0, ErrLength
		}
	default:
		// Even unpadded base64 only has a 2-3 character partial
		// block.
		return 0, ErrLength
	}

	if padChar != NoPadding {
		t1 := radix.ConstantTimeByteEq(src[len(src)-1], byte(padChar))
		t2 := t1 & radix.ConstantTimeByteEq(src[len(src)-2], byte(padChar))
		src = src[:len(src)-t1-t2]
	}

	var failed byte
	for len(src) >= 4 {
		c0 := revLookup(uint(src[0]))
		c1 := revLookup(uint(src[1]))
		c2 := revLookup(uint(src[2]))
		c3 := revLookup(uint(src[3]))

		dst[n+0] = byte(c0<<2 | c1>>4)
		dst[n+1] = byte(c1<<4 | c2>>2)
		dst[n+2] = byte(c2<<6 | c3)

		failed |= c0 | c1 | c2 | c3

		src = src[4:]
		n += 3
	}

	switch len(src) {
	case 3:
		c0 := revLookup(uint(src[0]))
		c1 := revLookup(uint(src[1]))
		c2 := revLookup(uint(src[2]))

		dst[n+0] = byte(c0<<2 | c1>>4)
		dst[n+1] = byte(c1<<4 | c2>>2)

		failed |= c0 | c1 | c2
		if strict {
			// Fail if any bits in [2:0] are non-zero.
			failed |= byte((0 - uint(c2&0x3)) >> 8)
		}
		n += 2
	case 2:
		c0 := revLookup(uint(src[0]))
		c1 := revLookup(uint(src[1]))

		dst[n+0] = byte(c0<<2 | c1>>4)

		failed |= c0 | c1
		if strict {
			// Fail if any bits in [4:0] are non-zero.
			failed |= byte((0 - uint(c1&0xf)) >> 8)
		}
		n++
	case 0:
		// OK
	default:
		// A lone character left over after stripping padding,
		// e.g. "A===".
		failed |= 0xff
	}

	if failed&0xff == 0xff {
		return 0, ErrCorrupt
	}
	return n, nil
}

// stdLookup converts the 6-bit value c to its corresponding
// base64 character.
//
// c must be in [0, 63].
//
// See http://0x80.pl/notesen/2016-01-12-sse-base64-encoding.html
func stdLookup(c uint) byte {
	s := uint('A')
	s += (26 - c - 1) >> 8 & 6
	s -= (52 - c - 1) >> 8 & 75
	s -= (62 - c - 1) >> 8 & 15
	s += (63 - c - 1) >> 8 & 3
	return byte(c + s)
}

// stdRevLookup converts the base64 character c to its 6-bit
// binary value.
//
// If the character is invalid stdRevLookup returns 0xff.
func stdRevLookup(c uint) (r byte) {
	// NB. This function is written like this so that the
	// compiler will inline it.

	// switch {
	// case >= 'A' && c <= 'Z':
	//     s = -65
	// case c >= 'a' && c <= 'z'
	//     s = -71
	// case c >= '0' && c <= '9'
	//     s = 4
	// case c == '+':
	//     s = 19
	// case c == '/':
	//     s = 16
	// }
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((42 - c) & (c - 44)) >> 8) & 19) ^
		((((46 - c) & (c - 48)) >> 8) & 16)
	// If s == 0 then the input is corrupt.
	//
	// Since s is one of {0, 191, 185, 4, 19, 16}, shift off bits
	// [8:0] (which are allowed to be non-zero) and check [16:8].
	return byte((s+c)&0x3f | ((((0 - s) >> 8) & 0xff) ^ 0xff))
}

// urlLookup converts the 6-bit value c to its corresponding
// base64url character.
//
// c must be in [0, 63].
func urlLookup(c uint) byte {
	// Start with an initial guess that c is in [0, 25], making
	// the shift 'A' (65).
	s := uint('A')

	// c in [26, 51]: 'a' - (26+'A') = 6.
	s += (26 - c - 1) >> 8 & 6

	// c in [52, 61]: '0' - (52+71) = -75.
	s -= (52 - c - 1) >> 8 & 75

	// c == 62: '-' - (62-4) = -13.
	s -= (62 - c - 1) >> 8 & 13

	// c == 63: '_' - (63-17) = 49.
	s += (63 - c - 1) >> 8 & 49

	return byte(c + s)
}

// urlRevLookup converts the base64url character c to its 6-bit
// binary value.
//
// If the character is invalid urlRevLookup returns 0xff.
func urlRevLookup(c uint) (r byte) {
	// Same as stdRevLookup, except
	//
	//    case c == '-':
	//        s = 17
	//    case c == '_':
	//        s = 32
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((44 - c) & (c - 46)) >> 8) & 17) ^
		((((94 - c) & (c - 96)) >> 8) & 32)
	return byte((s+c)&0x3f | ((((0 - s) >> 8) & 0xff) ^ 0xff))
}

// anyRevLookup converts a character from either the standard or
// the base64url alphabet to its 6-bit binary value.
//
// If the character is invalid in both alphabets anyRevLookup
// returns 0xff.
func anyRevLookup(c uint) byte {
	// The alphabets agree on every character they share and
	// invalid characters map to 0xff, so AND selects whichever
	// lookup succeeded.
	return stdRevLookup(c) & urlRevLookup(c)
}
