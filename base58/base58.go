// Package base58 implements base58 encoding, most commonly used
// for Bitcoin addresses and keys.
//
// Unlike the power-of-two encodings in this module, base58
// treats its whole input as one big-endian number and converts
// it to radix 58. Each leading zero byte is encoded as a leading
// zero-digit symbol ('1' in the Bitcoin alphabet) so that the
// conversion is bijective.
//
// Encoding and decoding are quadratic in the length of the
// input. They are meant for key- and hash-sized values, not for
// bulk data.
package base58

import (
	"fmt"

	"github.com/ericlagergren/radix"
)

// ErrCorrupt is returned when the input contains a character
// outside of the alphabet.
var ErrCorrupt = radix.ErrInvalidCharacter

const (
	encodeBitcoin = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	encodeFlickr  = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"
)

// BitcoinEncoding uses the Bitcoin alphabet, which leaves out
// the easily confused '0', 'O', 'I', and 'l'.
var BitcoinEncoding = NewEncoding(encodeBitcoin)

// FlickrEncoding uses the Flickr short URL alphabet.
var FlickrEncoding = NewEncoding(encodeFlickr)

// Encoding is a base58 encoding defined by a 58-character
// alphabet.
type Encoding struct {
	alpha *radix.Alphabet
}

// NewEncoding returns a new Encoding defined by the given
// alphabet, which must contain 58 distinct ASCII characters.
func NewEncoding(alphabet string) *Encoding {
	if len(alphabet) != 58 {
		panic(fmt.Sprintf("base58: alphabet must be 58 bytes long, got %d", len(alphabet)))
	}
	return &Encoding{alpha: radix.NewAlphabet(alphabet)}
}

// EncodeToString returns the base58 encoding of src.
func (e *Encoding) EncodeToString(src []byte) string {
	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}

	// digits is little endian and never grows, so wiping it
	// clears every copy.
	digits := make([]byte, maxDigits(len(src)-zeros))
	n := 0
	for _, b := range src[zeros:] {
		carry := uint(b)
		for j := 0; j < n; j++ {
			x := uint(digits[j])<<8 + carry
			digits[j] = byte(x % 58)
			carry = x / 58
		}
		for carry > 0 {
			digits[n] = byte(carry % 58)
			n++
			carry /= 58
		}
	}

	dst := make([]byte, zeros+n)
	for i := 0; i < zeros; i++ {
		dst[i] = e.alpha.Symbol(0)
	}
	for i, d := range digits[:n] {
		dst[len(dst)-1-i] = e.alpha.Symbol(d)
	}
	radix.Wipe(digits)
	return string(dst)
}

// maxDigits returns the most base58 digits n bytes can need:
// ceil(n * log(256)/log(58)), with log(256)/log(58) ~= 1.3657.
func maxDigits(n int) int {
	return n*138/100 + 1
}

// maxBytes returns the most bytes n base58 digits can need:
// ceil(n * log(58)/log(256)), with log(58)/log(256) ~= 0.7322.
func maxBytes(n int) int {
	return n*74/100 + 1
}

// DecodeString returns the bytes represented by the base58
// string s.
//
// If s contains a character outside of the alphabet
// DecodeString returns ErrCorrupt and no bytes. Whitespace is
// not ignored.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	zero := e.alpha.Symbol(0)
	zeros := 0
	for zeros < len(s) && s[zeros] == zero {
		zeros++
	}

	// b256 is little endian and, like digits in
	// EncodeToString, never grows.
	b256 := make([]byte, maxBytes(len(s)-zeros))
	n := 0
	for i := zeros; i < len(s); i++ {
		v := e.alpha.Value(s[i])
		if v == 0xff {
			radix.Wipe(b256)
			return nil, fmt.Errorf("%w: %q at offset %d", ErrCorrupt, s[i], i)
		}
		carry := uint(v)
		for j := 0; j < n; j++ {
			x := uint(b256[j])*58 + carry
			b256[j] = byte(x)
			carry = x >> 8
		}
		for carry > 0 {
			b256[n] = byte(carry)
			n++
			carry >>= 8
		}
	}

	dst := make([]byte, zeros+n)
	for i, b := range b256[:n] {
		dst[len(dst)-1-i] = b
	}
	radix.Wipe(b256)
	return dst, nil
}

// EncodeToString returns the base58 encoding of src using the
// Bitcoin alphabet.
func EncodeToString(src []byte) string {
	return BitcoinEncoding.EncodeToString(src)
}

// DecodeString decodes s using the Bitcoin alphabet.
func DecodeString(s string) ([]byte, error) {
	return BitcoinEncoding.DecodeString(s)
}
