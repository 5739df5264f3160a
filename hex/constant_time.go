// https://github.com/jedisct1/libsodium/blob/d4ee08ab8a1c674203796161af6d013283b33d69/src/libsodium/sodium/codecs.c
// https://github.com/jedisct1/libsodium/blob/561e556dad078af581f338fe3de9ee6362d28b16/LICENSE
//
//  Copyright (c) 2013-2022 Frank Denis <j at pureftpd dot org>
//  Portions Copyright (c) 2022 Eric Lagergren
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted, provided that the above
// copyright notice and this permission notice appear in all copies.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
// WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
// ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
// WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
// ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
// OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.

package hex

import "github.com/ericlagergren/radix"

// Encode encodes src into EncodedLen(len(src)) bytes of dst.
// As a convenience, it returns the number of bytes written to
// dst, but this value is always EncodedLen(len(src)).
//
// Encode runs in constant time for the length of src.
func Encode(dst, src []byte) int {
	j := 0
	for _, v := range src {
		b := uint(v >> 4)
		c := uint(v & 0x0f)

		// 87 = 'a' - 10. For nibbles < 10 the mask subtracts
		// 39 = 'a' - 10 - '0' to land in '0' ... '9'.
		const (
			mask = ^uint(38)
		)
		dst[j+1] = byte(87 + c + (((c - 10) >> 8) & mask))
		dst[j] = byte(87 + b + (((b - 10) >> 8) & mask))
		j += 2
	}
	return len(src) * 2
}

// Decode decodes src into DecodedLen(len(src)) bytes, returning
// the actual number of bytes written to dst.
//
// Decode expects that src contains only hexadecimal characters
// and that src has even length. If src contains an invalid
// character Decode returns an InvalidByteError for the first
// one; otherwise, if src has odd length, it returns ErrLength.
// On error Decode returns zero and the contents of dst are
// unspecified.
//
// Decode runs in constant time for the length of src.
func Decode(dst, src []byte) (int, error) {
	// failed is set to 1 if the input is malformed, 0 otherwise.
	var failed int
	// badChar is the first malformed character.
	//
	// Only has value if failed != 0.
	var badChar int
	// acc is the accumulator between halves of a hexadecimal
	// character pair (04, e4, fe, ...).
	var acc byte
	// i is the index into dst.
	var i int

	for j := 0; j < len(src); j++ {
		c := uint(src[j])
		val, bad := fromHexChar(c)

		// This is the constant-time equivalent of
		//
		//    if failed == 0 && bad != 0 {
		//        badChar = c
		//    }
		//
		badChar = radix.ConstantTimeSelect(failed, badChar,
			radix.ConstantTimeSelect(bad, int(c), badChar))

		failed |= bad

		if j%2 == 0 {
			acc = val * 16
		} else {
			dst[i] = acc | val
			i++
		}
	}

	// Go checks for invalid length after checking for an invalid
	// character, so we do that too.
	if failed != 0 {
		return 0, InvalidByteError(badChar)
	}
	if len(src)%2 == 1 {
		return 0, ErrLength
	}
	return i, nil
}

// fromHexChar converts the hexadecimal character c to its 4-bit
// value. bad is 1 if c is not a hexadecimal character, in which
// case val is zero.
func fromHexChar(c uint) (val byte, bad int) {
	// Is c in '0' ... '9'?
	//
	// This is equivalent to
	//
	//    if n := c^'0'; n < 10 {
	//        val = n
	//    }
	//
	// which is true because
	//     y^(16*i) < 10 ∀ y ∈ [y, y+10)
	// and '0' == 48.
	//
	// If num < 10, subtracting 10 produces the two's
	// complement which flips the bits in [63:4] to all one.
	// Shifting by 8 then ensures that bits [7:0] are all set,
	// resulting in 0xff. Otherwise the shift clears every set
	// bit, resulting in 0x00.
	num := c ^ '0'
	num0 := (num - 10) >> 8

	// Is c in 'a' ... 'f' or 'A' ... 'F'?
	//
	// This is equivalent to
	//
	//    const mask = ^uint(1<<5) // 0b11011111
	//    if a := c&mask; a >= 'A' && a <= 'F' {
	//        val = a-55
	//    }
	//
	// Clearing bit #5 folds lower case into upper case.
	// Subtracting 55 maps 'A' to 10. If alpha is in [10, 15],
	// (alpha-10)^(alpha-16) sets the bits in [63:4]; otherwise
	// both halves agree on those bits and the XOR clears them.
	alpha := (c & ^uint(32)) - 55
	alpha0 := ((alpha - 10) ^ (alpha - 16)) >> 8

	// If both num0 and alpha0 are 0x00 then the character is
	// invalid.
	bad = radix.ConstantTimeByteEq(byte(num0|alpha0), 0)

	// Only one of num0 and alpha0 can be 0xff, so the masks
	// select at most one candidate.
	val = byte(num0&num | alpha0&alpha)
	return val, bad
}

// validHexChar returns 1 if c is a valid hexadecimal character
// and 0 otherwise, in constant time.
func validHexChar(c byte) int {
	_, bad := fromHexChar(uint(c))
	return bad ^ 1
}
