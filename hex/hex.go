// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hex implements constant-time hexadecimal encoding and
// decoding.
package hex

import (
	"fmt"

	"github.com/ericlagergren/radix"
)

// ErrLength reports an attempt to decode an odd-length input.
var ErrLength = radix.ErrInvalidLength

// InvalidByteError values describe errors resulting from an
// invalid byte in a hex string.
//
// InvalidByteError matches radix.ErrInvalidCharacter with
// errors.Is.
type InvalidByteError byte

func (e InvalidByteError) Error() string {
	return fmt.Sprintf("hex: invalid byte: %#U", rune(e))
}

func (e InvalidByteError) Unwrap() error {
	return radix.ErrInvalidCharacter
}

// EncodedLen returns the length of an encoding of n source
// bytes.
// Specifically, it returns n * 2.
func EncodedLen(n int) int {
	return n * 2
}

// DecodedLen returns the length of a decoding of x source bytes.
// Specifically, it returns x / 2.
func DecodedLen(x int) int {
	return x / 2
}

// EncodeToString returns the lower-case hexadecimal encoding
// of src.
//
// EncodeToString runs in constant time for the length of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// DecodeString returns the bytes represented by the hexadecimal
// string s.
//
// DecodeString is lenient: every character that is not a
// hexadecimal digit is removed first, so "de:ad be-ef" and
// "DE AD BE EF" both decode. Upper- and lower-case digits are
// accepted. If the remaining digits have odd length,
// DecodeString returns ErrLength and no bytes.
//
// DecodeString runs in constant time for the length of s.
func DecodeString(s string) ([]byte, error) {
	src := radix.Filter([]byte(s), validHexChar)
	n, err := Decode(src, src)
	if err != nil {
		radix.Wipe(src)
		return nil, err
	}
	radix.Wipe(src[n:])
	return src[:n], nil
}
