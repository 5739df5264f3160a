// Package bitstring converts bytes to and from strings of
// binary digits, eight per byte, most significant bit first.
package bitstring

import "github.com/ericlagergren/radix"

// ErrLength is returned when the number of binary digits is not
// a multiple of eight.
var ErrLength = radix.ErrInvalidLength

var enc = radix.NewEncoding(radix.NewAlphabet("01"), 1).WithPadding(radix.NoPadding)

// EncodedLen returns the length of the encoding of n source
// bytes: eight digits per byte and a space between bytes.
func EncodedLen(n int) int {
	if n == 0 {
		return 0
	}
	return n*9 - 1
}

// EncodeToString returns the binary digits of src, with the
// eight digits of each byte separated from the next by a single
// space.
//
//    EncodeToString([]byte("Hi")) == "01001000 01101001"
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	for i := range src {
		if i > 0 {
			dst[i*9-1] = ' '
		}
		enc.Encode(dst[i*9:], src[i:i+1])
	}
	return string(dst)
}

// DecodeString returns the bytes represented by the binary
// digits in s.
//
// Every character other than '0' and '1' is removed first, so
// any grouping or separators are accepted. If the number of
// remaining digits is not a multiple of eight, DecodeString
// returns ErrLength and no bytes.
func DecodeString(s string) ([]byte, error) {
	src := radix.Filter([]byte(s), isDigit)
	if len(src)%8 != 0 {
		return nil, ErrLength
	}
	return enc.DecodeString(string(src))
}

func isDigit(c byte) int {
	return radix.ConstantTimeByteInRange(c, '0', '1')
}
