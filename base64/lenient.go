package base64

import "github.com/ericlagergren/radix"

// EncodeToString returns the padded standard Base64 encoding of
// src.
func EncodeToString(src []byte) string {
	return StdEncoding.EncodeToString(src)
}

// DecodeString decodes standard Base64 leniently.
//
// ASCII whitespace is removed before decoding and padding is
// optional: if the cleaned input is a multiple of four
// characters long, up to two trailing '=' are removed. The
// remainder is then decoded as unpadded Base64. Non-zero
// trailing bits are ignored.
//
// It returns ErrLength if the cleaned input leaves a single
// character in its final block and ErrCorrupt if it contains a
// character outside of the standard alphabet.
func DecodeString(s string) ([]byte, error) {
	return decodeLenient(s, stdRevLookup, false)
}

// URLEncodeToString returns the unpadded base64url encoding of
// src.
func URLEncodeToString(src []byte) string {
	return RawURLEncoding.EncodeToString(src)
}

// URLDecodeString decodes base64url leniently. It accepts
// padded and unpadded input and, like DecodeString, ignores
// whitespace. Up to two trailing '=' are removed whatever the
// length of the input, so "YQ=" decodes to "a".
//
// Because base64url is restored to standard Base64 before
// decoding, the standard '+' and '/' characters are accepted as
// well.
func URLDecodeString(s string) ([]byte, error) {
	return decodeLenient(s, anyRevLookup, true)
}

// decodeLenient strips whitespace and up to two trailing '='
// from s and decodes the rest as unpadded Base64. Unless
// anyLength is set, padding is only stripped from input that is
// a multiple of four characters long.
func decodeLenient(s string, revLookup func(uint) byte, anyLength bool) ([]byte, error) {
	src := radix.Filter([]byte(s), notSpace)
	if len(src) > 0 && (anyLength || len(src)%4 == 0) {
		t1 := radix.ConstantTimeByteEq(src[len(src)-1], '=')
		t2 := 0
		if len(src) > 1 {
			t2 = t1 & radix.ConstantTimeByteEq(src[len(src)-2], '=')
		}
		src = src[:len(src)-t1-t2]
	}
	dst := make([]byte, len(src)*6/8)
	n, err := decode(dst, src, revLookup, NoPadding, false)
	radix.Wipe(src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

func notSpace(c byte) int {
	return radix.ConstantTimeSpace(c) ^ 1
}
