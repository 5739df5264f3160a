package radix

import "crypto/subtle"

// ConstantTimeByteEq returns 1 if x == y and 0 otherwise.
func ConstantTimeByteEq(x, y uint8) int {
	return subtle.ConstantTimeByteEq(x, y)
}

// ConstantTimeSelect returns x if v == 1 and y if v == 0.
// Its behavior is undefined if v takes any other value.
func ConstantTimeSelect(v, x, y int) int {
	return subtle.ConstantTimeSelect(v, x, y)
}

// ConstantTimeLessOrEq returns 1 if x <= y and 0 otherwise.
// Its behavior is undefined if x or y are negative or > 2**31 - 1.
func ConstantTimeLessOrEq(x, y int) int {
	return subtle.ConstantTimeLessOrEq(x, y)
}

// ConstantTimeByteLessOrEq returns 1 if x <= y and 0 otherwise.
func ConstantTimeByteLessOrEq(x, y uint8) int {
	return ConstantTimeLessOrEq(int(x), int(y))
}

// ConstantTimeByteInRange returns 1 if lo <= c <= hi and 0
// otherwise.
func ConstantTimeByteInRange(c, lo, hi uint8) int {
	return ConstantTimeByteLessOrEq(lo, c) & ConstantTimeByteLessOrEq(c, hi)
}

// ConstantTimeSpace returns 1 if c is one of the ASCII
// whitespace characters ' ', '\t', '\n', '\v', '\f', or '\r'
// and 0 otherwise.
func ConstantTimeSpace(c uint8) int {
	// '\t' ... '\r' are contiguous.
	return ConstantTimeByteEq(c, ' ') |
		ConstantTimeByteInRange(c, '\t', '\r')
}

// Filter returns the bytes of src for which keep returns 1, in
// order. keep must return either 0 or 1.
//
// Filter does not branch on the contents of src, so it runs in
// constant time for the length of src if keep does.
func Filter(src []byte, keep func(c byte) int) []byte {
	dst := make([]byte, len(src))
	offset := 0
	for _, c := range src {
		// Always write, only advance on keep.
		dst[offset] = c
		offset += keep(c)
	}
	return dst[:offset]
}

// countTrailing returns the number of consecutive bytes equal to
// c at the end of src.
func countTrailing(src []byte, c byte) int {
	n := 0
	run := 1
	for i := len(src) - 1; i >= 0; i-- {
		run &= ConstantTimeByteEq(src[i], c)
		n += run
	}
	return n
}
