// Package base32 implements base32 encoding as specified by
// RFC 4648.
package base32

import "github.com/ericlagergren/radix"

const (
	StdPadding = radix.StdPadding // standard padding '='
	NoPadding  = radix.NoPadding  // no padding
)

var (
	// ErrLength is returned when a block of the input does not
	// hold 2, 4, 5, 7, or 8 symbols.
	ErrLength = radix.ErrInvalidLength

	// ErrCorrupt is returned when the input contains a
	// character outside of the alphabet.
	ErrCorrupt = radix.ErrInvalidCharacter
)

const encodeStd = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// StdEncoding is the standard base32 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    234567
//
// Its decoder also accepts lower-case letters.
var StdEncoding = radix.NewEncoding(radix.NewAlphabet(encodeStd).FoldCase(), 5)

// RawStdEncoding is the unpadded standard base32 encoding.
var RawStdEncoding = StdEncoding.WithPadding(NoPadding)

// EncodeToString returns the padded base32 encoding of src.
//
// Every 5 bytes of src become 8 symbols. A final partial group
// of 1, 2, 3, or 4 bytes becomes 2, 4, 5, or 7 symbols followed
// by '=' up to 8.
func EncodeToString(src []byte) string {
	return StdEncoding.EncodeToString(src)
}

// DecodeString decodes base32 leniently.
//
// Every character other than A-Z, a-z, 2-7 and '=' is removed
// first. The rest is split into blocks of 8 characters; each
// block must hold 2, 4, 5, 7, or 8 symbols before its padding,
// otherwise DecodeString returns ErrLength. Padded blocks may
// be followed by more blocks, so concatenated encodings decode
// to the concatenation of their inputs. Only a full block may
// carry padding, but the final block may be unpadded. Padding
// inside a block results in ErrCorrupt.
func DecodeString(s string) ([]byte, error) {
	src := radix.Filter([]byte(s), keep)
	dst := make([]byte, StdEncoding.DecodedLen(len(src)))
	n, err := StdEncoding.Decode(dst, src)
	radix.Wipe(src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

func keep(c byte) int {
	return radix.ConstantTimeByteInRange(c, 'A', 'Z') |
		radix.ConstantTimeByteInRange(c, 'a', 'z') |
		radix.ConstantTimeByteInRange(c, '2', '7') |
		radix.ConstantTimeByteEq(c, '=')
}
