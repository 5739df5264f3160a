package radix

import "errors"

var (
	// ErrInvalidLength is returned when the cleaned input does
	// not have a length allowed by the codec, e.g. an odd number
	// of hexadecimal digits or a base32 block with three
	// symbols.
	ErrInvalidLength = errors.New("radix: invalid length")

	// ErrInvalidCharacter is returned when the input contains a
	// symbol that is not part of the codec's alphabet.
	ErrInvalidCharacter = errors.New("radix: invalid character")
)
