package radix

import "fmt"

// invalid marks a byte that is not part of an alphabet.
const invalid = 0xff

// Alphabet is an ordered set of ASCII symbols. The symbol at
// index i represents the digit value i.
//
// An Alphabet is immutable once created and may be shared by
// any number of goroutines.
type Alphabet struct {
	encode []byte
	decode [256]byte
}

// NewAlphabet creates an Alphabet from s.
//
// It panics if s is empty, longer than 255 bytes, contains
// non-ASCII bytes, or repeats a symbol. Alphabets are meant to
// be package-level values built from literals, so a bad
// alphabet is a programming error.
func NewAlphabet(s string) *Alphabet {
	if len(s) == 0 || len(s) >= invalid {
		panic(fmt.Sprintf("radix: invalid alphabet length: %d", len(s)))
	}
	a := &Alphabet{encode: []byte(s)}
	for i := range a.decode {
		a.decode[i] = invalid
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 {
			panic(fmt.Sprintf("radix: non-ASCII symbol %#x in alphabet", c))
		}
		if a.decode[c] != invalid {
			panic(fmt.Sprintf("radix: duplicate symbol %q in alphabet", c))
		}
		a.decode[c] = byte(i)
	}
	return a
}

// FoldCase returns a copy of a whose decoder also accepts the
// opposite case of every letter in the alphabet.
//
// It panics if a already contains both cases of some letter.
func (a *Alphabet) FoldCase() *Alphabet {
	b := &Alphabet{encode: a.encode, decode: a.decode}
	for _, c := range a.encode {
		var o byte
		switch {
		case c >= 'a' && c <= 'z':
			o = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z':
			o = c - 'A' + 'a'
		default:
			continue
		}
		if a.decode[o] != invalid {
			panic(fmt.Sprintf("radix: cannot fold %q: alphabet is case-sensitive", c))
		}
		b.decode[o] = a.decode[c]
	}
	return b
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.encode)
}

// Symbol returns the symbol for the digit value v.
//
// v must be less than Len.
func (a *Alphabet) Symbol(v byte) byte {
	return a.encode[v]
}

// Value returns the digit value of the symbol c, or 0xff if c
// is not part of the alphabet.
func (a *Alphabet) Value(c byte) byte {
	return a.decode[c]
}

// Contains reports whether c is part of the alphabet.
func (a *Alphabet) Contains(c byte) bool {
	return a.decode[c] != invalid
}

// String returns the symbols of the alphabet in digit order.
func (a *Alphabet) String() string {
	return string(a.encode)
}
