package radix

import "fmt"

const (
	StdPadding rune = '=' // standard padding '='
	NoPadding  rune = -1  // no padding
)

// Encoding is a radix-2^k encoding that packs the bits of its
// input into k-bit symbols, most significant bit first, as
// described by RFC 4648.
//
// The input is processed in blocks of lcm(8, k) bits. A final
// partial block of n bytes produces ceil(8n/k) symbols and, if
// the Encoding is padded, enough padding characters to fill the
// block.
type Encoding struct {
	alpha      *Alphabet
	bits       uint
	padChar    rune
	blockBytes int
	blockSyms  int
	// symsFor[n] is the number of symbols produced by a block
	// containing n bytes.
	symsFor []int
	// bytesFor[m] is the number of bytes encoded by a block
	// containing m symbols, or -1 if no block has m symbols.
	bytesFor []int
}

// NewEncoding returns a padded Encoding that uses k-bit symbols
// taken from a, where a.Len() == 1<<k.
//
// It panics if k is not in [1, 7] or if a has the wrong number
// of symbols.
func NewEncoding(a *Alphabet, k uint) *Encoding {
	if k < 1 || k > 7 {
		panic(fmt.Sprintf("radix: unsupported symbol size: %d", k))
	}
	if a.Len() != 1<<k {
		panic(fmt.Sprintf("radix: %d-bit encoding needs %d symbols, got %d",
			k, 1<<k, a.Len()))
	}

	// lcm(8, k) for k in [1, 7].
	g := gcd(8, int(k))
	blockBits := 8 * int(k) / g

	e := &Encoding{
		alpha:      a,
		bits:       k,
		padChar:    StdPadding,
		blockBytes: blockBits / 8,
		blockSyms:  blockBits / int(k),
	}
	e.symsFor = make([]int, e.blockBytes+1)
	e.bytesFor = make([]int, e.blockSyms+1)
	for i := range e.bytesFor {
		e.bytesFor[i] = -1
	}
	for n := range e.symsFor {
		m := (8*n + int(k) - 1) / int(k)
		e.symsFor[n] = m
		e.bytesFor[m] = n
	}
	return e
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// WithPadding returns an identical Encoding that uses the
// specified padding character, or NoPadding.
//
// The padding character must be ASCII and cannot be '\r', '\n',
// or a character in the encoding's alphabet.
func (e Encoding) WithPadding(r rune) *Encoding {
	switch {
	case r == NoPadding:
	case r == '\r', r == '\n', r < 0, r >= 0x80:
		panic("radix: invalid padding")
	case e.alpha.Contains(byte(r)):
		panic("radix: padding contained in alphabet")
	}
	e.padChar = r
	return &e
}

// Alphabet returns the encoding's alphabet.
func (e *Encoding) Alphabet() *Alphabet {
	return e.alpha
}

// BlockSize returns the number of bytes and symbols in one
// full block.
func (e *Encoding) BlockSize() (bytes, symbols int) {
	return e.blockBytes, e.blockSyms
}

// EncodedLen returns the length in bytes of the encoding of n
// source bytes.
func (e *Encoding) EncodedLen(n int) int {
	full, rem := n/e.blockBytes, n%e.blockBytes
	if e.padChar == NoPadding || rem == 0 {
		return full*e.blockSyms + e.symsFor[rem]
	}
	return (full + 1) * e.blockSyms
}

// DecodedLen returns the maximum length in bytes of the decoded
// data corresponding to n bytes of encoded data.
func (e *Encoding) DecodedLen(n int) int {
	return n * int(e.bits) / 8
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to
// dst.
func (e *Encoding) Encode(dst, src []byte) {
	mask := uint64(1)<<e.bits - 1
	blockBits := uint(e.blockBytes * 8)

	for len(src) > 0 {
		n := min(len(src), e.blockBytes)

		var v uint64
		for i := 0; i < e.blockBytes; i++ {
			v <<= 8
			if i < n {
				v |= uint64(src[i])
			}
		}

		m := e.symsFor[n]
		for j := 0; j < m; j++ {
			shift := blockBits - uint(j+1)*e.bits
			dst[j] = e.alpha.encode[v>>shift&mask]
		}
		if e.padChar != NoPadding {
			for j := m; j < e.blockSyms; j++ {
				dst[j] = byte(e.padChar)
			}
			m = e.blockSyms
		}
		dst = dst[m:]
		src = src[n:]
	}
}

// EncodeToString returns the encoding of src.
func (e *Encoding) EncodeToString(src []byte) string {
	dst := make([]byte, e.EncodedLen(len(src)))
	e.Encode(dst, src)
	return string(dst)
}

// Decode decodes src, writing at most DecodedLen(len(src))
// bytes to dst, and returns the number of bytes written.
//
// src is decoded one block at a time, so the concatenation of
// padded encodings decodes to the concatenation of their
// inputs. Every block must hold a number of symbols, before its
// padding, that some number of bytes encodes to; otherwise
// Decode returns ErrInvalidLength. Only a full block may carry
// padding, and only the final block may be shorter than a full
// block. A byte outside the alphabet, including padding that is
// not at the end of its block, results in ErrInvalidCharacter.
//
// Decode does not return partial output: on error it returns
// zero and the contents of dst are unspecified.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	var (
		n      int
		failed byte
	)
	blockBits := uint(e.blockBytes * 8)

	for len(src) > 0 {
		chunk := src[:min(len(src), e.blockSyms)]
		src = src[len(chunk):]

		m := len(chunk)
		if e.padChar != NoPadding {
			pads := countTrailing(chunk, byte(e.padChar))
			if pads > 0 && len(chunk) != e.blockSyms {
				return 0, ErrInvalidLength
			}
			m -= pads
		}
		nb := e.bytesFor[m]
		if nb <= 0 {
			return 0, ErrInvalidLength
		}

		var v uint64
		for j := 0; j < m; j++ {
			c := e.alpha.decode[chunk[j]]
			failed |= c
			v = v<<e.bits | uint64(c)&(1<<e.bits-1)
		}
		v <<= uint(e.blockSyms-m) * e.bits

		for i := 0; i < nb; i++ {
			dst[n+i] = byte(v >> (blockBits - uint(i+1)*8))
		}
		n += nb
	}

	// Valid digit values are < 0x80, invalid ones are 0xff.
	if failed&0x80 != 0 {
		return 0, ErrInvalidCharacter
	}
	return n, nil
}

// DecodeString returns the bytes represented by s.
//
// See Decode for the error semantics.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	dst := make([]byte, e.DecodedLen(len(s)))
	n, err := e.Decode(dst, []byte(s))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
