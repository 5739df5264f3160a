// Package codec provides every radix encoding behind one named
// interface.
//
// Each Codec works on both bytes and text. Text is converted to
// and from bytes as UTF-8, with ill-formed sequences replaced by
// U+FFFD.
//
//    c, _ := codec.Lookup("base64")
//    c.EncodeText("hello") // "aGVsbG8="
//    c.DecodeText("aGVsbG8") // "hello", nil
package codec

import (
	"strings"

	"github.com/ericlagergren/radix/base32"
	"github.com/ericlagergren/radix/base58"
	"github.com/ericlagergren/radix/base64"
	"github.com/ericlagergren/radix/bitstring"
	"github.com/ericlagergren/radix/hex"
	"github.com/ericlagergren/radix/internal/textconv"
	"github.com/ericlagergren/radix/token"
	"github.com/ericlagergren/radix/uescape"
)

// Codec is a named encoding.
type Codec struct {
	name string
	desc string

	encodeBytes func([]byte) string
	decodeBytes func(string) ([]byte, error)
	encodeText  func(string) string
	decodeText  func(string) (string, error)
}

// binary returns a Codec whose natural input is bytes.
func binary(name, desc string, enc func([]byte) string, dec func(string) ([]byte, error)) *Codec {
	return &Codec{
		name:        name,
		desc:        desc,
		encodeBytes: enc,
		decodeBytes: dec,
		encodeText: func(s string) string {
			return enc(textconv.Bytes(s))
		},
		decodeText: func(s string) (string, error) {
			b, err := dec(s)
			if err != nil {
				return "", err
			}
			return textconv.Text(b), nil
		},
	}
}

// text returns a Codec whose natural input is text.
func text(name, desc string, enc func(string) string, dec func(string) (string, error)) *Codec {
	return &Codec{
		name:       name,
		desc:       desc,
		encodeText: enc,
		decodeText: dec,
		encodeBytes: func(b []byte) string {
			return enc(textconv.Text(b))
		},
		decodeBytes: func(s string) ([]byte, error) {
			t, err := dec(s)
			if err != nil {
				return nil, err
			}
			return textconv.Bytes(t), nil
		},
	}
}

func infallible(fn func(string) string) func(string) (string, error) {
	return func(s string) (string, error) {
		return fn(s), nil
	}
}

// Name returns the name the Codec is registered under.
func (c *Codec) Name() string { return c.name }

// Description returns a short human readable description.
func (c *Codec) Description() string { return c.desc }

// EncodeBytes encodes src.
func (c *Codec) EncodeBytes(src []byte) string {
	return c.encodeBytes(src)
}

// EncodeText encodes the UTF-8 bytes of s.
func (c *Codec) EncodeText(s string) string {
	return c.encodeText(s)
}

// DecodeBytes decodes s to raw bytes.
//
// Errors match those of the underlying package and can be
// tested with errors.Is against radix.ErrInvalidLength and
// radix.ErrInvalidCharacter. Output is never partial.
func (c *Codec) DecodeBytes(s string) ([]byte, error) {
	return c.decodeBytes(s)
}

// DecodeText decodes s and interprets the result as UTF-8.
//
// See DecodeBytes for the error semantics.
func (c *Codec) DecodeText(s string) (string, error) {
	return c.decodeText(s)
}

var order = []*Codec{
	binary("base64", "standard Base64 (RFC 4648 section 4)",
		base64.EncodeToString, base64.DecodeString),
	binary("base64url", "URL-safe Base64 without padding (RFC 4648 section 5)",
		base64.URLEncodeToString, base64.URLDecodeString),
	binary("base32", "Base32 (RFC 4648 section 6)",
		base32.EncodeToString, base32.DecodeString),
	binary("base58", "Bitcoin Base58",
		base58.EncodeToString, base58.DecodeString),
	binary("hex", "lower-case hexadecimal",
		hex.EncodeToString, hex.DecodeString),
	binary("binary", "eight binary digits per byte",
		bitstring.EncodeToString, bitstring.DecodeString),
	text("unicode", `\uXXXX escape sequences`,
		uescape.Escape, infallible(uescape.Unescape)),
	text("url", "URI component percent-encoding",
		textconv.URLEscape, textconv.URLUnescape),
	text("html", "HTML character references",
		textconv.HTMLEscape, infallible(textconv.HTMLUnescape)),
}

var table = func() map[string]*Codec {
	m := make(map[string]*Codec, len(order))
	for _, c := range order {
		m[c.name] = c
	}
	return m
}()

// Lookup returns the Codec with the given name. Names are case
// insensitive.
func Lookup(name string) (*Codec, bool) {
	c, ok := table[strings.ToLower(name)]
	return c, ok
}

// Names returns the name of every Codec in a fixed order.
func Names() []string {
	names := make([]string, len(order))
	for i, c := range order {
		names[i] = c.name
	}
	return names
}

// DecodeToken decodes the structure of a compact signed token.
// See token.Decode.
func DecodeToken(s string) (*token.Token, error) {
	return token.Decode(s)
}
