// Package textconv bridges text and bytes and wraps the text
// encodings radix does not implement itself.
package textconv

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/ericlagergren/radix"
)

// Bytes returns the UTF-8 encoding of s. Ill-formed UTF-8 is
// replaced with U+FFFD.
func Bytes(s string) []byte {
	if utf8.ValidString(s) {
		return []byte(s)
	}
	b, err := unicode.UTF8.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return []byte(strings.ToValidUTF8(s, string(utf8.RuneError)))
	}
	return b
}

// Text decodes b as UTF-8. Ill-formed sequences are replaced
// with U+FFFD. A leading byte order mark is kept.
func Text(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	s, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(s)
}

// Characters left alone by JavaScript's encodeURIComponent that
// url.QueryEscape escapes.
var uriComponent = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// URLEscape percent-encodes s for use as a URI component. Only
// A-Z a-z 0-9 and - _ . ! ~ * ' ( ) are left unescaped.
func URLEscape(s string) string {
	return uriComponent.Replace(url.QueryEscape(s))
}

// URLUnescape reverses URLEscape. A '+' is kept as is.
//
// Malformed escapes and escapes that decode to ill-formed UTF-8
// are reported as radix.ErrInvalidCharacter.
func URLUnescape(s string) (string, error) {
	t, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", radix.ErrInvalidCharacter, err)
	}
	if !utf8.ValidString(t) {
		return "", fmt.Errorf("%w: escapes decode to invalid UTF-8", radix.ErrInvalidCharacter)
	}
	return t, nil
}

// HTMLEscape escapes <, >, &, ' and ".
func HTMLEscape(s string) string {
	return html.EscapeString(s)
}

// HTMLUnescape replaces named and numeric character references
// with the characters they name.
func HTMLUnescape(s string) string {
	return html.UnescapeString(s)
}
