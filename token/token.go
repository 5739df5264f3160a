// Package token decodes the structure of compact signed tokens
// of the form header.payload.signature, such as JSON Web Tokens.
//
// Decode only inspects a token. It never verifies the signature
// and its result must not be trusted.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ericlagergren/radix/base64"
	"github.com/ericlagergren/radix/internal/textconv"
)

var (
	// ErrInvalidToken is returned when the input is not a token:
	// it has fewer than two segments or a segment is not valid
	// base64url.
	ErrInvalidToken = errors.New("token: invalid token")

	// ErrJSONParse is returned when the header or payload is not
	// a JSON object.
	ErrJSONParse = errors.New("token: invalid JSON")
)

// Token is a decoded token.
type Token struct {
	// HeaderRaw and PayloadRaw are the decoded text of the first
	// two segments.
	HeaderRaw  string
	PayloadRaw string

	// Header and Payload are the parsed JSON objects. Numbers are
	// json.Number.
	Header  map[string]any
	Payload map[string]any

	// Signature holds the bytes of the third segment.
	Signature []byte

	hasSig bool
}

// HasSignature reports whether the token had a third segment.
// A trailing empty segment, as in "h.p.", counts as an empty
// signature.
func (t *Token) HasSignature() bool {
	return t.hasSig
}

// Decode decodes the segments of s.
//
// Surrounding whitespace is ignored, as are segments after the
// third. If the header or payload is not a JSON object Decode
// returns ErrJSONParse along with a Token holding the raw text
// of both segments and whichever of them did parse.
func Decode(s string) (*Token, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: expected at least 2 segments, got %d",
			ErrInvalidToken, len(parts))
	}

	header, err := segment(parts[0], "header")
	if err != nil {
		return nil, err
	}
	payload, err := segment(parts[1], "payload")
	if err != nil {
		return nil, err
	}
	t := &Token{
		HeaderRaw:  textconv.Text(header),
		PayloadRaw: textconv.Text(payload),
	}
	if len(parts) > 2 {
		t.Signature, err = segment(parts[2], "signature")
		if err != nil {
			return nil, err
		}
		t.hasSig = true
	}

	var errs []error
	if t.Header, err = object(t.HeaderRaw); err != nil {
		errs = append(errs, fmt.Errorf("header: %w", err))
	}
	if t.Payload, err = object(t.PayloadRaw); err != nil {
		errs = append(errs, fmt.Errorf("payload: %w", err))
	}
	if len(errs) > 0 {
		return t, fmt.Errorf("%w: %w", ErrJSONParse, errors.Join(errs...))
	}
	return t, nil
}

func segment(s, name string) ([]byte, error) {
	b, err := base64.URLDecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidToken, name, err)
	}
	return b, nil
}

func object(s string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("not an object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after object")
	}
	return m, nil
}
