package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ericlagergren/radix/codec"
	"github.com/ericlagergren/radix/hex"
	"github.com/ericlagergren/radix/token"
)

// jwtMode selects the token decoder in place of a codec.
const jwtMode = "jwt"

// transform runs src through the named codec.
//
// Encoding treats src as raw bytes. Decoding returns text unless
// asBytes is set, in which case the decoded bytes are shown as
// space separated hex pairs.
func transform(name string, decode, asBytes bool, src []byte) (string, error) {
	if name == jwtMode {
		if !decode {
			return "", fmt.Errorf("%s: only decoding is supported", jwtMode)
		}
		tok, err := codec.DecodeToken(string(src))
		if tok == nil {
			return "", err
		}
		return formatToken(tok), err
	}

	c, ok := codec.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown codec %q", name)
	}
	if !decode {
		return c.EncodeBytes(src), nil
	}
	if asBytes {
		b, err := c.DecodeBytes(string(src))
		if err != nil {
			return "", fmt.Errorf("%s: %w", c.Name(), err)
		}
		return hexBytes(b), nil
	}
	s, err := c.DecodeText(string(src))
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.Name(), err)
	}
	return s, nil
}

// hexBytes formats b as "de ad be ef".
func hexBytes(b []byte) string {
	h := hex.EncodeToString(b)
	var sb strings.Builder
	sb.Grow(len(h) + len(b))
	for i := 0; i < len(h); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(h[i : i+2])
	}
	return sb.String()
}

func formatToken(t *token.Token) string {
	var b strings.Builder
	b.WriteString("Header:\n")
	b.WriteString(indentJSON(t.HeaderRaw))
	b.WriteString("\nPayload:\n")
	b.WriteString(indentJSON(t.PayloadRaw))
	b.WriteString("\nSignature: ")
	switch {
	case !t.HasSignature():
		b.WriteString("(none)")
	case len(t.Signature) == 0:
		b.WriteString("(empty)")
	default:
		b.WriteString(hex.EncodeToString(t.Signature))
	}
	return b.String()
}

// indentJSON pretty prints s, or returns it unchanged if it is
// not valid JSON.
func indentJSON(s string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return s
	}
	return buf.String()
}
