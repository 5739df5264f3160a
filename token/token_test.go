package token

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericlagergren/radix"
)

const (
	sampleHeader  = "eyJhbGciOiJIUzI1NiJ9"        // {"alg":"HS256"}
	samplePayload = "eyJzdWIiOiIxMjM0NTY3ODkwIn0" // {"sub":"1234567890"}
)

func TestDecodeEmptySignature(t *testing.T) {
	tok, err := Decode(sampleHeader + "." + samplePayload + ".")
	require.NoError(t, err)
	require.Equal(t, `{"alg":"HS256"}`, tok.HeaderRaw)
	require.Equal(t, `{"sub":"1234567890"}`, tok.PayloadRaw)
	require.Equal(t, map[string]any{"alg": "HS256"}, tok.Header)
	require.Equal(t, map[string]any{"sub": "1234567890"}, tok.Payload)
	require.True(t, tok.HasSignature())
	require.Empty(t, tok.Signature)
}

func TestDecodeNoSignature(t *testing.T) {
	tok, err := Decode(sampleHeader + "." + samplePayload)
	require.NoError(t, err)
	require.False(t, tok.HasSignature())
	require.Nil(t, tok.Signature)
	require.Equal(t, map[string]any{"alg": "HS256"}, tok.Header)
}

func TestDecodeSigned(t *testing.T) {
	const s = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiIxMjM0NTY3ODkwIiwibmFtZSI6IkpvaG4gRG9lIiwiaWF0IjoxNTE2MjM5MDIyfQ." +
		"SflKxwRJSMeKKF2QT4fwpMeJf36POk6yJV_adQssw5c"

	tok, err := Decode("  " + s + "\n")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"alg": "HS256", "typ": "JWT"}, tok.Header)
	require.Equal(t, map[string]any{
		"sub":  "1234567890",
		"name": "John Doe",
		"iat":  json.Number("1516239022"),
	}, tok.Payload)
	require.True(t, tok.HasSignature())
	require.Equal(t,
		"49f94ac7044948c78a285d904f87f0a4c7897f7e8f3a4eb2255fda750b2cc397",
		hex.EncodeToString(tok.Signature))
}

func TestDecodeExtraSegments(t *testing.T) {
	tok, err := Decode(sampleHeader + "." + samplePayload + ".AQL_.ignored!.x")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 0xff}, tok.Signature)
}

func TestDecodeNumbers(t *testing.T) {
	// 12345678901234567890 does not fit in a float64 exactly.
	tok, err := Decode("e30.eyJuIjoxMjM0NTY3ODkwMTIzNDU2Nzg5MH0")
	require.NoError(t, err)
	require.Equal(t, map[string]any{}, tok.Header)
	require.Equal(t, json.Number("12345678901234567890"), tok.Payload["n"])
}

func TestDecodeInvalidToken(t *testing.T) {
	for _, s := range []string{
		"",
		"   ",
		"abc",
		sampleHeader,
		sampleHeader + "!." + samplePayload,
		sampleHeader + "." + samplePayload + "xy",
		sampleHeader + "." + samplePayload + ".a",
		sampleHeader + "." + samplePayload + ".sig*",
	} {
		tok, err := Decode(s)
		require.ErrorIs(t, err, ErrInvalidToken, "input %q", s)
		require.NotErrorIs(t, err, ErrJSONParse, "input %q", s)
		require.Nil(t, tok, "input %q", s)
	}
}

func TestDecodeInvalidTokenCause(t *testing.T) {
	_, err := Decode(sampleHeader + "." + samplePayload + ".a")
	require.ErrorIs(t, err, radix.ErrInvalidLength)

	_, err = Decode(sampleHeader + ".e30*")
	require.ErrorIs(t, err, radix.ErrInvalidCharacter)
}

func TestDecodeJSONParse(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      string
		header  bool
		payload bool
	}{
		{"payload not json", sampleHeader + ".bm90IGpzb24.", true, false},
		{"header not json", "bm90IGpzb24." + samplePayload, false, true},
		{"array", "WzEsMl0." + samplePayload, false, true},
		{"null", sampleHeader + ".bnVsbA", true, false},
		{"trailing data", sampleHeader + ".eyJhIjoxfSB4", true, false},
		{"empty segments", ".", false, false},
		{"binary", "AQL_.AQL_", false, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := Decode(tc.in)
			require.ErrorIs(t, err, ErrJSONParse)
			require.NotErrorIs(t, err, ErrInvalidToken)
			require.NotNil(t, tok)
			require.Equal(t, tc.header, tok.Header != nil)
			require.Equal(t, tc.payload, tok.Payload != nil)
		})
	}
}

func TestDecodeJSONParseRaw(t *testing.T) {
	tok, err := Decode(sampleHeader + ".bm90IGpzb24.")
	require.ErrorIs(t, err, ErrJSONParse)
	require.Equal(t, `{"alg":"HS256"}`, tok.HeaderRaw)
	require.Equal(t, "not json", tok.PayloadRaw)
	require.True(t, tok.HasSignature())
}

func TestDecodeStandardAlphabet(t *testing.T) {
	// Segments written with the standard alphabet and padding
	// are accepted too.
	tok, err := Decode(sampleHeader + "." + samplePayload + "=.AQL/")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 0xff}, tok.Signature)
}

func BenchmarkDecode(b *testing.B) {
	const s = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiIxMjM0NTY3ODkwIiwibmFtZSI6IkpvaG4gRG9lIiwiaWF0IjoxNTE2MjM5MDIyfQ." +
		"SflKxwRJSMeKKF2QT4fwpMeJf36POk6yJV_adQssw5c"
	for i := 0; i < b.N; i++ {
		if _, err := Decode(s); err != nil {
			b.Fatal(err)
		}
	}
}
