package bitstring

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"
)

func TestEncodeToString(t *testing.T) {
	for _, tc := range []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0}, "00000000"},
		{[]byte{0xff}, "11111111"},
		{[]byte("Hi"), "01001000 01101001"},
		{[]byte{1, 2, 128}, "00000001 00000010 10000000"},
	} {
		if got := EncodeToString(tc.in); got != tc.want {
			t.Fatalf("%x: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

// TestEncodeFmt tests EncodeToString against fmt's %08b.
func TestEncodeFmt(t *testing.T) {
	for i := 0; i < 256; i++ {
		want := fmt.Sprintf("%08b", i)
		if got := EncodeToString([]byte{byte(i)}); got != want {
			t.Fatalf("%d: expected %q, got %q", i, want, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rng := rand.New(rand.NewSource(seed))

	src := make([]byte, 256)
	rng.Read(src)
	for i := range src {
		s := EncodeToString(src[:i])
		if n := EncodedLen(i); n != len(s) {
			t.Fatalf("#%d: EncodedLen: expected %d, got %d", i, len(s), n)
		}
		got, err := DecodeString(s)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if !bytes.Equal(got, src[:i]) {
			t.Fatalf("#%d: %s", i, cmp.Diff(src[:i], got))
		}
	}
}

func TestDecodeString(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []byte
	}{
		{"", []byte{}},
		{"0100100001101001", []byte("Hi")},
		{"01001000,01101001\n", []byte("Hi")},
		{"b01001000;", []byte("H")},
		{"0000 0000 1111 1111", []byte{0, 0xff}},
	} {
		got, err := DecodeString(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if !bytes.Equal(got, tc.want) {
			t.Fatalf("%q: %s", tc.in, cmp.Diff(tc.want, got))
		}
	}
}

func TestDecodeStringLength(t *testing.T) {
	for _, s := range []string{"0", "0100100", "01001000 1", strings.Repeat("1", 15)} {
		got, err := DecodeString(s)
		if !errors.Is(err, ErrLength) {
			t.Fatalf("%q: expected ErrLength, got %v", s, err)
		}
		if got != nil {
			t.Fatalf("%q: expected no output, got %x", s, got)
		}
	}
}
