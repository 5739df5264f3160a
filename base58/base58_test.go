package base58

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"github.com/ericlagergren/radix"
)

var stringTests = []struct {
	in, out string
}{
	{"", ""},
	{" ", "Z"},
	{"-", "n"},
	{"0", "q"},
	{"1", "r"},
	{"-1", "4SU"},
	{"11", "4k8"},
	{"abc", "ZiCa"},
	{"1234598760", "3mJr7AoUXx2Wqd"},
	{"abcdefghijklmnopqrstuvwxyz", "3yxU3u1igY8WkgtjK92fbJQCd4BHiiTh"},
	{"Hello World!", "2NEpo7TZRRrLZSi2U"},
}

var hexTests = []struct {
	in, out string
}{
	{"61", "2g"},
	{"626262", "a3gV"},
	{"636363", "aPEr"},
	{"73696d706c792061206c6f6e6720737472696e67", "2cFupjhnEsSn59qHXstmK2ffpLv2"},
	{"00eb15231dfceb60925886b67d065299925915aeb172c06647", "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L"},
	{"516b6fcd0f", "ABnLTmg"},
	{"bf4f89001e670274dd", "3SEo3LWLoPntC"},
	{"572e4794", "3EFU7m"},
	{"ecac89cad93923c02321", "EJDM8drfXA6uyA"},
	{"10c8511e", "Rt5zm"},
	{"00000000000000000000", "1111111111"},
}

func TestStrings(t *testing.T) {
	for i, tc := range stringTests {
		if got := EncodeToString([]byte(tc.in)); got != tc.out {
			t.Fatalf("#%d: %q: expected %q, got %q", i, tc.in, tc.out, got)
		}
		got, err := DecodeString(tc.out)
		if err != nil {
			t.Fatalf("#%d: %q: %v", i, tc.out, err)
		}
		if string(got) != tc.in {
			t.Fatalf("#%d: %q: expected %q, got %q", i, tc.out, tc.in, got)
		}
	}
}

func TestHex(t *testing.T) {
	for i, tc := range hexTests {
		b, err := hex.DecodeString(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := EncodeToString(b); got != tc.out {
			t.Fatalf("#%d: %s: expected %q, got %q", i, tc.in, tc.out, got)
		}
		got, err := DecodeString(tc.out)
		if err != nil {
			t.Fatalf("#%d: %q: %v", i, tc.out, err)
		}
		if !bytes.Equal(got, b) {
			t.Fatalf("#%d: %q: %s", i, tc.out, cmp.Diff(b, got))
		}
	}
}

// TestBigInt tests EncodeToString against math/big.
func TestBigInt(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rng := rand.New(rand.NewSource(seed))

	var x, q, r big.Int
	base := big.NewInt(58)
	for i := 0; i < 500; i++ {
		src := make([]byte, 1+rng.Intn(64))
		rng.Read(src)
		src[0] |= 1

		var want []byte
		x.SetBytes(src)
		for x.Sign() > 0 {
			q.QuoRem(&x, base, &r)
			want = append(want, encodeBitcoin[r.Int64()])
			x.Set(&q)
		}
		for l, h := 0, len(want)-1; l < h; l, h = l+1, h-1 {
			want[l], want[h] = want[h], want[l]
		}

		if got := EncodeToString(src); got != string(want) {
			t.Fatalf("#%d: %x: %s", i, src, cmp.Diff(string(want), got))
		}
	}
}

func TestRoundTrip(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 1000; i++ {
		src := make([]byte, rng.Intn(80))
		rng.Read(src)
		// Exercise leading zeros.
		for j := 0; j < len(src) && rng.Intn(2) == 0; j++ {
			src[j] = 0
		}
		for _, e := range []*Encoding{BitcoinEncoding, FlickrEncoding} {
			got, err := e.DecodeString(e.EncodeToString(src))
			if err != nil {
				t.Fatalf("#%d: %v", i, err)
			}
			if !bytes.Equal(got, src) {
				t.Fatalf("#%d: %s", i, cmp.Diff(src, got))
			}
		}
	}
}

// TestScratchBounds checks that the fixed scratch buffers fit
// the largest value of every length.
func TestScratchBounds(t *testing.T) {
	one := big.NewInt(1)
	for n := 1; n <= 512; n++ {
		// 256^n - 1
		x := new(big.Int).Lsh(one, uint(8*n))
		x.Sub(x, one)
		if want := len(x.Text(58)); maxDigits(n) < want {
			t.Fatalf("maxDigits(%d): expected >= %d, got %d", n, want, maxDigits(n))
		}

		// 58^n - 1
		y := new(big.Int).Exp(big.NewInt(58), big.NewInt(int64(n)), nil)
		y.Sub(y, one)
		if want := len(y.Bytes()); maxBytes(n) < want {
			t.Fatalf("maxBytes(%d): expected >= %d, got %d", n, want, maxBytes(n))
		}
	}
}

func TestLargestValues(t *testing.T) {
	for n := 1; n <= 300; n++ {
		src := bytes.Repeat([]byte{0xff}, n)
		got, err := DecodeString(EncodeToString(src))
		if err != nil {
			t.Fatalf("%d: %v", n, err)
		}
		if !bytes.Equal(got, src) {
			t.Fatalf("%d: %s", n, cmp.Diff(src, got))
		}

		s := strings.Repeat("z", n)
		b, err := DecodeString(s)
		if err != nil {
			t.Fatalf("%d: %v", n, err)
		}
		if enc := EncodeToString(b); enc != s {
			t.Fatalf("%d: %s", n, cmp.Diff(s, enc))
		}
	}
}

func TestLeadingZeros(t *testing.T) {
	for k := 0; k < 20; k++ {
		for _, tail := range [][]byte{{1}, {0xff}, {0x80, 0}, {0x3a}} {
			src := append(make([]byte, k), tail...)
			s := EncodeToString(src)
			if !strings.HasPrefix(s, strings.Repeat("1", k)) {
				t.Fatalf("%x: expected %d leading '1', got %q", src, k, s)
			}
			if len(s) <= k || s[k] == '1' {
				t.Fatalf("%x: expected exactly %d leading '1', got %q", src, k, s)
			}
		}
	}
}

func TestAllZero(t *testing.T) {
	for k := 0; k < 20; k++ {
		src := make([]byte, k)
		s := EncodeToString(src)
		if s != strings.Repeat("1", k) {
			t.Fatalf("%d: expected %d '1', got %q", k, k, s)
		}
		got, err := DecodeString(s)
		if err != nil {
			t.Fatalf("%d: %v", k, err)
		}
		if !bytes.Equal(got, src) {
			t.Fatalf("%d: %s", k, cmp.Diff(src, got))
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, s := range []string{"0", "O", "I", "l", "2g0", "111O", "abc ", "\xff", "é"} {
		got, err := DecodeString(s)
		if !errors.Is(err, ErrCorrupt) || !errors.Is(err, radix.ErrInvalidCharacter) {
			t.Fatalf("%q: expected ErrCorrupt, got %v", s, err)
		}
		if got != nil {
			t.Fatalf("%q: expected no output, got %x", s, got)
		}
	}
}

func TestNewEncodingPanics(t *testing.T) {
	for _, s := range []string{"", encodeBitcoin[1:], encodeBitcoin + "0", encodeBitcoin[:57] + "1"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%q: expected panic", s)
				}
			}()
			NewEncoding(s)
		}()
	}
}

var sinkS string

func BenchmarkEncodeToString(b *testing.B) {
	src := make([]byte, 32)
	for i := range src {
		src[i] = byte(i * 7)
	}
	for i := 0; i < b.N; i++ {
		sinkS = EncodeToString(src)
	}
}

func BenchmarkDecodeString(b *testing.B) {
	src := "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L"
	for i := 0; i < b.N; i++ {
		_, _ = DecodeString(src)
	}
}
