package radix

import (
	"bytes"
	"testing"
)

func TestConstantTimeByteLessOrEq(t *testing.T) {
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			x := byte(i)
			y := byte(j)
			if (ConstantTimeByteLessOrEq(x, y) == 1) != (x <= y) {
				t.Fatalf("(%d, %d): expected %t", x, y, x <= y)
			}
		}
	}
}

func TestConstantTimeByteInRange(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := byte(i)
		want := c >= '2' && c <= '7'
		if got := ConstantTimeByteInRange(c, '2', '7') == 1; got != want {
			t.Fatalf("%#x: expected %t", c, want)
		}
	}
}

func TestConstantTimeSpace(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := byte(i)
		want := bytes.IndexByte([]byte(" \t\n\v\f\r"), c) >= 0
		if got := ConstantTimeSpace(c) == 1; got != want {
			t.Fatalf("%#x: expected %t", c, want)
		}
	}
}

func TestFilter(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"", ""},
		{"   ", ""},
		{"a b\tc\r\nd", "abcd"},
		{"abcd", "abcd"},
		{" leading", "leading"},
		{"trailing\n", "trailing"},
	} {
		got := Filter([]byte(tc.in), func(c byte) int {
			return ConstantTimeSpace(c) ^ 1
		})
		if string(got) != tc.out {
			t.Fatalf("Filter(%q): expected %q, got %q", tc.in, tc.out, got)
		}
	}
}

func TestCountTrailing(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int
	}{
		{"", 0},
		{"=", 1},
		{"AB==", 2},
		{"A=B=", 1},
		{"=AB", 0},
		{"======", 6},
	} {
		if got := countTrailing([]byte(tc.in), '='); got != tc.want {
			t.Fatalf("countTrailing(%q): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestWipe(t *testing.T) {
	x := []byte("secret key material")
	Wipe(x)
	for i, c := range x {
		if c != 0 {
			t.Fatalf("#%d: expected 0, got %#x", i, c)
		}
	}
	Wipe(nil)
}
