package radix

import "runtime"

// Wipe sets every byte in x to zero.
//
// Decoders use it to clear scratch copies of their input, which
// may be key material. Only x's backing array is cleared: copies
// left behind by earlier growth of the slice are not.
//
//go:noinline
func Wipe(x []byte) {
	for i := range x {
		x[i] = 0
	}
	// Keep the loop from being removed as a dead store.
	runtime.KeepAlive(x)
}
