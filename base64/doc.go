// Package base64 implements constant-time base64 encoding and
// decoding as specified by RFC 4648.
//
// Comparison to encoding/base64
//
// This package is almost, but not exactly a drop-in replacement
// for encoding/base64.
//
// Unlike encoding/base64, the Encoding methods reject the
// newline characters '\r' and '\n'. The package-level
// DecodeString and URLDecodeString functions are lenient
// instead: they ignore all ASCII whitespace and accept both
// padded and unpadded input.
//
// Unlike encoding/base64, this package does not return partial
// Base64-encoded data. For example:
//
//    src := []byte("aGVsb?8=")
//    base64.StdEncoding.Decode(dst, src) // 3, CorruptInputError(5)
//    StdEncoding.Decode(dst, src)        // 0, ErrCorrupt
//
// Unlike encoding/base64, this package distinguishes between
// input with an impossible length (ErrLength) and input with a
// character outside of the alphabet (ErrCorrupt).
package base64
