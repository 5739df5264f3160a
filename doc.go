// Package radix implements the shared pieces of the codecs in this
// module: immutable alphabets, a generic bit-grouping encoder for
// power-of-two radices, constant-time helpers, and the error
// values reported by every decoder.
//
// The concrete codecs live in sub-packages:
//
//    base64     RFC 4648 base64 and base64url
//    base32     RFC 4648 base32
//    hex        lower-case hexadecimal
//    bitstring  space-separated binary digits
//    base58     Bitcoin base58
//    uescape    \uXXXX escape sequences
//    token      structural header.payload.signature decoding
//    codec      all of the above, plus URL and HTML escaping,
//               looked up by name
//
// Every function in this module is pure and safe for concurrent
// use. Package-level alphabets and encodings are built during
// initialization and never modified afterward.
package radix
