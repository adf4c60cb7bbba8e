// Package hexdecode provides strict hexadecimal-nibble decoding for the
// compact save-ID encodings puzzle back-ends use to persist grid state in a
// short ASCII string.
//
// What
//
//   - DecodeNibble(c): map a single ASCII hex digit ('0'-'9', 'a'-'f',
//     'A'-'F') to its 4-bit value.
//   - Decode(s): decode a full even-length hex string into bytes.
//
// Why
//
//   - latin's EncodeGrid/DecodeGrid pack a grid into two hex nibbles per
//     cell; EncodeGrid writes with encoding/hex, and DecodeGrid reads through
//     this package rather than encoding/hex, because encoding/hex's Decode is
//     byte-oriented and does not expose a single-nibble entry point, and per-nibble decoding
//     with a precise error on the offending character is what a save-ID
//     parser needs to give a useful "corrupt save file" message.
//
// Errors
//
//   - *InvalidNibbleError names the exact offending byte.
//   - ErrOddLength is returned by Decode for a string of odd length.
package hexdecode
