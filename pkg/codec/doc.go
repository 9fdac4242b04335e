// Package codec provides stateless fixed-width binary codecs for RuneStream.
//
// The codec package converts between numeric values and byte sequences
// without consulting the host representation of those values: integers are
// peeled apart with division and remainder, floating-point values are
// decomposed into sign, exponent and mantissa with exact power-of-two
// scaling. This is the foundation for RuneStream's read and write cursors.
//
// # Integer Layout
//
// Unsigned integers occupy 1 to 4 bytes, most-significant byte first:
//
//	EncodeUint(0x01020304, 4)  =>  [0x01 0x02 0x03 0x04]
//
// Values wider than the requested width wrap modulo 256^width. Decoding
// accepts an optional little-endian flag that reverses the byte order
// before accumulation.
//
// # Float Layout
//
// Floats follow IEEE-754 binary32 and binary64 exactly, packed
// most-significant byte first:
//
//	[sign(1)][exponent(8)][mantissa(23)]     binary32
//	[sign(1)][exponent(11)][mantissa(52)]    binary64
//
// The exponent field carries the offset form (bias 127 or 1023). A zero
// field marks a subnormal value with no implicit leading mantissa bit; an
// all-ones field marks infinity (zero mantissa) or NaN (nonzero mantissa).
// Encoding collapses every NaN to the canonical quiet form with an all-ones
// mantissa; payload bits are not preserved. A finite magnitude whose
// exponent cannot be represented fails with ErrExponentRange.
//
// # Round Trips
//
// Decoding inverts encoding bit for bit: every finite value, both zeros,
// both infinities and subnormals survive a round trip unchanged, and NaN
// decodes to a value for which math.IsNaN holds.
//
// All functions are pure and safe for concurrent use.
package codec
