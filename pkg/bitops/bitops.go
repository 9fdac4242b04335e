// Package bitops provides bit-field primitives over unsigned 32-bit values.
//
// The binary codecs treat serialized words as plain numbers and carve their
// sign, exponent and mantissa fields out of them; this package is that
// carving layer. Bit 0 is the least significant bit throughout.
package bitops

// Not returns the complement of a within 32 bits.
func Not(a uint32) uint32 {
	return 0xFFFFFFFF - a
}

// LeftShift returns a shifted left by n bits, truncated to 32 bits.
// Shift counts of 32 or more yield 0.
func LeftShift(a uint32, n uint) uint32 {
	if n >= 32 {
		return 0
	}
	return a << n
}

// RightShift returns a shifted right by n bits. Shift counts of 32 or more
// yield 0.
func RightShift(a uint32, n uint) uint32 {
	if n >= 32 {
		return 0
	}
	return a >> n
}

// GetBit returns the single bit of v at position i, as 0 or 1.
func GetBit(v uint32, i uint) uint32 {
	return RightShift(v, i) & 1
}

// GetBits extracts the inclusive bit range [from, to] of v, shifted down so
// that bit from becomes bit 0 of the result. from must not exceed to.
func GetBits(v uint32, from, to uint) uint32 {
	width := to - from + 1
	if width >= 32 {
		return RightShift(v, from)
	}
	mask := LeftShift(1, width) - 1
	return RightShift(v, from) & mask
}
