package codec

// EncodeUint serializes the low width bytes of value most-significant byte
// first. width must be between 1 and 4. Values outside [0, 256^width) wrap
// modulo 256^width; truncation is the documented policy, not an error, so
// callers can pass wider values and keep exactly the bytes that fit.
func EncodeUint(value uint64, width int) []byte {
	b := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		b[i] = byte(value % 256)
		value /= 256
	}
	return b
}

// DecodeUint deserializes b as an unsigned integer. The bytes are read
// most-significant first; littleEndian reverses the byte order before
// decoding. Any length from 0 to 8 bytes is accepted; an empty slice
// decodes to 0.
func DecodeUint(b []byte, littleEndian bool) uint64 {
	var out uint64
	if littleEndian {
		for i := len(b) - 1; i >= 0; i-- {
			out = out*256 + uint64(b[i])
		}
		return out
	}
	for _, c := range b {
		out = out*256 + uint64(c)
	}
	return out
}

// reversed returns a copy of b with the byte order flipped. The input is
// never mutated; callers may be decoding from a shared buffer.
func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
