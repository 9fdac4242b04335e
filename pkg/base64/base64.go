// Package base64 implements the standard Base64 text codec (A-Z a-z 0-9 +
// / with = padding) as a sliding 6-bit accumulator. It is independent of
// the binary codecs and is used only at the text boundary.
//
// The decoder is deliberately tolerant of padding: an = contributes six
// zero bits wherever it appears and marks the trailing bytes it produced
// for removal. Any other byte outside the alphabet is a decode error.
package base64

import "fmt"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// InvalidByteError reports an input byte outside the Base64 alphabet.
type InvalidByteError struct {
	Byte byte // offending byte
	Pos  int  // 0-based offset within the input
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("base64: invalid byte %q at offset %d", e.Byte, e.Pos)
}

// Encode packs data into Base64 text. Each input byte feeds 8 bits into
// the accumulator and every 6 accumulated bits emit one alphabet
// character; a final partial group is left-shifted into alignment. The
// output is padded with = to a multiple of 4 characters.
func Encode(data []byte) string {
	out := make([]byte, 0, (len(data)+2)/3*4)
	acc, nbits := uint(0), uint(0)
	for _, b := range data {
		acc = acc<<8 | uint(b)
		nbits += 8
		for nbits >= 6 {
			nbits -= 6
			out = append(out, alphabet[(acc>>nbits)&0x3F])
		}
	}
	if nbits > 0 {
		out = append(out, alphabet[(acc<<(6-nbits))&0x3F])
	}
	for len(out)%4 != 0 {
		out = append(out, '=')
	}
	return string(out)
}

// Decode unpacks Base64 text into bytes. Each alphabet byte contributes 6
// bits and every 8 accumulated bits emit one output byte. Pad bytes
// contribute six zero bits and the bytes they manufacture are stripped
// from the tail. A byte outside the alphabet fails with a
// *InvalidByteError naming the byte and its offset.
func Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/4*3)
	acc, nbits := uint(0), uint(0)
	pad := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		var v uint
		switch {
		case c >= 'A' && c <= 'Z':
			v = uint(c - 'A')
		case c >= 'a' && c <= 'z':
			v = uint(c-'a') + 26
		case c >= '0' && c <= '9':
			v = uint(c-'0') + 52
		case c == '+':
			v = 62
		case c == '/':
			v = 63
		case c == '=':
			pad++
		default:
			return nil, &InvalidByteError{Byte: c, Pos: i}
		}
		acc = acc<<6 | v
		nbits += 6
		if nbits >= 8 {
			nbits -= 8
			out = append(out, byte((acc>>nbits)&0xFF))
		}
	}
	if pad > len(out) {
		pad = len(out)
	}
	return out[:len(out)-pad], nil
}
