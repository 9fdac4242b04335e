package codec

import (
	"errors"
	"math"

	"github.com/ssargent/runestream/pkg/bitops"
)

// ErrExponentRange is returned when a finite magnitude needs an exponent
// outside the representable range of the target format.
var ErrExponentRange = errors.New("codec: magnitude outside representable exponent range")

// IEEE-754 format parameters. The exponent field is offset by the bias;
// an all-ones field (2*bias+1) marks infinity and NaN.
const (
	singleBias     = 127
	singleMantBits = 23
	doubleBias     = 1023
	doubleMantBits = 52
)

// ieeeSplit decomposes v into the sign, biased exponent field and integer
// mantissa of an IEEE-754 encoding, using only arithmetic on the value.
// The mantissa is returned as a float64 holding an exact integer below
// 2^mantBits.
//
// Special cases: zero keeps its sign and gets the minimum exponent field;
// infinity gets the all-ones field with a zero mantissa; NaN is collapsed
// to the canonical quiet form (all-ones field, all-ones mantissa, sign 0),
// so distinguishable NaN payloads are not preserved.
func ieeeSplit(v float64, bias int, mantBits uint) (sign, exp uint32, mant float64, err error) {
	if math.Signbit(v) {
		sign = 1
	}
	allOnes := uint32(2*bias + 1)
	switch {
	case v == 0:
		return sign, 0, 0, nil
	case math.IsInf(v, 0):
		return sign, allOnes, 0, nil
	case math.IsNaN(v):
		return 0, allOnes, math.Ldexp(1, int(mantBits)) - 1, nil
	}

	a := math.Abs(v)
	e := int(math.Floor(math.Log2(a)))
	// Log2 can land one off near power-of-two boundaries; correct the
	// estimate against exact power-of-two scaling.
	if math.Ldexp(a, -e) < 1 {
		e--
	}
	if math.Ldexp(a, -e) >= 2 {
		e++
	}
	if e > bias {
		return 0, 0, 0, ErrExponentRange
	}
	if e < 1-bias {
		// Subnormal: zero exponent field, no implicit leading bit. The
		// fraction is scaled by the fixed minimum exponent 1-bias instead
		// of e.
		return sign, 0, math.Ldexp(a, bias-1+int(mantBits)), nil
	}
	// Normal: drop the implicit leading 1 and keep the fractional bits.
	return sign, uint32(e + bias), math.Ldexp(math.Ldexp(a, -e)-1, int(mantBits)), nil
}

// ieeeJoin is the inverse of ieeeSplit: it rebuilds the value from the
// sign, biased exponent field and integer mantissa.
func ieeeJoin(sign, exp uint32, mant float64, bias int, mantBits uint) float64 {
	allOnes := uint32(2*bias + 1)
	var v float64
	switch {
	case exp == allOnes && mant == 0:
		v = math.Inf(1)
	case exp == allOnes:
		return math.NaN()
	case exp == 0:
		// Subnormal (or zero): no implicit leading bit, fixed minimum
		// exponent.
		v = math.Ldexp(math.Ldexp(mant, -int(mantBits)), 1-bias)
	default:
		v = math.Ldexp(1+math.Ldexp(mant, -int(mantBits)), int(exp)-bias)
	}
	if sign == 1 {
		return -v
	}
	return v
}

// EncodeFloat32 serializes v as 4 big-endian bytes in IEEE-754 binary32
// layout: sign bit, 8-bit offset exponent, 23-bit mantissa.
func EncodeFloat32(v float32) ([]byte, error) {
	sign, exp, mant, err := ieeeSplit(float64(v), singleBias, singleMantBits)
	if err != nil {
		return nil, err
	}
	word := uint64(sign)<<31 | uint64(exp)<<23 | uint64(mant)
	return EncodeUint(word, 4), nil
}

// EncodeFloat64 serializes v as 8 big-endian bytes in IEEE-754 binary64
// layout: sign bit, 11-bit offset exponent, 52-bit mantissa.
func EncodeFloat64(v float64) ([]byte, error) {
	sign, exp, mant, err := ieeeSplit(v, doubleBias, doubleMantBits)
	if err != nil {
		return nil, err
	}
	// The mantissa straddles the word boundary: its high 20 bits join the
	// sign and exponent in the first word, the low 32 bits fill the second.
	mantHi := math.Floor(mant / (1 << 32))
	mantLo := mant - mantHi*(1<<32)
	hi := uint64(sign)<<31 | uint64(exp)<<20 | uint64(mantHi)
	out := make([]byte, 0, 8)
	out = append(out, EncodeUint(hi, 4)...)
	out = append(out, EncodeUint(uint64(mantLo), 4)...)
	return out, nil
}

// DecodeFloat32 deserializes 4 bytes in IEEE-754 binary32 layout. The
// bytes are read most-significant first; littleEndian reverses them.
// b must hold exactly 4 bytes.
func DecodeFloat32(b []byte, littleEndian bool) float32 {
	if littleEndian {
		b = reversed(b)
	}
	word := uint32(DecodeUint(b, false))
	sign := bitops.GetBit(word, 31)
	exp := bitops.GetBits(word, 23, 30)
	mant := float64(bitops.GetBits(word, 0, 22))
	return float32(ieeeJoin(sign, exp, mant, singleBias, singleMantBits))
}

// DecodeFloat64 deserializes 8 bytes in IEEE-754 binary64 layout. The
// bytes are read most-significant first; littleEndian reverses them.
// b must hold exactly 8 bytes.
func DecodeFloat64(b []byte, littleEndian bool) float64 {
	if littleEndian {
		b = reversed(b)
	}
	hi := uint32(DecodeUint(b[:4], false))
	lo := uint32(DecodeUint(b[4:8], false))
	sign := bitops.GetBit(hi, 31)
	exp := bitops.GetBits(hi, 20, 30)
	mant := float64(bitops.GetBits(hi, 0, 19))*(1<<32) + float64(lo)
	return ieeeJoin(sign, exp, mant, doubleBias, doubleMantBits)
}
