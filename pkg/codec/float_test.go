package codec

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func TestEncodeFloat32_KnownBytes(t *testing.T) {
	testCases := []struct {
		name  string
		value float32
		want  []byte
	}{
		{"one", 1.0, []byte{0x3F, 0x80, 0x00, 0x00}},
		{"negative two", -2.0, []byte{0xC0, 0x00, 0x00, 0x00}},
		{"zero", 0.0, []byte{0x00, 0x00, 0x00, 0x00}},
		{"negative zero", float32(math.Copysign(0, -1)), []byte{0x80, 0x00, 0x00, 0x00}},
		{"positive infinity", float32(math.Inf(1)), []byte{0x7F, 0x80, 0x00, 0x00}},
		{"negative infinity", float32(math.Inf(-1)), []byte{0xFF, 0x80, 0x00, 0x00}},
		{"smallest subnormal", math.Float32frombits(1), []byte{0x00, 0x00, 0x00, 0x01}},
		{"max float32", math.MaxFloat32, []byte{0x7F, 0x7F, 0xFF, 0xFF}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeFloat32(tc.value)
			if err != nil {
				t.Fatalf("EncodeFloat32(%v) failed: %v", tc.value, err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("EncodeFloat32(%v) = % X, want % X", tc.value, got, tc.want)
			}
		})
	}
}

func TestEncodeFloat64_KnownBytes(t *testing.T) {
	testCases := []struct {
		name  string
		value float64
		want  []byte
	}{
		{"one", 1.0, []byte{0x3F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"negative two", -2.0, []byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"zero", 0.0, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"negative zero", math.Copysign(0, -1), []byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"positive infinity", math.Inf(1), []byte{0x7F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"negative infinity", math.Inf(-1), []byte{0xFF, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"smallest subnormal", math.SmallestNonzeroFloat64, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeFloat64(tc.value)
			if err != nil {
				t.Fatalf("EncodeFloat64(%v) failed: %v", tc.value, err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("EncodeFloat64(%v) = % X, want % X", tc.value, got, tc.want)
			}
		})
	}
}

// The arithmetic encoder must agree with the host bit layout for every
// value it can represent, so math.Float64bits serves as the oracle.
func TestEncodeFloat64_MatchesHostBits(t *testing.T) {
	values := []float64{
		0, 1, -1, 0.5, -0.5, 2, 1024, 1.0 / 3.0,
		math.Pi, math.E, 6.02214076e23, -2.718e-20,
		math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		5e-324, 2.2250738585072009e-308, // largest subnormal
		2.2250738585072014e-308, // smallest normal
	}

	for _, v := range values {
		got, err := EncodeFloat64(v)
		if err != nil {
			t.Fatalf("EncodeFloat64(%v) failed: %v", v, err)
		}
		want := make([]byte, 8)
		binary.BigEndian.PutUint64(want, math.Float64bits(v))
		if !bytes.Equal(got, want) {
			t.Errorf("EncodeFloat64(%v) = % X, want % X", v, got, want)
		}
	}
}

func TestEncodeFloat32_MatchesHostBits(t *testing.T) {
	values := []float32{
		0, 1, -1, 0.5, 0.1, -12345.678, math.MaxFloat32,
		math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32,
		math.Float32frombits(0x007FFFFF), // largest subnormal
		math.Float32frombits(0x00800000), // smallest normal
	}

	for _, v := range values {
		got, err := EncodeFloat32(v)
		if err != nil {
			t.Fatalf("EncodeFloat32(%v) failed: %v", v, err)
		}
		want := make([]byte, 4)
		binary.BigEndian.PutUint32(want, math.Float32bits(v))
		if !bytes.Equal(got, want) {
			t.Errorf("EncodeFloat32(%v) = % X, want % X", v, got, want)
		}
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	values := []float64{
		0, 1, -1, 0.1, -0.1, 3.25, math.Pi, 1e300, -1e-300,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
	}

	for _, v := range values {
		encoded, err := EncodeFloat64(v)
		if err != nil {
			t.Fatalf("EncodeFloat64(%v) failed: %v", v, err)
		}
		if got := DecodeFloat64(encoded, false); got != v {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	values := []float32{0, 1, -1, 0.1, 3.25, 1e30, -1e-30, math.MaxFloat32, math.SmallestNonzeroFloat32}

	for _, v := range values {
		encoded, err := EncodeFloat32(v)
		if err != nil {
			t.Fatalf("EncodeFloat32(%v) failed: %v", v, err)
		}
		if got := DecodeFloat32(encoded, false); got != v {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}

func TestFloatSpecials(t *testing.T) {
	t.Run("NaN encodes canonically and decodes as NaN", func(t *testing.T) {
		encoded, err := EncodeFloat64(math.NaN())
		if err != nil {
			t.Fatalf("EncodeFloat64(NaN) failed: %v", err)
		}
		want := []byte{0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
		if !bytes.Equal(encoded, want) {
			t.Errorf("canonical NaN = % X, want % X", encoded, want)
		}
		if got := DecodeFloat64(encoded, false); !math.IsNaN(got) {
			t.Errorf("decoded canonical NaN = %v, want NaN", got)
		}
	})

	t.Run("infinities survive round trips", func(t *testing.T) {
		for _, sign := range []int{1, -1} {
			encoded, err := EncodeFloat64(math.Inf(sign))
			if err != nil {
				t.Fatalf("EncodeFloat64(Inf) failed: %v", err)
			}
			if got := DecodeFloat64(encoded, false); !math.IsInf(got, sign) {
				t.Errorf("decoded infinity (sign %d) = %v", sign, got)
			}
		}
	})

	t.Run("negative zero keeps its sign bit", func(t *testing.T) {
		encoded, err := EncodeFloat64(math.Copysign(0, -1))
		if err != nil {
			t.Fatalf("EncodeFloat64(-0) failed: %v", err)
		}
		got := DecodeFloat64(encoded, false)
		if got != 0 || !math.Signbit(got) {
			t.Errorf("decoded negative zero = %v (signbit %v)", got, math.Signbit(got))
		}
	})
}

func TestDecodeFloat_LittleEndian(t *testing.T) {
	encoded, err := EncodeFloat64(math.Pi)
	if err != nil {
		t.Fatalf("EncodeFloat64 failed: %v", err)
	}
	if got := DecodeFloat64(reversed(encoded), true); got != math.Pi {
		t.Errorf("little-endian decode of reversed bytes = %v, want %v", got, math.Pi)
	}

	single, err := EncodeFloat32(1.5)
	if err != nil {
		t.Fatalf("EncodeFloat32 failed: %v", err)
	}
	if got := DecodeFloat32(reversed(single), true); got != 1.5 {
		t.Errorf("little-endian decode of reversed bytes = %v, want 1.5", got)
	}
}
