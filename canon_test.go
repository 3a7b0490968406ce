package ggmath

import (
	"math"
	"testing"
)

func TestCanonBits_NaN(t *testing.T) {
	nan0 := float32(math.NaN())
	nan1 := nan0 + 1.0

	if nan0 == nan1 {
		t.Fatal("NaN compared equal to NaN")
	}
	if CanonBits(nan0) != CanonBits(nan1) {
		t.Errorf("CanonBits(NaN) = %#x, CanonBits(NaN+1) = %#x, want equal", CanonBits(nan0), CanonBits(nan1))
	}
}

func TestCanonBits_NaNPayloads(t *testing.T) {
	patterns := []uint32{
		0x7FC00000, // quiet NaN
		0xFFC00000, // negative quiet NaN
		0x7F800001, // signaling NaN, smallest payload
		0x7FBFFFFF, // signaling NaN, largest payload
		0xFFFFFFFF, // all bits set
		0x7FC12345, // quiet NaN with payload
	}

	for _, bits := range patterns {
		x := math.Float32frombits(bits)
		if got := CanonBits(x); got != CanonNaNBits {
			t.Errorf("CanonBits(%#x) = %#x, want %#x", bits, got, CanonNaNBits)
		}
	}
}

func TestCanonBits_Zero(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	posZero := float32(0)

	if negZero != posZero {
		t.Fatal("-0 != +0")
	}
	if math.Float32bits(negZero) == math.Float32bits(posZero) {
		t.Fatal("raw bits of -0 and +0 should differ")
	}
	if CanonBits(negZero) != CanonBits(posZero) {
		t.Errorf("CanonBits(-0) = %#x, CanonBits(+0) = %#x, want equal", CanonBits(negZero), CanonBits(posZero))
	}
	if CanonBits(negZero) != 0 {
		t.Errorf("CanonBits(-0) = %#x, want 0", CanonBits(negZero))
	}
}

func TestCanonBits_RawForOtherValues(t *testing.T) {
	tests := []struct {
		name string
		x    float32
	}{
		{"one", 1},
		{"negative", -123.456},
		{"smallest subnormal", math.Float32frombits(1)},
		{"negative subnormal", math.Float32frombits(0x80000001)},
		{"max", math.MaxFloat32},
		{"smallest normal", math.Float32frombits(0x00800000)},
		{"+Inf", float32(math.Inf(1))},
		{"-Inf", float32(math.Inf(-1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := CanonBits(tt.x), math.Float32bits(tt.x); got != want {
				t.Errorf("CanonBits(%v) = %#x, want %#x", tt.x, got, want)
			}
		})
	}
}

func TestCanonBits_Idempotent(t *testing.T) {
	values := []float32{
		float32(math.NaN()),
		math.Float32frombits(0xFFC00001),
		float32(math.Copysign(0, -1)),
		0, 1, -1, 3.5e-40, float32(math.Inf(-1)),
	}

	for _, x := range values {
		c := CanonBits(x)
		if again := CanonBits(math.Float32frombits(c)); again != c {
			t.Errorf("CanonBits(canon(%v)) = %#x, want %#x", x, again, c)
		}
		if got := math.Float32bits(Canon(x)); got != c {
			t.Errorf("Float32bits(Canon(%v)) = %#x, want %#x", x, got, c)
		}
	}
}

func TestCanonEqual(t *testing.T) {
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))

	tests := []struct {
		name string
		a, b float32
		want bool
	}{
		{"nan nan", nan, math.Float32frombits(0xFF800001), true},
		{"zeros", negZero, 0, true},
		{"equal", 2.5, 2.5, true},
		{"different", 2.5, 2.25, false},
		{"nan vs number", nan, 0, false},
		{"opposite infinities", float32(math.Inf(1)), float32(math.Inf(-1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("CanonEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func BenchmarkCanonBits(b *testing.B) {
	vals := []float32{1, float32(math.NaN()), 0, -2.5}
	var sink uint32
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink ^= CanonBits(vals[i&3])
	}
	_ = sink
}
