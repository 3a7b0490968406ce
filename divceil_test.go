package ggmath

import (
	"math"
	"runtime"
	"strings"
	"testing"
)

func TestDivCeil(t *testing.T) {
	tests := []struct {
		a, b uint32
		want uint32
	}{
		{7, 2, 4},
		{8, 2, 4},
		{0, 5, 0},
		{1, 1, 1},
		{1, 64, 1},
		{64, 64, 1},
		{65, 64, 2},
		{300, 64, 5},
		{5, 7, 1},
	}

	for _, tt := range tests {
		if got := DivCeil(tt.a, tt.b); got != tt.want {
			t.Errorf("DivCeil(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDivCeil_NearMax(t *testing.T) {
	if got := DivCeil[uint8](255, 2); got != 128 {
		t.Errorf("DivCeil[uint8](255, 2) = %d, want 128", got)
	}
	if got := DivCeil[uint8](255, 255); got != 1 {
		t.Errorf("DivCeil[uint8](255, 255) = %d, want 1", got)
	}
	if got := DivCeil[uint16](math.MaxUint16, 16); got != 4096 {
		t.Errorf("DivCeil[uint16](MaxUint16, 16) = %d, want 4096", got)
	}
	if got := DivCeil[uint32](math.MaxUint32, 2); got != 1<<31 {
		t.Errorf("DivCeil[uint32](MaxUint32, 2) = %d, want %d", got, uint32(1<<31))
	}
	if got := DivCeil[uint64](math.MaxUint64, 1<<32); got != 1<<32 {
		t.Errorf("DivCeil[uint64](MaxUint64, 2^32) = %d, want %d", got, uint64(1<<32))
	}
	if got := DivCeil[uint](math.MaxUint, math.MaxUint); got != 1 {
		t.Errorf("DivCeil[uint](MaxUint, MaxUint) = %d, want 1", got)
	}
	if got := DivCeil[uint64](math.MaxUint64, 1); got != math.MaxUint64 {
		t.Errorf("DivCeil[uint64](MaxUint64, 1) = %d, want MaxUint64", got)
	}
}

func TestDivCeil_MatchesFormula(t *testing.T) {
	// Away from overflow the result equals (a + b - 1) / b.
	for a := uint32(0); a < 200; a++ {
		for b := uint32(1); b < 20; b++ {
			if got, want := DivCeil(a, b), (a+b-1)/b; got != want {
				t.Fatalf("DivCeil(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestDivCeil_NamedType(t *testing.T) {
	type tileCount uint16
	if got := DivCeil(tileCount(100), tileCount(32)); got != 4 {
		t.Errorf("DivCeil(tileCount(100), 32) = %d, want 4", got)
	}
}

func TestDivCeil_DivisionByZero(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("DivCeil(7, 0) did not panic")
		}
		err, ok := r.(runtime.Error)
		if !ok {
			t.Fatalf("DivCeil(7, 0) panic = %T, want runtime.Error", r)
		}
		if !strings.Contains(err.Error(), "divide by zero") {
			t.Errorf("DivCeil(7, 0) panic = %q, want integer divide by zero", err.Error())
		}
	}()

	var zero uint32
	_ = DivCeil(uint32(7), zero)
}
