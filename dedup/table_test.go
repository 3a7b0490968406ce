package dedup

import (
	"math"
	"sync"
	"testing"

	"github.com/gogpu/ggmath"
)

func TestTable_Intern(t *testing.T) {
	tab := NewTable()

	tests := []struct {
		x, y      float32
		wantID    uint64
		wantAdded bool
	}{
		{1, 2, 0, true},
		{3, 4, 1, true},
		{1, 2, 0, false},
		{float32(math.Copysign(0, -1)), 0, 2, true},
		{0, float32(math.Copysign(0, -1)), 2, false},
		{float32(math.NaN()), 1, 3, true},
		{math.Float32frombits(0x7F800001), 1, 3, false},
	}

	for i, tt := range tests {
		id, added := tab.Intern(tt.x, tt.y)
		if id != tt.wantID || added != tt.wantAdded {
			t.Errorf("step %d: Intern(%v, %v) = (%d, %v), want (%d, %v)",
				i, tt.x, tt.y, id, added, tt.wantID, tt.wantAdded)
		}
	}

	if tab.Len() != 4 {
		t.Errorf("Len() = %d, want 4", tab.Len())
	}

	st := tab.Stats()
	if st.Hits != 3 || st.Misses != 4 || st.Len != 4 {
		t.Errorf("Stats() = %+v, want 3 hits, 4 misses, len 4", st)
	}
}

func TestTable_Lookup(t *testing.T) {
	tab := NewTable()
	tab.Intern(5, 6)

	if id, ok := tab.Lookup(5, 6); !ok || id != 0 {
		t.Errorf("Lookup(5, 6) = (%d, %v), want (0, true)", id, ok)
	}
	if _, ok := tab.Lookup(6, 5); ok {
		t.Error("Lookup(6, 5) found an unseen point")
	}
	if tab.Len() != 1 {
		t.Errorf("Lookup changed Len() to %d", tab.Len())
	}
}

func TestTable_Points(t *testing.T) {
	tab := NewTable()
	want := []Point{{1, 1}, {2, 2}, {3, 3}}
	for _, p := range want {
		tab.Intern(p.X, p.Y)
	}
	tab.Intern(2, 2)

	got := tab.Points()
	if len(got) != len(want) {
		t.Fatalf("Points() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Points()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTable_WithPrecision(t *testing.T) {
	tab := NewTable(WithPrecision(ggmath.MustPrecision(2)))

	a, _ := tab.Intern(1.01, 1.01)
	b, added := tab.Intern(0.99, 1.1)
	if added || a != b {
		t.Errorf("points within 1/8 of the same grid point got ids %d and %d", a, b)
	}
	if c, _ := tab.Intern(1.25, 1); c == a {
		t.Error("points one step apart got the same id")
	}

	// Points keeps the first point seen, not the rounded one.
	if p := tab.Points()[a]; p != (Point{1.01, 1.01}) {
		t.Errorf("Points()[%d] = %v, want {1.01 1.01}", a, p)
	}
}

func TestTable_IDsPastUint32(t *testing.T) {
	tab := NewTable()
	tab.next.Store(math.MaxUint32)

	a, _ := tab.Intern(1, 1)
	b, _ := tab.Intern(2, 2)
	if a != math.MaxUint32 || b != 1<<32 {
		t.Errorf("ids = %d, %d, want %d, %d", a, b, uint64(math.MaxUint32), uint64(1<<32))
	}
	if id, ok := tab.Lookup(2, 2); !ok || id != b {
		t.Errorf("Lookup(2, 2) = (%d, %v), want (%d, true)", id, ok, b)
	}
	if id, added := tab.Intern(1, 1); added || id != a {
		t.Errorf("Intern(1, 1) again = (%d, %v), want (%d, false)", id, added, a)
	}
}

func TestTable_Concurrent(t *testing.T) {
	tab := NewTable()
	const n = 500

	var wg sync.WaitGroup
	ids := make([][]uint64, 8)
	for g := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[g] = make([]uint64, n)
			for i := range n {
				ids[g][i], _ = tab.Intern(float32(i), float32(-i))
			}
		}()
	}
	wg.Wait()

	if tab.Len() != n {
		t.Fatalf("Len() = %d, want %d", tab.Len(), n)
	}
	for g := 1; g < len(ids); g++ {
		for i := range n {
			if ids[g][i] != ids[0][i] {
				t.Fatalf("goroutine %d got id %d for point %d, goroutine 0 got %d", g, ids[g][i], i, ids[0][i])
			}
		}
	}

	seen := make([]bool, n)
	for _, p := range tab.Points() {
		i := int(p.X)
		if p.Y != -p.X || seen[i] {
			t.Fatalf("Points() has unexpected or duplicate point %v", p)
		}
		seen[i] = true
	}
}

func BenchmarkTable_InternHit(b *testing.B) {
	tab := NewTable()
	tab.Intern(1, 2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tab.Intern(1, 2)
	}
}
