package vecscale

import (
	"math"
	"testing"
)

func TestLookupClamps(t *testing.T) {
	tab := Default()
	if tab.Lookup(-5) != tab.Lookup(0) {
		t.Errorf("Lookup(-5) = %d, want %d", tab.Lookup(-5), tab.Lookup(0))
	}
	if tab.Lookup(Diameter+100) != tab.Lookup(Diameter-1) {
		t.Errorf("Lookup(D+100) = %d, want %d", tab.Lookup(Diameter+100), tab.Lookup(Diameter-1))
	}
	if got := tab.Lookup(1); got != 410 {
		t.Errorf("Lookup(1) = %d, want 410", got)
	}
}

func TestLookupRadius(t *testing.T) {
	tab := Default()
	tests := []struct {
		r    float64
		want uint16
	}{
		{-0.3, 137},
		{math.NaN(), 137},
		{0.99, 137},
		{1.0, 410},
		{10.9, tab.Lookup(10)},
		{239.7, 65399},
		{1e12, 65399},
		{math.Inf(1), 65399},
		{math.Inf(-1), 137},
	}
	for _, tt := range tests {
		if got := tab.LookupRadius(tt.r); got != tt.want {
			t.Errorf("LookupRadius(%v) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestProject(t *testing.T) {
	tab := Default()
	if got := tab.Project(0, 1<<16); got != 137 {
		t.Errorf("Project(0, 1.0) = %d, want 137", got)
	}
	if got := tab.Project(239, -(1 << 16)); got != -65399 {
		t.Errorf("Project(239, -1.0) = %d, want -65399", got)
	}
	// Arithmetic shift rounds toward -inf.
	if got := tab.Project(0, -1); got != -1 {
		t.Errorf("Project(0, -1) = %d, want -1", got)
	}
	if got := tab.Project(-7, 1<<16); got != 137 {
		t.Errorf("Project clamps index: got %d", got)
	}

	wide := MustBuild(Config{Diameter: 16, FracBits: 1, Curve: Constant(0.5)})
	// Entry 15 is 16, so the scale is 8.0.
	if got := wide.Project(15, math.MaxInt32); got != math.MaxInt32 {
		t.Errorf("Project saturates: got %d", got)
	}
	if got := wide.Project(15, math.MinInt32); got != math.MinInt32 {
		t.Errorf("Project saturates: got %d", got)
	}
}

func TestScale(t *testing.T) {
	tab := Default()
	if got, want := tab.Scale(0), 137.0/65536; got != want {
		t.Errorf("Scale(0) = %v, want %v", got, want)
	}
	for i := 0; i < tab.Diameter(); i++ {
		if s := tab.Scale(i); s <= 0 || s >= 1 {
			t.Fatalf("Scale(%d) = %v out of (0, 1)", i, s)
		}
	}
}

func TestValuesIsACopy(t *testing.T) {
	tab := Default()
	v := tab.Values()
	v[0] = 0
	if tab.Lookup(0) != 137 {
		t.Fatalf("table mutated through Values")
	}
}

func TestEqual(t *testing.T) {
	a := MustBuild(Config{Diameter: 240})
	if !a.Equal(Default()) {
		t.Errorf("built table != default")
	}
	if a.Equal(MustBuild(Config{Diameter: 240, FracBits: 15})) {
		t.Errorf("tables with different widths compare equal")
	}
	if a.Equal(nil) {
		t.Errorf("table equals nil")
	}
	var n *Table
	if !n.Equal(nil) {
		t.Errorf("nil != nil")
	}
}
