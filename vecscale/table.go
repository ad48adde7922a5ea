package vecscale

import "math"

// Stats records what the encoder had to fix while building a table.
type Stats struct {
	Repairs     int  // entries bumped to keep the table strictly increasing
	FloorRaised bool // entry 0 rounded to zero and was raised to 1
	Min, Max    uint16
}

// Table is an immutable scale table, one entry per pixel of the display
// diameter. It is safe for concurrent use.
type Table struct {
	vals     []uint16
	fracBits uint
	stats    Stats
}

func (t *Table) Diameter() int  { return len(t.vals) }
func (t *Table) FracBits() uint { return t.fracBits }
func (t *Table) Stats() Stats   { return t.stats }

// Values returns a copy of the entries.
func (t *Table) Values() []uint16 {
	out := make([]uint16, len(t.vals))
	copy(out, t.vals)
	return out
}

// Lookup returns the scale for radial index i, clamped to [0, Diameter()-1].
func (t *Table) Lookup(i int) uint16 {
	return t.vals[t.clamp(i)]
}

// LookupRadius truncates a radius computed from floating geometry to a pixel
// index and looks it up. NaN maps to index 0.
func (t *Table) LookupRadius(r float64) uint16 {
	switch {
	case math.IsNaN(r) || r < 0:
		return t.vals[0]
	case r >= float64(len(t.vals)-1):
		return t.vals[len(t.vals)-1]
	}
	return t.vals[int(r)]
}

// Scale returns entry i as a real factor, value / 2^F.
func (t *Table) Scale(i int) float64 {
	return math.Ldexp(float64(t.Lookup(i)), -int(t.fracBits))
}

// Project scales the fixed-point coordinate v by entry i. The product is
// shifted right by F (rounding toward -inf) and saturated to int32.
func (t *Table) Project(i int, v int32) int32 {
	p := (int64(v) * int64(t.Lookup(i))) >> t.fracBits
	if p > math.MaxInt32 {
		return math.MaxInt32
	}
	if p < math.MinInt32 {
		return math.MinInt32
	}
	return int32(p)
}

// Equal reports whether both tables hold the same entries at the same width.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.fracBits != o.fracBits || len(t.vals) != len(o.vals) {
		return false
	}
	for i, v := range t.vals {
		if o.vals[i] != v {
			return false
		}
	}
	return true
}

func (t *Table) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(t.vals) {
		return len(t.vals) - 1
	}
	return i
}

// fromValues wraps already-encoded entries after checking length, fixed-point
// format and strict increase. vals is retained.
func fromValues(vals []uint16, fracBits uint) (*Table, error) {
	if len(vals) < 2 {
		return nil, configErr(ErrTableLength, -1, "got %d entries", len(vals))
	}
	if fracBits == 0 || fracBits > MaxFracBits {
		return nil, configErr(ErrFracBits, -1, "got %d, want 1..%d", fracBits, MaxFracBits)
	}
	if vals[0] == 0 {
		return nil, configErr(ErrNotMonotone, 0, "zero floor")
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			return nil, configErr(ErrNotMonotone, i, "%d after %d", vals[i], vals[i-1])
		}
	}
	return &Table{
		vals:     vals,
		fracBits: fracBits,
		stats:    Stats{Min: vals[0], Max: vals[len(vals)-1]},
	}, nil
}
