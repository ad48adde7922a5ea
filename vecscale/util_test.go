package vecscale

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func checkStrict(t *testing.T, tab *Table) {
	t.Helper()
	vals := tab.Values()
	if vals[0] < 1 {
		t.Fatalf("floor = %d, want >= 1", vals[0])
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			t.Fatalf("entry %d = %d, not above entry %d = %d", i, vals[i], i-1, vals[i-1])
		}
	}
}

// ratioCurve is an exact curve num(i)/den, for pinning rounding of ties.
type ratioCurve struct {
	num func(i int) uint64
	den uint64
}

func (c ratioCurve) Name() string                    { return "ratio" }
func (c ratioCurve) At(i, _ int) float64             { return float64(c.num(i)) / float64(c.den) }
func (c ratioCurve) Ratio(i, _ int) (uint64, uint64) { return c.num(i), c.den }
