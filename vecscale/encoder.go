package vecscale

import "math"

const (
	// MaxValue is the largest encodable scale.
	MaxValue = math.MaxUint16
	// DefaultFracBits is the fixed-point width used by the firmware renderer.
	DefaultFracBits = 16
	// MaxFracBits is the widest fractional part a 16-bit value can carry.
	MaxFracBits = 16
)

// Encoder quantizes curve samples into a Table.
//
// The zero value encodes with DefaultFracBits and RoundHalfUp.
type Encoder struct {
	FracBits uint
	Rounding Rounding
}

func (e Encoder) fracBits() (uint, error) {
	f := e.FracBits
	if f == 0 {
		f = DefaultFracBits
	}
	if f > MaxFracBits {
		return 0, configErr(ErrFracBits, -1, "got %d, want 1..%d", f, MaxFracBits)
	}
	return f, nil
}

// Encode quantizes precomputed samples (fractions of full scale).
func (e Encoder) Encode(samples []float64) (*Table, error) {
	if len(samples) < 2 {
		return nil, configErr(ErrDiameter, -1, "got %d samples", len(samples))
	}
	f, err := e.fracBits()
	if err != nil {
		return nil, err
	}
	raw := make([]uint64, len(samples))
	for i, s := range samples {
		v, err := e.quantize(s, f, i)
		if err != nil {
			return nil, err
		}
		raw[i] = v
	}
	return finish(raw, f)
}

// EncodeCurve samples c at every radial index of diameter and quantizes it.
func (e Encoder) EncodeCurve(c Curve, diameter int) (*Table, error) {
	if diameter < 2 {
		return nil, configErr(ErrDiameter, -1, "got %d", diameter)
	}
	if c == nil {
		c = PixelCenter
	}
	f, err := e.fracBits()
	if err != nil {
		return nil, err
	}
	raw := make([]uint64, diameter)
	rc, exact := c.(RationalCurve)
	for i := range raw {
		if exact {
			num, den := rc.Ratio(i, diameter)
			if den == 0 {
				return nil, configErr(ErrCurve, i, "%s: zero denominator", c.Name())
			}
			q, ok := e.Rounding.ratio(num, den, f)
			if !ok || q > MaxValue {
				return nil, configErr(ErrOverflow, i, "%s: %d/%d", c.Name(), num, den)
			}
			raw[i] = q
			continue
		}
		v, err := e.quantize(c.At(i, diameter), f, i)
		if err != nil {
			return nil, err
		}
		raw[i] = v
	}
	return finish(raw, f)
}

// quantize scales one sample by 2^f and rounds it.
func (e Encoder) quantize(s float64, f uint, i int) (uint64, error) {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return 0, configErr(ErrCurve, i, "sample %v", s)
	}
	x := e.Rounding.float(math.Ldexp(s, int(f)))
	if x > MaxValue {
		return 0, configErr(ErrOverflow, i, "scaled sample %v", x)
	}
	return uint64(x), nil
}

// finish applies the floor and monotonic repair, then the range check.
func finish(raw []uint64, f uint) (*Table, error) {
	var st Stats
	if raw[0] == 0 {
		raw[0] = 1
		st.FloorRaised = true
	}
	for i := 1; i < len(raw); i++ {
		if raw[i] <= raw[i-1] {
			raw[i] = raw[i-1] + 1
			st.Repairs++
		}
	}
	if last := raw[len(raw)-1]; last > MaxValue {
		// Repair only ever raises values, so the last entry is the maximum.
		return nil, configErr(ErrOverflow, len(raw)-1, "%d > %d after %d repairs", last, MaxValue, st.Repairs)
	}
	vals := make([]uint16, len(raw))
	for i, v := range raw {
		vals[i] = uint16(v)
	}
	st.Min, st.Max = vals[0], vals[len(vals)-1]
	return &Table{vals: vals, fracBits: f, stats: st}, nil
}
