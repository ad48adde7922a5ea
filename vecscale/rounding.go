package vecscale

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// Rounding selects how scaled curve samples are rounded to integers.
type Rounding uint8

const (
	// RoundHalfUp rounds ties toward +inf. It matches the firmware table.
	RoundHalfUp Rounding = iota
	// RoundHalfEven rounds ties to the even neighbour.
	RoundHalfEven
)

func (r Rounding) String() string {
	switch r {
	case RoundHalfUp:
		return "half-up"
	case RoundHalfEven:
		return "half-even"
	default:
		return fmt.Sprintf("rounding(%d)", uint8(r))
	}
}

// ParseRounding accepts the names returned by Rounding.String.
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "half-up", "up":
		return RoundHalfUp, nil
	case "half-even", "even":
		return RoundHalfEven, nil
	default:
		return 0, fmt.Errorf("vecscale: unknown rounding %q", s)
	}
}

// float rounds a non-negative scaled sample.
func (r Rounding) float(x float64) float64 {
	if r == RoundHalfEven {
		return math.RoundToEven(x)
	}
	return math.Floor(x + 0.5)
}

// ratio rounds num * 2^shift / den. ok is false when the quotient does not fit
// in 64 bits.
func (r Rounding) ratio(num, den uint64, shift uint) (q uint64, ok bool) {
	hi, lo := bits.Mul64(num, 1<<shift)
	if hi >= den {
		return 0, false
	}
	q, rem := bits.Div64(hi, lo, den)
	rest := den - rem // distance to the next integer, scaled by den
	up := rem > rest || (rem == rest && (r == RoundHalfUp || q&1 == 1))
	if up {
		if q == math.MaxUint64 {
			return 0, false
		}
		q++
	}
	return q, true
}
