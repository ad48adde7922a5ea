package vecscale

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Curve is the continuous scale model. At returns the scale for radial index i
// of a display with the given diameter, as a fraction of full scale (1.0 maps
// to 2^F). Curves must be strictly increasing in i and stay below 1.0.
type Curve interface {
	Name() string
	At(i, diameter int) float64
}

// RationalCurve is a Curve with an exact form num/den. The encoder prefers it
// over At and rounds with integers only.
type RationalCurve interface {
	Curve
	Ratio(i, diameter int) (num, den uint64)
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(i, diameter int) float64

func (f CurveFunc) Name() string               { return "func" }
func (f CurveFunc) At(i, diameter int) float64 { return f(i, diameter) }

type pixelCenter struct{}

// PixelCenter samples each pixel at its center: (i + 0.5) / diameter.
// With 16 fractional bits and half-up rounding it reproduces the firmware table.
var PixelCenter RationalCurve = pixelCenter{}

func (pixelCenter) Name() string { return "pixel-center" }

func (pixelCenter) At(i, diameter int) float64 {
	return float64(2*i+1) / float64(2*diameter)
}

func (pixelCenter) Ratio(i, diameter int) (num, den uint64) {
	return uint64(2*i + 1), uint64(2 * diameter)
}

type arcsine struct{}

// Arcsine maps the pixel center through asin, normalized so that the rim
// approaches 1.0. The step grows toward the rim.
var Arcsine Curve = arcsine{}

func (arcsine) Name() string { return "arcsine" }

func (arcsine) At(i, diameter int) float64 {
	x := float64(2*i+1) / float64(2*diameter)
	return math.Asin(x) / (math.Pi / 2)
}

type sphere struct{}

// Sphere is the depth of a unit hemisphere below its apex at the pixel center,
// 1 - sqrt(1 - x^2). It is nearly flat at the center, so low-resolution tables
// rely on monotonic repair there.
var Sphere Curve = sphere{}

func (sphere) Name() string { return "sphere" }

func (sphere) At(i, diameter int) float64 {
	x := float64(2*i+1) / float64(2*diameter)
	// Explicit conversion keeps x*x from being fused into the subtraction.
	return 1 - math.Sqrt(1-float64(x*x))
}

type constant float64

// Constant returns a flat curve. Every adjacent pair of a constant table goes
// through monotonic repair.
func Constant(v float64) Curve { return constant(v) }

func (c constant) Name() string        { return "constant" }
func (c constant) At(_, _ int) float64 { return float64(c) }

var curves = map[string]Curve{
	PixelCenter.Name(): PixelCenter,
	Arcsine.Name():     Arcsine,
	Sphere.Name():      Sphere,
}

// CurveByName returns a registered curve.
func CurveByName(name string) (Curve, error) {
	c, ok := curves[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("vecscale: unknown curve %q (have %s)", name, strings.Join(CurveNames(), ", "))
	}
	return c, nil
}

// CurveNames lists the registered curves in sorted order.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for n := range curves {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
