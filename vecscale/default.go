package vecscale

//go:generate go run ../cmd/mkvecscale -diameter 240 -format go -pkg vecscale -name published240 -out published240.go

// Diameter is the pixel diameter of the firmware's round display.
const Diameter = 240

var defaultTable = mustFromValues(published240[:], DefaultFracBits)

// Default returns the table embedded in the firmware: PixelCenter over
// Diameter pixels, 16 fractional bits, half-up rounding.
func Default() *Table { return defaultTable }

func mustFromValues(vals []uint16, fracBits uint) *Table {
	t, err := fromValues(vals, fracBits)
	if err != nil {
		panic(err)
	}
	return t
}
