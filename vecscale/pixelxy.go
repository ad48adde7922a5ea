package vecscale

// PixelCoords returns the signed fixed-point coordinate of each pixel center
// along one axis of the display, spanning just inside [-32767, 32767]. The
// inset leaves headroom for rounding that compounds over three axes.
func PixelCoords(diameter int) ([]int16, error) {
	if diameter < 2 {
		return nil, configErr(ErrDiameter, -1, "got %d", diameter)
	}
	d := int64(diameter)
	out := make([]int16, diameter)
	for i := range out {
		out[i] = int16((65534*(2*int64(i)+1)+d)/(2*d) - 32767)
	}
	return out, nil
}
