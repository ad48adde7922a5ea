package vecscale

// Config describes a table. Zero fields take defaults: PixelCenter,
// DefaultFracBits, RoundHalfUp. Diameter has no default.
type Config struct {
	Diameter int
	FracBits uint
	Curve    Curve
	Rounding Rounding
}

// Build runs the curve through the encoder. Errors are *ConfigError.
func Build(cfg Config) (*Table, error) {
	e := Encoder{FracBits: cfg.FracBits, Rounding: cfg.Rounding}
	return e.EncodeCurve(cfg.Curve, cfg.Diameter)
}

// MustBuild is like Build but panics on error. Meant for package-level
// tables whose parameters are constants.
func MustBuild(cfg Config) *Table {
	t, err := Build(cfg)
	if err != nil {
		panic(err)
	}
	return t
}
