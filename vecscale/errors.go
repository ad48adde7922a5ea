package vecscale

import (
	"errors"
	"fmt"
)

var (
	ErrDiameter    = errors.New("diameter must be at least 2")
	ErrFracBits    = errors.New("fractional bits out of range")
	ErrOverflow    = errors.New("scale exceeds 16-bit range")
	ErrCurve       = errors.New("invalid curve sample")
	ErrTableLength = errors.New("invalid table length")
	ErrNotMonotone = errors.New("table is not strictly increasing")
)

// ConfigError reports a table that cannot be built with the given parameters.
// The table is unusable; pick another diameter, curve or fixed-point width.
type ConfigError struct {
	Err   error
	Index int // offending radial index, -1 if not tied to one
	Msg   string
}

func (e *ConfigError) Error() string {
	s := "vecscale: " + e.Err.Error()
	if e.Index >= 0 {
		s += fmt.Sprintf(" (index %d)", e.Index)
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(err error, index int, format string, args ...any) *ConfigError {
	return &ConfigError{Err: err, Index: index, Msg: fmt.Sprintf(format, args...)}
}
