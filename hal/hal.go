package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrQuit is returned by an app step to stop the runner cleanly.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display is a round panel behind a square framebuffer. Only the inscribed
// circle of Diameter pixels is visible.
type Display interface {
	Framebuffer() Framebuffer
	Diameter() int
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; higher-level timers live in the app.
type Time interface {
	Ticks() <-chan uint64
	TickDuration() time.Duration
}

// App builds the per-frame step for h.
type App func(h HAL) (step func() error, err error)

// HAL provides the only contact point between the preview and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}

// HostConfig describes the emulated panel.
type HostConfig struct {
	Diameter int // visible pixels across; default 240
	Zoom     int // window pixels per panel pixel; default 2
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Diameter <= 0 {
		c.Diameter = 240
	}
	if c.Zoom <= 0 {
		c.Zoom = 2
	}
	return c
}
