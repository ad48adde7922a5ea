//go:build !tinygo

package hal

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type hostHAL struct {
	cfg    HostConfig
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL emulating a round panel.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		cfg:    cfg,
		logger: &hostLogger{l: log.With().Str("module", "hal").Logger()},
		fb:     newHostFramebuffer(cfg.Diameter, cfg.Diameter),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb, diameter: h.cfg.Diameter} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb       *hostFramebuffer
	diameter int
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d hostDisplay) Diameter() int            { return d.diameter }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// hostLogger forwards HAL log lines to zerolog.
type hostLogger struct {
	l zerolog.Logger
}

func (l *hostLogger) WriteLineString(s string) { l.l.Info().Msg(s) }
func (l *hostLogger) WriteLineBytes(b []byte)  { l.l.Info().Msg(string(b)) }
