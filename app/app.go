package app

import (
	"fmt"
	"time"

	"orb/hal"
	"orb/internal/orbview"
	"orb/vecscale"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config selects the tables the preview cycles through.
type Config struct {
	// Curves are shown in order; Left/Right switch between them. Empty means
	// every registered curve, starting with PixelCenter.
	Curves   []string
	FracBits uint
	Rounding vecscale.Rounding
}

type preview struct {
	h      hal.HAL
	scene  *orbview.Scene
	tables []*vecscale.Table
	names  []string
	cur    int
	last   uint64
	log    zerolog.Logger
}

// NewWithConfig builds every configured table for the panel's diameter and
// returns the per-frame step. Build errors are fatal configuration errors.
func NewWithConfig(h hal.HAL, cfg Config) (func() error, error) {
	p, err := newPreview(h, cfg)
	if err != nil {
		return nil, err
	}
	return p.step, nil
}

func newPreview(h hal.HAL, cfg Config) (*preview, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("app: no display")
	}
	diameter := disp.Diameter()

	names := cfg.Curves
	if len(names) == 0 {
		names = []string{vecscale.PixelCenter.Name(), vecscale.Arcsine.Name(), vecscale.Sphere.Name()}
	}

	p := &preview{h: h, log: log.With().Str("module", "app").Logger()}
	for _, name := range names {
		c, err := vecscale.CurveByName(name)
		if err != nil {
			return nil, err
		}
		t, err := tableFor(diameter, c, cfg)
		if err != nil {
			return nil, fmt.Errorf("app: curve %s: %w", name, err)
		}
		st := t.Stats()
		p.log.Info().
			Str("curve", name).
			Int("diameter", diameter).
			Uint("frac_bits", t.FracBits()).
			Int("repairs", st.Repairs).
			Bool("floor_raised", st.FloorRaised).
			Uint16("min", st.Min).
			Uint16("max", st.Max).
			Msg("table built")
		p.tables = append(p.tables, t)
		p.names = append(p.names, name)
	}

	scene, err := orbview.New(orbview.NewDisplay(disp.Framebuffer()), diameter, p.tables[0])
	if err != nil {
		return nil, err
	}
	p.scene = scene
	p.show(0)
	return p, nil
}

// tableFor reuses the embedded table when the request matches it.
func tableFor(diameter int, c vecscale.Curve, cfg Config) (*vecscale.Table, error) {
	def := vecscale.Default()
	if diameter == def.Diameter() && c == vecscale.PixelCenter &&
		(cfg.FracBits == 0 || cfg.FracBits == def.FracBits()) && cfg.Rounding == vecscale.RoundHalfUp {
		return def, nil
	}
	return vecscale.Build(vecscale.Config{
		Diameter: diameter,
		FracBits: cfg.FracBits,
		Curve:    c,
		Rounding: cfg.Rounding,
	})
}

func (p *preview) show(i int) {
	n := len(p.tables)
	p.cur = ((i % n) + n) % n
	_ = p.scene.SetTable(p.tables[p.cur])
	st := p.tables[p.cur].Stats()
	p.scene.Label = fmt.Sprintf("%s r%d", p.names[p.cur], st.Repairs)
}

func (p *preview) step() error {
	if in := p.h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			if err := p.drainKeys(kbd.Events()); err != nil {
				return err
			}
		}
	}
	p.advance()
	return p.scene.Render()
}

func (p *preview) drainKeys(ch <-chan hal.KeyEvent) error {
	for {
		select {
		case ev := <-ch:
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyLeft:
				p.show(p.cur - 1)
			case hal.KeyRight:
				p.show(p.cur + 1)
			case hal.KeyUp:
				p.scene.Speed *= 2
			case hal.KeyDown:
				p.scene.Speed /= 2
			case hal.KeyEnter:
				p.scene.Paused = !p.scene.Paused
			case hal.KeyEscape:
				return hal.ErrQuit
			}
		default:
			return nil
		}
	}
}

// advance rotates the scene by the host ticks seen since the last frame.
func (p *preview) advance() {
	ht := p.h.Time()
	if ht == nil {
		return
	}
	ch := ht.Ticks()
	for {
		select {
		case seq := <-ch:
			if p.last != 0 && seq > p.last {
				p.scene.Advance(time.Duration(seq-p.last) * ht.TickDuration())
			}
			p.last = seq
		default:
			return
		}
	}
}
