// Package orbview renders a test pattern onto a round display through a
// vector scale table, so curve and fixed-point choices can be judged by eye.
//
// Every visible pixel is mapped into vector space by looking up its column
// and row in the table. A rotating grid with axes and two rings is drawn in
// that space; a linear table keeps the grid square, convex curves bend it
// toward the rim.
package orbview

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"orb/vecscale"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorBG   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorDisc = color.RGBA{R: 0x08, G: 0x10, B: 0x20, A: 0xFF}
	colorGrid = color.RGBA{R: 0x30, G: 0x60, B: 0x90, A: 0xFF}
	colorAxis = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorRing = color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}
	colorRim  = color.RGBA{R: 0x4A, G: 0xD1, B: 0xFF, A: 0xFF}
	colorHUD  = color.RGBA{R: 0x7F, G: 0xFF, B: 0x7F, A: 0xFF}
)

// Vector space is signed Q15: the display spans roughly [-32768, 32768).
const (
	gridStep  = 8192
	lineWidth = 256
	rimWidth  = 600
	outerR    = 30000
	innerR    = 15000
	q15       = 32767
	trigShift = 14
)

// Speed is the default rotation rate.
const Speed = math.Pi / 8 // radians per second

type filler interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Scene draws the pattern for one table. It is not safe for concurrent use.
type Scene struct {
	d      drivers.Displayer
	table  *vecscale.Table
	coords []int16
	ox, oy int16

	angle  float64 // radians
	Speed  float64 // radians per second
	Paused bool
	Label  string
}

// New binds table to d. The table diameter must equal the panel diameter.
func New(d drivers.Displayer, diameter int, table *vecscale.Table) (*Scene, error) {
	if d == nil || table == nil {
		return nil, errors.New("orbview: nil display or table")
	}
	if table.Diameter() != diameter {
		return nil, fmt.Errorf("orbview: table has %d entries, panel is %d px", table.Diameter(), diameter)
	}
	w, h := d.Size()
	if int(w) < diameter || int(h) < diameter {
		return nil, fmt.Errorf("orbview: %dx%d display cannot hold a %d px panel", w, h, diameter)
	}
	coords, err := vecscale.PixelCoords(diameter)
	if err != nil {
		return nil, err
	}
	return &Scene{
		d:      d,
		table:  table,
		coords: coords,
		ox:     (w - int16(diameter)) / 2,
		oy:     (h - int16(diameter)) / 2,
		Speed:  Speed,
	}, nil
}

// Table returns the table the scene projects through.
func (s *Scene) Table() *vecscale.Table { return s.table }

// SetTable swaps the table. It must have the same diameter.
func (s *Scene) SetTable(t *vecscale.Table) error {
	if t == nil || t.Diameter() != len(s.coords) {
		return errors.New("orbview: table diameter mismatch")
	}
	s.table = t
	return nil
}

// Angle returns the current rotation in radians.
func (s *Scene) Angle() float64 { return s.angle }

// Advance rotates the pattern by dt unless paused.
func (s *Scene) Advance(dt time.Duration) {
	if s.Paused {
		return
	}
	s.angle = math.Mod(s.angle+s.Speed*dt.Seconds(), 2*math.Pi)
}

// axis maps a pixel index to signed Q15 vector space through the table.
func (s *Scene) axis(i int) int64 {
	v := int64(s.table.Lookup(i)) << (16 - s.table.FracBits())
	return v - 1<<15
}

// Render draws one frame and presents it.
func (s *Scene) Render() error {
	n := len(s.coords)
	if f, ok := s.d.(filler); ok {
		w, h := s.d.Size()
		_ = f.FillRectangle(0, 0, w, h, colorBG)
	}

	c := int64(math.Round(math.Cos(s.angle) * (1 << trigShift)))
	sn := int64(math.Round(math.Sin(s.angle) * (1 << trigShift)))

	const visible = int64(q15) * q15
	const rim = int64(q15-rimWidth) * (q15 - rimWidth)
	for y := 0; y < n; y++ {
		py := int64(s.coords[y])
		uy := s.axis(y)
		for x := 0; x < n; x++ {
			px := int64(s.coords[x])
			d2 := px*px + py*py
			col := colorBG
			switch {
			case d2 > visible:
			case d2 > rim:
				col = colorRim
			default:
				ux := s.axis(x)
				rx := (ux*c - uy*sn) >> trigShift
				ry := (ux*sn + uy*c) >> trigShift
				col = shade(rx, ry)
			}
			s.d.SetPixel(s.ox+int16(x), s.oy+int16(y), col)
		}
	}

	if s.Label != "" {
		s.drawLabel()
	}
	return s.d.Display()
}

// shade colors a point of rotated vector space.
func shade(rx, ry int64) color.RGBA {
	if abs(rx) < 2*lineWidth || abs(ry) < 2*lineWidth {
		return colorAxis
	}
	r2 := rx*rx + ry*ry
	for _, r := range [...]int64{innerR, outerR} {
		if abs(r2-r*r) < 2*r*lineWidth {
			return colorRing
		}
	}
	if onGrid(rx) || onGrid(ry) {
		return colorGrid
	}
	return colorDisc
}

func onGrid(v int64) bool {
	m := v % gridStep
	if m < 0 {
		m += gridStep
	}
	return m < lineWidth
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func (s *Scene) drawLabel() {
	font := &proggy.TinySZ8pt7b
	_, outbox := tinyfont.LineWidth(font, s.Label)
	n := int16(len(s.coords))
	x := s.ox + (n-int16(outbox))/2
	y := s.oy + n/4
	tinyfont.WriteLine(s.d, font, x, y, s.Label, colorHUD)
}
