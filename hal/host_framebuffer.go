//go:build !tinygo

package hal

import "sync"

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Present() error      { return nil }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// snapshotRGBA converts the framebuffer into dst (4 bytes per pixel). Pixels
// outside the round panel are forced to black, the way the bezel hides them.
func (f *hostFramebuffer) snapshotRGBA(dst []byte, diameter int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r2 := diameter * diameter
	for y := 0; y < f.height; y++ {
		dy := 2*y + 1 - f.height
		for x := 0; x < f.width; x++ {
			j := (y*f.width + x) * 4
			if j+3 >= len(dst) {
				return
			}
			dx := 2*x + 1 - f.width
			if dx*dx+dy*dy > r2 {
				dst[j+0], dst[j+1], dst[j+2], dst[j+3] = 0, 0, 0, 0xFF
				continue
			}
			off := y*f.stride + x*2
			r, g, b := RGB888(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
			dst[j+0], dst[j+1], dst[j+2], dst[j+3] = r, g, b, 0xFF
		}
	}
}
