package hal

// RGB565 packs an 8-bit-per-channel color.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGB888 expands an RGB565 pixel, replicating the high bits so that full
// intensity stays 0xFF.
func RGB888(p uint16) (r, g, b uint8) {
	rr := uint8(p>>11) & 0x1F
	gg := uint8(p>>5) & 0x3F
	bb := uint8(p) & 0x1F
	return rr<<3 | rr>>2, gg<<2 | gg>>4, bb<<3 | bb>>2
}
