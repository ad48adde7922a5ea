// Package vecscale builds the per-pixel vector scale table used to project
// vector-drawn geometry onto a round display.
//
// A table has one unsigned 16-bit fixed-point entry per pixel of the display
// diameter. Entry i is the scale for radial index i, interpreted as
// value / 2^F where F is the fractional bit width agreed with the renderer.
//
// Pipeline (fixed):
//
//	Curve → Encoder (scale, round, floor, repair, range check) → Table.
//
// Tables are immutable once built. Default returns the statically initialized
// 240 pixel table that ships with the firmware; Build produces tables for other
// diameters, curves and fixed-point widths. Lookups clamp out-of-range indices
// to the nearest edge and never fail.
//
// Curves that implement RationalCurve are encoded with integer arithmetic only,
// so their tables are identical on every platform and word size.
package vecscale
