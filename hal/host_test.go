//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{0xFF, 0xFF, 0xFF},
		{0xFF, 0, 0},
		{0, 0xFF, 0},
		{0, 0, 0xFF},
	}
	for _, tt := range tests {
		r, g, b := RGB888(RGB565(tt.r, tt.g, tt.b))
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("%v -> %d,%d,%d", tt, r, g, b)
		}
	}
	if got := RGB565(0xFF, 0, 0); got != 0xF800 {
		t.Errorf("red = %#04x", got)
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	if fb.StrideBytes() != 8 || len(fb.Buffer()) != 24 {
		t.Fatalf("stride=%d len=%d", fb.StrideBytes(), len(fb.Buffer()))
	}
	fb.ClearRGB(0xFF, 0, 0)
	for i := 0; i < len(fb.buf); i += 2 {
		if fb.buf[i] != 0x00 || fb.buf[i+1] != 0xF8 {
			t.Fatalf("pixel %d = % x", i/2, fb.buf[i:i+2])
		}
	}
}

func TestSnapshotMasksCorners(t *testing.T) {
	fb := newHostFramebuffer(8, 8)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)
	dst := make([]byte, 8*8*4)
	fb.snapshotRGBA(dst, 8)

	at := func(x, y int) []byte { j := (y*8 + x) * 4; return dst[j : j+4] }
	if p := at(0, 0); p[0] != 0 || p[3] != 0xFF {
		t.Errorf("corner = % x, want black", p)
	}
	if p := at(4, 4); p[0] != 0xFF || p[1] != 0xFF || p[2] != 0xFF {
		t.Errorf("center = % x, want white", p)
	}
	if p := at(0, 4); p[0] != 0xFF {
		t.Errorf("edge midpoint = % x, want white", p)
	}
}

func TestHostTimeTicks(t *testing.T) {
	now := time.Unix(0, 0)
	ht := newHostTimeWithClock(func() time.Time { return now })

	ht.step()
	if got := <-ht.Ticks(); got != 1 {
		t.Fatalf("first tick = %d", got)
	}

	now = now.Add(1500 * time.Microsecond)
	ht.step()
	now = now.Add(600 * time.Microsecond)
	ht.step()
	var got []uint64
	for len(ht.ch) > 0 {
		got = append(got, <-ht.ch)
	}
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("ticks = %v, want [2 3]", got)
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var frames int
	var taps int
	err := RunHeadless(context.Background(), HostConfig{Diameter: 32}, func(h HAL) (func() error, error) {
		if d := h.Display().Diameter(); d != 32 {
			t.Errorf("diameter = %d", d)
		}
		kbd := h.Input().Keyboard()
		return func() error {
			frames++
			for len(kbd.Events()) > 0 {
				if ev := <-kbd.Events(); ev.Code == KeyRight && ev.Press {
					taps++
				}
			}
			return nil
		}, nil
	}, HeadlessConfig{Hz: 1000, Ticks: 6, CycleEvery: 2})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if frames != 6 {
		t.Errorf("frames = %d, want 6", frames)
	}
	if taps != 3 {
		t.Errorf("taps = %d, want 3", taps)
	}
}

func TestRunHeadlessQuit(t *testing.T) {
	err := RunHeadless(context.Background(), HostConfig{}, func(HAL) (func() error, error) {
		return func() error { return ErrQuit }, nil
	}, HeadlessConfig{Hz: 1000})
	if err != nil {
		t.Fatalf("ErrQuit should stop cleanly, got %v", err)
	}
}

func TestRunHeadlessAppError(t *testing.T) {
	want := errors.New("boom")
	err := RunHeadless(context.Background(), HostConfig{}, func(HAL) (func() error, error) {
		return nil, want
	}, HeadlessConfig{})
	if err != want {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, HostConfig{}, func(HAL) (func() error, error) { return nil, nil }, HeadlessConfig{})
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
