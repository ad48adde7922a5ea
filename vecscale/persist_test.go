package vecscale

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestBytesByteOrder(t *testing.T) {
	tab := Default()
	le := tab.Bytes(binary.LittleEndian)
	be := tab.Bytes(binary.BigEndian)
	if len(le) != 2*Diameter {
		t.Fatalf("len = %d, want %d", len(le), 2*Diameter)
	}
	// 137 = 0x0089
	if le[0] != 0x89 || le[1] != 0x00 {
		t.Errorf("little endian head = % x", le[:2])
	}
	if be[0] != 0x00 || be[1] != 0x89 {
		t.Errorf("big endian head = % x", be[:2])
	}
	native, err := tab.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if !bytes.Equal(native, tab.Bytes(nil)) {
		t.Errorf("MarshalBinary is not native order")
	}
}

func TestReadTableRoundTrip(t *testing.T) {
	tab := MustBuild(Config{Diameter: 240, Curve: Arcsine})
	var buf bytes.Buffer
	n, err := tab.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != 480 {
		t.Errorf("WriteTo wrote %d bytes", n)
	}
	got, err := ReadTable(&buf, 240, DefaultFracBits, nil)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	diff(t, tab.Values(), got.Values())

	be, err := ParseTable(tab.Bytes(binary.BigEndian), DefaultFracBits, binary.BigEndian)
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	if !be.Equal(tab) {
		t.Errorf("big endian round trip differs")
	}
}

func TestReadTableRejects(t *testing.T) {
	if _, err := ReadTable(bytes.NewReader(make([]byte, 10)), 240, 16, nil); err == nil {
		t.Errorf("short read accepted")
	}
	if _, err := ParseTable([]byte{1, 0, 2}, 16, binary.LittleEndian); !errors.Is(err, ErrTableLength) {
		t.Errorf("odd length: err = %v", err)
	}
	if _, err := ParseTable([]byte{1, 0}, 16, binary.LittleEndian); !errors.Is(err, ErrTableLength) {
		t.Errorf("single entry: err = %v", err)
	}
	if _, err := ParseTable([]byte{2, 0, 2, 0}, 16, binary.LittleEndian); !errors.Is(err, ErrNotMonotone) {
		t.Errorf("plateau: err = %v", err)
	}
	if _, err := ParseTable([]byte{0, 0, 2, 0}, 16, binary.LittleEndian); !errors.Is(err, ErrNotMonotone) {
		t.Errorf("zero floor: err = %v", err)
	}
	if _, err := ParseTable([]byte{1, 0, 2, 0}, 0, binary.LittleEndian); !errors.Is(err, ErrFracBits) {
		t.Errorf("zero width: err = %v", err)
	}
	if _, err := ReadTable(bytes.NewReader(nil), 1, 16, nil); !errors.Is(err, ErrDiameter) {
		t.Errorf("diameter 1: err = %v", err)
	}
}

func TestParseByteOrder(t *testing.T) {
	tests := map[string]binary.ByteOrder{
		"":       binary.NativeEndian,
		"native": binary.NativeEndian,
		"little": binary.LittleEndian,
		"BE":     binary.BigEndian,
	}
	for in, want := range tests {
		got, err := ParseByteOrder(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseByteOrder("middle"); err == nil {
		t.Errorf("middle endian accepted")
	}
}
