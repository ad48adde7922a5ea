package vecscale

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Persisted tables are a flat run of 16-bit entries with no header. The
// default byte order is the host's native order, which is what a read-only
// data segment built on the target expects.

// ParseByteOrder accepts "native", "little" or "big".
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "native":
		return binary.NativeEndian, nil
	case "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("vecscale: unknown byte order %q", s)
	}
}

// Bytes encodes the entries in the given order (native when nil).
func (t *Table) Bytes(order binary.ByteOrder) []byte {
	if order == nil {
		order = binary.NativeEndian
	}
	b := make([]byte, 2*len(t.vals))
	for i, v := range t.vals {
		order.PutUint16(b[2*i:], v)
	}
	return b
}

// MarshalBinary encodes the entries in native byte order.
func (t *Table) MarshalBinary() ([]byte, error) {
	return t.Bytes(binary.NativeEndian), nil
}

// WriteTo writes the entries in native byte order.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.Bytes(binary.NativeEndian))
	return int64(n), err
}

// ParseTable decodes a persisted table and validates it like Build output.
func ParseTable(b []byte, fracBits uint, order binary.ByteOrder) (*Table, error) {
	if len(b)%2 != 0 {
		return nil, configErr(ErrTableLength, -1, "odd byte count %d", len(b))
	}
	if order == nil {
		order = binary.NativeEndian
	}
	vals := make([]uint16, len(b)/2)
	for i := range vals {
		vals[i] = order.Uint16(b[2*i:])
	}
	return fromValues(vals, fracBits)
}

// ReadTable reads exactly diameter entries from r.
func ReadTable(r io.Reader, diameter int, fracBits uint, order binary.ByteOrder) (*Table, error) {
	if diameter < 2 {
		return nil, configErr(ErrDiameter, -1, "got %d", diameter)
	}
	b := make([]byte, 2*diameter)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("vecscale: read table: %w", err)
	}
	return ParseTable(b, fracBits, order)
}
