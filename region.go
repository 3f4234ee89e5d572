package structmem

import (
	"encoding/binary"

	"github.com/wippyai/structmem/errors"
)

// ByteRegion is a Region backed by a Go byte slice. Values are stored
// little-endian. A *ByteRegion handed to another goroutine addresses the
// same backing array on both sides; the region carries no synchronization,
// so concurrent access to one field is only as atomic as the platform's raw
// access for that width.
type ByteRegion struct {
	buf []byte
}

// NewRegion allocates a fresh zero-initialized region of the given size.
func NewRegion(size uint32) *ByteRegion {
	return &ByteRegion{buf: make([]byte, size)}
}

// WrapBytes binds an existing byte slice as a region without copying.
// Writers through the region mutate buf directly.
func WrapBytes(buf []byte) *ByteRegion {
	return &ByteRegion{buf: buf}
}

// Bytes exposes the backing slice without copying.
func (b *ByteRegion) Bytes() []byte {
	return b.buf
}

// Len returns the region size in bytes.
func (b *ByteRegion) Len() uint32 {
	return uint32(len(b.buf))
}

func (b *ByteRegion) bounds(phase errors.Phase, offset, length uint32) error {
	if uint64(offset)+uint64(length) > uint64(len(b.buf)) {
		return errors.OutOfBounds(phase, offset, length, uint32(len(b.buf)))
	}
	return nil
}

// Read returns a copy of length bytes starting at offset.
func (b *ByteRegion) Read(offset uint32, length uint32) ([]byte, error) {
	if err := b.bounds(errors.PhaseDecode, offset, length); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, b.buf[offset:])
	return out, nil
}

// Write copies data into the region starting at offset.
func (b *ByteRegion) Write(offset uint32, data []byte) error {
	if err := b.bounds(errors.PhaseEncode, offset, uint32(len(data))); err != nil {
		return err
	}
	copy(b.buf[offset:], data)
	return nil
}

// ReadU8 reads an unsigned 8-bit value.
func (b *ByteRegion) ReadU8(offset uint32) (uint8, error) {
	if err := b.bounds(errors.PhaseDecode, offset, 1); err != nil {
		return 0, err
	}
	return b.buf[offset], nil
}

// ReadU16 reads an unsigned 16-bit little-endian value.
func (b *ByteRegion) ReadU16(offset uint32) (uint16, error) {
	if err := b.bounds(errors.PhaseDecode, offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b.buf[offset:]), nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (b *ByteRegion) ReadU32(offset uint32) (uint32, error) {
	if err := b.bounds(errors.PhaseDecode, offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b.buf[offset:]), nil
}

// ReadU64 reads an unsigned 64-bit little-endian value.
func (b *ByteRegion) ReadU64(offset uint32) (uint64, error) {
	if err := b.bounds(errors.PhaseDecode, offset, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b.buf[offset:]), nil
}

// WriteU8 writes an unsigned 8-bit value.
func (b *ByteRegion) WriteU8(offset uint32, value uint8) error {
	if err := b.bounds(errors.PhaseEncode, offset, 1); err != nil {
		return err
	}
	b.buf[offset] = value
	return nil
}

// WriteU16 writes an unsigned 16-bit little-endian value.
func (b *ByteRegion) WriteU16(offset uint32, value uint16) error {
	if err := b.bounds(errors.PhaseEncode, offset, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b.buf[offset:], value)
	return nil
}

// WriteU32 writes an unsigned 32-bit little-endian value.
func (b *ByteRegion) WriteU32(offset uint32, value uint32) error {
	if err := b.bounds(errors.PhaseEncode, offset, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b.buf[offset:], value)
	return nil
}

// WriteU64 writes an unsigned 64-bit little-endian value.
func (b *ByteRegion) WriteU64(offset uint32, value uint64) error {
	if err := b.bounds(errors.PhaseEncode, offset, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b.buf[offset:], value)
	return nil
}
