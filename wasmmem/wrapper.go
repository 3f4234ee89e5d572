package wasmmem

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/structmem"
	"github.com/wippyai/structmem/errors"
)

// Wrap adapts a wazero api.Memory to structmem.Region. Returns nil for a
// nil memory.
func Wrap(mem api.Memory) structmem.Region {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

// Wrapper adapts wazero api.Memory to the structmem.Region interface.
type Wrapper struct {
	Mem api.Memory
}

func (w *Wrapper) oob(phase errors.Phase, offset, length uint32) error {
	return errors.OutOfBounds(phase, offset, length, w.Mem.Size())
}

// Read returns a copy of length bytes starting at offset.
func (w *Wrapper) Read(offset uint32, length uint32) ([]byte, error) {
	view, ok := w.Mem.Read(offset, length)
	if !ok {
		return nil, w.oob(errors.PhaseDecode, offset, length)
	}
	out := make([]byte, length)
	copy(out, view)
	return out, nil
}

// Write copies data into memory starting at offset.
func (w *Wrapper) Write(offset uint32, data []byte) error {
	if !w.Mem.Write(offset, data) {
		return w.oob(errors.PhaseEncode, offset, uint32(len(data)))
	}
	return nil
}

// ReadU8 reads an unsigned 8-bit value.
func (w *Wrapper) ReadU8(offset uint32) (uint8, error) {
	v, ok := w.Mem.ReadByte(offset)
	if !ok {
		return 0, w.oob(errors.PhaseDecode, offset, 1)
	}
	return v, nil
}

// ReadU16 reads an unsigned 16-bit little-endian value.
func (w *Wrapper) ReadU16(offset uint32) (uint16, error) {
	v, ok := w.Mem.ReadUint16Le(offset)
	if !ok {
		return 0, w.oob(errors.PhaseDecode, offset, 2)
	}
	return v, nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (w *Wrapper) ReadU32(offset uint32) (uint32, error) {
	v, ok := w.Mem.ReadUint32Le(offset)
	if !ok {
		return 0, w.oob(errors.PhaseDecode, offset, 4)
	}
	return v, nil
}

// ReadU64 reads an unsigned 64-bit little-endian value.
func (w *Wrapper) ReadU64(offset uint32) (uint64, error) {
	v, ok := w.Mem.ReadUint64Le(offset)
	if !ok {
		return 0, w.oob(errors.PhaseDecode, offset, 8)
	}
	return v, nil
}

// WriteU8 writes an unsigned 8-bit value.
func (w *Wrapper) WriteU8(offset uint32, value uint8) error {
	if !w.Mem.WriteByte(offset, value) {
		return w.oob(errors.PhaseEncode, offset, 1)
	}
	return nil
}

// WriteU16 writes an unsigned 16-bit little-endian value.
func (w *Wrapper) WriteU16(offset uint32, value uint16) error {
	if !w.Mem.WriteUint16Le(offset, value) {
		return w.oob(errors.PhaseEncode, offset, 2)
	}
	return nil
}

// WriteU32 writes an unsigned 32-bit little-endian value.
func (w *Wrapper) WriteU32(offset uint32, value uint32) error {
	if !w.Mem.WriteUint32Le(offset, value) {
		return w.oob(errors.PhaseEncode, offset, 4)
	}
	return nil
}

// WriteU64 writes an unsigned 64-bit little-endian value.
func (w *Wrapper) WriteU64(offset uint32, value uint64) error {
	if !w.Mem.WriteUint64Le(offset, value) {
		return w.oob(errors.PhaseEncode, offset, 8)
	}
	return nil
}

// Len returns the current memory size in bytes.
func (w *Wrapper) Len() uint32 {
	return w.Mem.Size()
}
