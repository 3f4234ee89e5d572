package structmem

// Region is a fixed-length raw byte buffer with little-endian fixed-width
// access. A Region has no exclusive owner: once its handle reaches another
// execution context, both sides address the same bytes and its lifetime is
// the union of all holders. The engine never destroys a Region.
type Region interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	ReadU8(offset uint32) (uint8, error)
	ReadU16(offset uint32) (uint16, error)
	ReadU32(offset uint32) (uint32, error)
	ReadU64(offset uint32) (uint64, error)
	WriteU8(offset uint32, value uint8) error
	WriteU16(offset uint32, value uint16) error
	WriteU32(offset uint32, value uint32) error
	WriteU64(offset uint32, value uint64) error

	// Len returns the region size in bytes.
	Len() uint32
}
