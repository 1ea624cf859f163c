package format

import "encoding/binary"

// Binary encoding utilities for big-endian integers.
//
// Every multi-byte field in an FDT blob is big-endian, independent of the
// host. encoding/binary assembles values byte-by-byte, so reads are safe at
// any byte offset: token and descriptor fields are only 4-byte aligned
// relative to the buffer start, never necessarily aligned to the host's
// preferred load width.

// ReadU32 reads a uint32 value from the buffer at the specified offset in big-endian format.
func ReadU32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off : off+4])
}

// ReadU64 reads a uint64 value from the buffer at the specified offset in big-endian format.
func ReadU64(b []byte, off int) uint64 {
	return binary.BigEndian.Uint64(b[off : off+8])
}

// PutU32 writes a uint32 value to the buffer at the specified offset in big-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:off+4], v)
}

// PutU64 writes a uint64 value to the buffer at the specified offset in big-endian format.
func PutU64(b []byte, off int, v uint64) {
	binary.BigEndian.PutUint64(b[off:off+8], v)
}
