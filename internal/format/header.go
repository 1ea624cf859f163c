package format

import (
	"fmt"
)

// Header is a zero-copy view over the fixed 40-byte FDT header.
// It does NOT own memory; it only points into the blob buffer.
type Header struct {
	raw []byte // len >= HeaderSize
}

// HasMagic is a fast, zero-alloc check for the FDT magic field.
func HasMagic(b []byte) bool {
	if len(b) < MagicOffset+4 {
		return false
	}
	return ReadU32(b, MagicOffset) == Magic
}

// ParseHeader validates the magic field and returns a header view.
// Alignment of the backing buffer is the caller's concern: it is a property
// of the address, not of the bytes.
func ParseHeader(b []byte) (*Header, error) {
	if len(b) < HeaderSize {
		return nil, fmt.Errorf("format: buffer too small for FDT header (%d): %w", len(b), ErrTruncated)
	}
	if !HasMagic(b) {
		return nil, fmt.Errorf("format: magic 0x%08X: %w", ReadU32(b, MagicOffset), ErrBadMagic)
	}
	return &Header{raw: b[:HeaderSize]}, nil
}

// ---- Primitive field readers (no alloc) ----

// Raw returns the raw bytes of the header.
func (h *Header) Raw() []byte { return h.raw }

// MagicValue returns the magic field.
func (h *Header) MagicValue() uint32 { return ReadU32(h.raw, MagicOffset) }

// TotalSize returns the declared size of the entire blob in bytes.
func (h *Header) TotalSize() uint32 { return ReadU32(h.raw, TotalSizeOffset) }

// OffDTStruct returns the offset of the structure block from the blob base.
func (h *Header) OffDTStruct() uint32 { return ReadU32(h.raw, OffDTStructOffset) }

// OffDTStrings returns the offset of the string block from the blob base.
func (h *Header) OffDTStrings() uint32 { return ReadU32(h.raw, OffDTStringsOffset) }

// OffMemRsvmap returns the offset of the memory-reservation map.
// The map itself is not parsed here; interpreting it is the caller's concern.
func (h *Header) OffMemRsvmap() uint32 { return ReadU32(h.raw, OffMemRsvmapOffset) }

// Version returns the blob format version.
func (h *Header) Version() uint32 { return ReadU32(h.raw, VersionOffset) }

// LastCompVersion returns the last format version this blob is compatible with.
func (h *Header) LastCompVersion() uint32 { return ReadU32(h.raw, LastCompVersionOffset) }

// BootCPUIDPhys returns the physical id of the boot CPU.
func (h *Header) BootCPUIDPhys() uint32 { return ReadU32(h.raw, BootCPUIDPhysOffset) }

// SizeDTStrings returns the declared size of the string block in bytes.
func (h *Header) SizeDTStrings() uint32 { return ReadU32(h.raw, SizeDTStringsOffset) }

// SizeDTStruct returns the declared size of the structure block in bytes.
func (h *Header) SizeDTStruct() uint32 { return ReadU32(h.raw, SizeDTStructOffset) }

// ValidateSanity checks the declared block offsets against the actual buffer size.
// Every offset derived from a header field is bounded before anything
// dereferences it; a foreign or hostile header must never cause a read past
// the buffer.
func (h *Header) ValidateSanity(bufSize int) error {
	if reported := int(h.TotalSize()); reported > bufSize {
		return fmt.Errorf("format: reported blob size (%d) > buffer size (%d): %w",
			reported, bufSize, ErrTruncated)
	}
	structOff := int(h.OffDTStruct())
	if structOff < HeaderSize || structOff+TokenSize > bufSize {
		return fmt.Errorf("format: structure block offset (%d) outside buffer (%d): %w",
			structOff, bufSize, ErrTruncated)
	}
	if structOff%TokenAlignment != 0 {
		return fmt.Errorf("format: structure block offset (%d) not token aligned: %w",
			structOff, ErrMalformed)
	}
	stringsOff := int(h.OffDTStrings())
	if stringsOff < HeaderSize || stringsOff > bufSize {
		return fmt.Errorf("format: string block offset (%d) outside buffer (%d): %w",
			stringsOff, bufSize, ErrTruncated)
	}
	return nil
}

// StructEnd returns the exclusive end offset of the structure block, clamped
// to the buffer size.
func (h *Header) StructEnd(bufSize int) int {
	end := int(h.OffDTStruct()) + int(h.SizeDTStruct())
	if end > bufSize || end < 0 {
		return bufSize
	}
	return end
}

// StringsEnd returns the exclusive end offset of the string block, clamped
// to the buffer size.
func (h *Header) StringsEnd(bufSize int) int {
	end := int(h.OffDTStrings()) + int(h.SizeDTStrings())
	if end > bufSize || end < 0 {
		return bufSize
	}
	return end
}
