// Package format houses low-level decoders for the flattened device tree
// (FDT) blob format. The goal is to keep the parsing focused,
// allocation-free where possible, and independent from the public API so
// higher-level packages can orchestrate the data in a more ergonomic form.
package format

const (
	// Magic is the value of the first header field of every FDT blob.
	Magic = 0xD00DFEED

	// HeaderSize is the size of the fixed FDT header in bytes:
	// ten big-endian uint32 fields.
	HeaderSize = 40

	// HeaderAlignment is the required alignment of the blob's base address.
	// The producing platform guarantees 8-byte alignment; it is checked,
	// not re-derived from the bytes.
	HeaderAlignment = 8

	// TokenSize is the size of every structure-block token tag.
	TokenSize = 4

	// TokenAlignment is the required alignment of tokens within the
	// structure block. Names and property values are zero-padded up to it.
	TokenAlignment = 4

	// TokenAlignmentMask is the bitmask used for aligning to 4-byte
	// boundaries (TokenAlignment - 1).
	TokenAlignmentMask = TokenAlignment - 1

	// PropDescSize is the size of the fixed property descriptor that
	// follows a PROP token: a 4-byte value length and a 4-byte offset
	// into the string block.
	PropDescSize = 8

	// PropDescLenOffset and PropDescNameOffset locate the descriptor
	// fields relative to the descriptor start.
	PropDescLenOffset  = 0
	PropDescNameOffset = 4
)

// Structure-block token tags.
const (
	TokenBeginNode = 0x00000001 // node start, followed by the node name
	TokenEndNode   = 0x00000002 // node end
	TokenProp      = 0x00000003 // property descriptor + value bytes
	TokenNop       = 0x00000004 // ignored filler
	TokenEnd       = 0x00000009 // terminal token of the structure block
)

// Header field offsets. All fields are big-endian uint32.
const (
	MagicOffset           = 0x00
	TotalSizeOffset       = 0x04
	OffDTStructOffset     = 0x08
	OffDTStringsOffset    = 0x0C
	OffMemRsvmapOffset    = 0x10
	VersionOffset         = 0x14
	LastCompVersionOffset = 0x18
	BootCPUIDPhysOffset   = 0x1C
	SizeDTStringsOffset   = 0x20
	SizeDTStructOffset    = 0x24
)
