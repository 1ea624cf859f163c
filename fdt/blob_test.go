package fdt

import (
	"github.com/hsantos/fdtkit/internal/format"
)

// blobBuilder assembles test blobs in memory: header, an empty
// memory-reservation map, the structure block, then the string block.
// Property names are interned into the string table the way a device tree
// compiler would, with duplicates sharing one entry.
type blobBuilder struct {
	structBuf []byte
	strTab    []byte
	strOff    map[string]uint32
}

func newBlob() *blobBuilder {
	return &blobBuilder{strOff: map[string]uint32{}}
}

func (b *blobBuilder) word(v uint32) *blobBuilder {
	off := len(b.structBuf)
	b.structBuf = append(b.structBuf, 0, 0, 0, 0)
	format.PutU32(b.structBuf, off, v)
	return b
}

func (b *blobBuilder) beginNode(name string) *blobBuilder {
	b.word(format.TokenBeginNode)
	if name == "" {
		// Nameless root: one padding word.
		return b.word(0)
	}
	nb := append([]byte(name), 0)
	for len(nb)%format.TokenAlignment != 0 {
		nb = append(nb, 0)
	}
	b.structBuf = append(b.structBuf, nb...)
	return b
}

func (b *blobBuilder) endNode() *blobBuilder { return b.word(format.TokenEndNode) }
func (b *blobBuilder) nop() *blobBuilder     { return b.word(format.TokenNop) }
func (b *blobBuilder) end() *blobBuilder     { return b.word(format.TokenEnd) }

func (b *blobBuilder) prop(name string, val []byte) *blobBuilder {
	b.word(format.TokenProp)
	b.word(uint32(len(val)))
	b.word(b.internString(name))
	padded := append([]byte(nil), val...)
	for len(padded)%format.TokenAlignment != 0 {
		padded = append(padded, 0)
	}
	b.structBuf = append(b.structBuf, padded...)
	return b
}

func (b *blobBuilder) internString(s string) uint32 {
	if off, ok := b.strOff[s]; ok {
		return off
	}
	off := uint32(len(b.strTab))
	b.strTab = append(b.strTab, s...)
	b.strTab = append(b.strTab, 0)
	b.strOff[s] = off
	return off
}

func (b *blobBuilder) build() []byte {
	const rsvmapSize = 16 // single all-zero terminator entry
	structOff := format.HeaderSize + rsvmapSize
	stringsOff := structOff + len(b.structBuf)
	total := stringsOff + len(b.strTab)

	blob := make([]byte, total)
	format.PutU32(blob, format.MagicOffset, format.Magic)
	format.PutU32(blob, format.TotalSizeOffset, uint32(total))
	format.PutU32(blob, format.OffDTStructOffset, uint32(structOff))
	format.PutU32(blob, format.OffDTStringsOffset, uint32(stringsOff))
	format.PutU32(blob, format.OffMemRsvmapOffset, format.HeaderSize)
	format.PutU32(blob, format.VersionOffset, 17)
	format.PutU32(blob, format.LastCompVersionOffset, 16)
	format.PutU32(blob, format.SizeDTStructOffset, uint32(len(b.structBuf)))
	format.PutU32(blob, format.SizeDTStringsOffset, uint32(len(b.strTab)))
	copy(blob[structOff:], b.structBuf)
	copy(blob[stringsOff:], b.strTab)
	return blob
}

// roundTripBlob is the canonical fixture: a root carrying
// compatible = "acme,widget" and one empty child named child@1.
func roundTripBlob() []byte {
	return newBlob().
		beginNode("").
		prop("compatible", []byte("acme,widget")).
		beginNode("child@1").
		endNode().
		endNode().
		end().
		build()
}
