package fdt

import (
	"fmt"
	"os"
	"strings"
	"unsafe"

	"github.com/hsantos/fdtkit/internal/format"
)

// Tree is an opened FDT blob, backed by mmap (unix/darwin, via OpenFile) or
// a caller-supplied byte slice (Open). The zero value and any Tree whose
// buffer failed validation are inert: Valid reports false and every lookup
// degrades to "not found".
type Tree struct {
	f      *os.File // non-nil only for OpenFile
	mapped bool
	data   []byte
	hdr    *format.Header
}

// Open wraps buf as a device tree. It never fails: a buffer that is too
// short, misaligned, or carries a foreign magic yields an invalid Tree, so
// callers can probe arbitrary memory safely. Check Valid before use.
//
// The returned Tree borrows buf; buf must not be freed or mutated while the
// Tree or any Node derived from it is in use.
func Open(buf []byte) *Tree {
	if probe(buf) != nil {
		return &Tree{}
	}
	hdr, err := format.ParseHeader(buf)
	if err != nil {
		return &Tree{}
	}
	return &Tree{data: buf, hdr: hdr}
}

// probe reports why buf cannot be opened as a device tree, or nil.
func probe(buf []byte) error {
	if len(buf) < format.HeaderSize {
		return fmt.Errorf("fdt: buffer too small for header (%d): %w", len(buf), format.ErrTruncated)
	}
	if addr := uintptr(unsafe.Pointer(&buf[0])); addr%format.HeaderAlignment != 0 {
		return fmt.Errorf("fdt: buffer base 0x%X: %w", addr, format.ErrUnaligned)
	}
	if !format.HasMagic(buf) {
		return fmt.Errorf("fdt: magic 0x%08X: %w", format.ReadU32(buf, format.MagicOffset), format.ErrBadMagic)
	}
	return nil
}

// Valid reports whether the buffer passed the open checks (size, 8-byte
// base alignment, magic).
func (t *Tree) Valid() bool {
	return t != nil && t.hdr != nil && t.data != nil
}

// Bytes returns the underlying blob buffer.
func (t *Tree) Bytes() []byte { return t.data }

// Header returns the decoded header view, or nil for an invalid Tree.
func (t *Tree) Header() *format.Header { return t.hdr }

// Root returns the handle of the top-level node, positioned at the
// structure block's first token. Invalid Tree yields an invalid Node.
func (t *Tree) Root() Node {
	if !t.Valid() {
		return Node{}
	}
	return Node{t: t, off: t.structStart()}
}

// structStart returns the absolute offset of the structure block's first token.
func (t *Tree) structStart() int { return int(t.hdr.OffDTStruct()) }

// structLimit returns the exclusive end of the structure block, clamped to
// the buffer. Every token read is bounded by it.
func (t *Tree) structLimit() int { return t.hdr.StructEnd(len(t.data)) }

// stringAt resolves a string-block offset to a property name. Bounds are
// checked against both the declared string-block size and the buffer.
func (t *Tree) stringAt(nameOff uint32) ([]byte, bool) {
	off := int(t.hdr.OffDTStrings()) + int(nameOff)
	return format.CString(t.data, off, t.hdr.StringsEnd(len(t.data)))
}

// nodeNameAt returns the name bytes of the node whose BEGIN_NODE token is
// at off. The root's name is empty.
func (t *Tree) nodeNameAt(off int) ([]byte, bool) {
	return format.CString(t.data, off+format.TokenSize, t.structLimit())
}

// Find resolves a slash-separated path of node names from the root, e.g.
// "/soc/uart@10000000". Components are matched as full names, unit address
// included. Empty path or "/" returns the root. A miss anywhere on the path
// yields an invalid Node.
func (t *Tree) Find(path string) Node {
	n := t.Root()
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		n = n.Child(part)
		if !n.Valid() {
			return Node{}
		}
	}
	return n
}

// Validate walks the entire structure block, checking the token grammar,
// node balance, and the terminal END marker, and checks every declared
// header offset against the buffer. It reads the whole block; lookups do
// not need it and perform only the open-time checks.
func (t *Tree) Validate() error {
	if !t.Valid() {
		return fmt.Errorf("fdt: invalid tree: %w", format.ErrBadMagic)
	}
	if err := t.hdr.ValidateSanity(len(t.data)); err != nil {
		return err
	}
	return t.walk(t.structStart(), &nopVisitor{})
}

// nopVisitor drives a full traversal with no observable effect; the walk
// itself is the validation.
type nopVisitor struct{}

func (*nopVisitor) OnBeginNode(int) {}
func (*nopVisitor) OnEndNode(int) {}
func (*nopVisitor) OnProperty(int) {}
func (*nopVisitor) OnNop(int) {}
func (*nopVisitor) Satisfied() bool { return false }
