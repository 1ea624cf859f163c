package fdt

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/hsantos/fdtkit/internal/format"
)

func TestOpen_Valid(t *testing.T) {
	tree := Open(roundTripBlob())
	require.True(t, tree.Valid())
	require.Equal(t, uint32(format.Magic), tree.Header().MagicValue())
	require.Equal(t, uint32(17), tree.Header().Version())
	require.True(t, tree.Root().Valid())
}

func TestOpen_BadMagic(t *testing.T) {
	blob := roundTripBlob()
	format.PutU32(blob, format.MagicOffset, 0xCAFEBABE)

	tree := Open(blob)
	require.False(t, tree.Valid())
	require.False(t, tree.Root().Valid())
}

func TestOpen_TooSmall(t *testing.T) {
	require.False(t, Open(make([]byte, format.HeaderSize-1)).Valid())
	require.False(t, Open(nil).Valid())
}

func TestOpen_MisalignedBase(t *testing.T) {
	blob := roundTripBlob()

	// Re-home the blob at base+4 of an 8-byte aligned backing array, so the
	// magic is intact but the address contract is violated.
	backing := make([]byte, len(blob)+16)
	skew := int((8 - uintptr(unsafe.Pointer(&backing[0]))%8) % 8)
	sub := backing[skew+4 : skew+4+len(blob)]
	copy(sub, blob)

	require.False(t, Open(sub).Valid())
}

// Open followed by Valid is true iff the magic matches and the base is
// 8-byte aligned; nothing else about the content is consulted.
func TestOpen_ValidityIsMagicPlusAlignment(t *testing.T) {
	junk := make([]byte, 256)
	format.PutU32(junk, format.MagicOffset, format.Magic)
	require.True(t, Open(junk).Valid())

	format.PutU32(junk, format.MagicOffset, 0)
	require.False(t, Open(junk).Valid())
}

func TestValidate_OK(t *testing.T) {
	tree := Open(roundTripBlob())
	require.NoError(t, tree.Validate())
}

func TestValidate_InvalidTree(t *testing.T) {
	require.Error(t, (&Tree{}).Validate())
}

func TestValidate_StructOffsetBeyondBuffer(t *testing.T) {
	blob := roundTripBlob()
	format.PutU32(blob, format.OffDTStructOffset, uint32(len(blob)+64))

	tree := Open(blob)
	require.True(t, tree.Valid()) // open checks only magic and alignment
	require.ErrorIs(t, tree.Validate(), ErrTruncated)
}

func TestFind_Path(t *testing.T) {
	blob := newBlob().
		beginNode("").
		beginNode("soc").
		beginNode("uart@10000000").
		prop("reg", []byte{0, 0, 0, 0x10}).
		endNode().
		endNode().
		endNode().
		end().
		build()

	tree := Open(blob)
	require.NoError(t, tree.Validate())

	uart := tree.Find("/soc/uart@10000000")
	require.True(t, uart.Valid())
	require.Equal(t, "uart@10000000", uart.Name())

	require.True(t, tree.Find("/").Valid())
	require.True(t, tree.Find("").Valid())
	require.False(t, tree.Find("/soc/missing").Valid())
	require.False(t, tree.Find("/nosuch/uart@10000000").Valid())
}
