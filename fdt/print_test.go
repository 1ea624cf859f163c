package fdt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	blob := newBlob().
		beginNode("").
		prop("compatible", []byte("acme,widget")).
		beginNode("uart@10000000").
		prop("reg", []byte{0, 0, 0, 0x10}).
		endNode().
		endNode().
		end().
		build()

	var sb strings.Builder
	require.NoError(t, Open(blob).Print(&sb))

	want := strings.Join([]string{
		"/ {",
		"  compatible (11 bytes)",
		"  uart@10000000 {",
		"    reg (4 bytes)",
		"  }",
		"}",
		"",
	}, "\n")
	require.Equal(t, want, sb.String())
}

func TestPrint_Subtree(t *testing.T) {
	blob := newBlob().
		beginNode("").
		beginNode("a").
		prop("p", nil).
		endNode().
		beginNode("b").
		endNode().
		endNode().
		end().
		build()

	tree := Open(blob)
	var sb strings.Builder
	require.NoError(t, tree.Root().Child("a").Print(&sb))
	require.Equal(t, "a {\n  p (0 bytes)\n}\n", sb.String())
}

func TestPrint_InvalidTree(t *testing.T) {
	require.Error(t, (&Tree{}).Print(&strings.Builder{}))
	require.Error(t, Node{}.Print(&strings.Builder{}))
}

func TestPrint_Malformed(t *testing.T) {
	blob := newBlob().beginNode("").word(0x99).endNode().end().build()
	require.ErrorIs(t, Open(blob).Print(&strings.Builder{}), ErrMalformed)
}
