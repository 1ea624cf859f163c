package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hsantos/fdtkit/internal/format"
)

// testBlob builds a small well-formed blob: a root with
// compatible = "acme,widget" and a child uart@10000000 with a reg property.
func testBlob(t *testing.T) []byte {
	t.Helper()

	var structBuf, strTab []byte
	word := func(v uint32) {
		off := len(structBuf)
		structBuf = append(structBuf, 0, 0, 0, 0)
		format.PutU32(structBuf, off, v)
	}
	intern := func(s string) uint32 {
		off := uint32(len(strTab))
		strTab = append(strTab, s...)
		strTab = append(strTab, 0)
		return off
	}
	name := func(s string) {
		nb := append([]byte(s), 0)
		for len(nb)%format.TokenAlignment != 0 {
			nb = append(nb, 0)
		}
		structBuf = append(structBuf, nb...)
	}
	prop := func(pname string, val []byte) {
		word(format.TokenProp)
		word(uint32(len(val)))
		word(intern(pname))
		padded := append([]byte(nil), val...)
		for len(padded)%format.TokenAlignment != 0 {
			padded = append(padded, 0)
		}
		structBuf = append(structBuf, padded...)
	}

	word(format.TokenBeginNode)
	word(0) // nameless root
	prop("compatible", []byte("acme,widget"))
	word(format.TokenBeginNode)
	name("uart@10000000")
	prop("reg", []byte{0, 0, 0, 0x10})
	word(format.TokenEndNode)
	word(format.TokenEndNode)
	word(format.TokenEnd)

	structOff := format.HeaderSize + 16
	stringsOff := structOff + len(structBuf)
	blob := make([]byte, stringsOff+len(strTab))
	format.PutU32(blob, format.MagicOffset, format.Magic)
	format.PutU32(blob, format.TotalSizeOffset, uint32(len(blob)))
	format.PutU32(blob, format.OffDTStructOffset, uint32(structOff))
	format.PutU32(blob, format.OffDTStringsOffset, uint32(stringsOff))
	format.PutU32(blob, format.OffMemRsvmapOffset, format.HeaderSize)
	format.PutU32(blob, format.VersionOffset, 17)
	format.PutU32(blob, format.LastCompVersionOffset, 16)
	format.PutU32(blob, format.SizeDTStructOffset, uint32(len(structBuf)))
	format.PutU32(blob, format.SizeDTStringsOffset, uint32(len(strTab)))
	copy(blob[structOff:], structBuf)
	copy(blob[stringsOff:], strTab)
	return blob
}

// writeTestBlob writes the test blob to a temp file and returns the path.
func writeTestBlob(t *testing.T, name string, blob []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		t.Fatalf("write test blob: %v", err)
	}
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}
