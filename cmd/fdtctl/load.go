package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hsantos/fdtkit/fdt"
)

// openTree opens a blob file as a device tree. Plain files are mmapped
// read-only; .gz/.zst/.lz4 files are decompressed into memory first, the
// way kernels ship compressed dtbs. The caller must Close the tree.
func openTree(path string) (*fdt.Tree, error) {
	switch filepath.Ext(path) {
	case ".gz", ".zst", ".lz4":
		buf, err := readCompressed(path)
		if err != nil {
			return nil, err
		}
		t := fdt.Open(buf)
		if !t.Valid() {
			return nil, fmt.Errorf("%s: not a device tree blob", path)
		}
		return t, nil
	default:
		return fdt.OpenFile(path)
	}
}

// readCompressed reads a compressed blob fully into memory.
func readCompressed(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader
	switch filepath.Ext(path) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".lz4":
		r = lz4.NewReader(f)
	default:
		return nil, fmt.Errorf("%s: unknown compression extension", path)
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: decompress: %w", path, err)
	}
	return buf, nil
}
