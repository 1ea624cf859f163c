//go:build !linux && !darwin

package fdt

import (
	"fmt"
	"io"
	"os"
)

// OpenFile loads the blob into memory on non-unix platforms. Unlike Open,
// which reports an unusable buffer through Valid, OpenFile fails loudly.
func OpenFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if st.Size() == 0 {
		return nil, fmt.Errorf("fdt: empty blob file: %s", path)
	}

	buf := make([]byte, st.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}

	if err := probe(buf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Open(buf), nil
}

// Close invalidates the Tree. The heap buffer is reclaimed by the GC.
func (t *Tree) Close() error {
	t.data = nil
	t.hdr = nil
	if t.f != nil {
		err := t.f.Close()
		t.f = nil
		return err
	}
	return nil
}
