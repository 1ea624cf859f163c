//go:build linux || darwin

package fdt

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// OpenFile mmaps a blob file read-only. Unlike Open, which reports an
// unusable buffer through Valid, OpenFile fails loudly: a file that exists
// but does not hold a device tree is an error worth a message.
func OpenFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	sz := st.Size()
	if sz == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("fdt: empty blob file: %s", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(sz), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("fdt: mmap failed: %w", err)
	}

	// Page-aligned mappings satisfy the 8-byte header contract; probe
	// reports magic and size problems.
	if err := probe(data); err != nil {
		_ = unix.Munmap(data)
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	t := Open(data)
	t.f = f
	t.mapped = true
	return t, nil
}

// Close releases the mapping and the file. Calling it on a Tree produced
// by Open is a no-op. All Nodes derived from the Tree die with it.
func (t *Tree) Close() error {
	var err error
	if t.mapped && t.data != nil {
		_ = unix.Munmap(t.data)
		t.mapped = false
	}
	t.data = nil
	t.hdr = nil
	if t.f != nil {
		err = t.f.Close()
		t.f = nil
	}
	return err
}
