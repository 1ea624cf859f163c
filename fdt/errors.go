package fdt

import "github.com/hsantos/fdtkit/internal/format"

// Sentinel errors surfaced by Validate, Walk, and the loaders. Lookup
// misses are not errors: a missing node is an invalid Node, a missing
// property is found=false.
var (
	// ErrBadMagic indicates the buffer does not start with the FDT magic.
	ErrBadMagic = format.ErrBadMagic
	// ErrUnaligned indicates the buffer's base address is not 8-byte aligned.
	ErrUnaligned = format.ErrUnaligned
	// ErrTruncated indicates a structure ran past the end of the buffer.
	ErrTruncated = format.ErrTruncated
	// ErrMalformed indicates the token stream violated the structure-block grammar.
	ErrMalformed = format.ErrMalformed
)
