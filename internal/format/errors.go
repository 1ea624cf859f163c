package format

import "errors"

var (
	// ErrBadMagic indicates the header's first field was not the FDT magic.
	ErrBadMagic = errors.New("format: bad magic")
	// ErrUnaligned indicates the blob's base address was not 8-byte aligned.
	ErrUnaligned = errors.New("format: header not 8-byte aligned")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrMalformed indicates the token stream violated the structure-block grammar.
	ErrMalformed = errors.New("format: malformed structure block")
	// ErrNotFound indicates a requested node or property was missing.
	ErrNotFound = errors.New("format: not found")
)
