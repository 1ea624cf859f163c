package format

// Alignment utilities for the FDT structure block. Node names and property
// values are padded with zero bytes so the next token starts on a 4-byte
// boundary.

// AlignToken returns n aligned up to the next 4-byte token boundary.
//
// Example:
//
//	AlignToken(0) = 0
//	AlignToken(1) = 4
//	AlignToken(4) = 4
//	AlignToken(5) = 8
func AlignToken(n int) int {
	return (n + TokenAlignmentMask) & ^TokenAlignmentMask
}
