// Package fdt provides zero-copy, read-only access to flattened device
// tree (FDT) blobs.
//
// A Tree is a non-owning view over a caller-supplied byte buffer; nothing
// is copied and no in-memory tree is built. Lookups re-walk the tagged
// token stream of the structure block from the requested starting point
// and stop as soon as the search is satisfied, so a "found" result is a
// pointer plus length into the original buffer.
//
// The buffer must stay alive and unmodified for as long as any Tree or
// Node derived from it is in use. Concurrent read-only lookups over the
// same buffer are safe: each call's traversal state is private to that
// call.
//
// Typical use:
//
//	t := fdt.Open(blob)
//	if !t.Valid() {
//		// not an FDT blob; probing foreign memory is legal and non-fatal
//	}
//	uart := t.Root().ChildAt("uart", "10000000")
//	if compat, ok := uart.Property("compatible"); ok {
//		// compat aliases the blob's bytes
//	}
package fdt
