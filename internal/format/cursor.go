package format

import (
	"bytes"
	"fmt"
)

// Token cursor: position-to-position advance over the structure block.
//
// Every other read in the system trusts these computations; any drift here
// desynchronizes the whole traversal. All derived offsets are checked
// against limit (the end of the structure block, already clamped to the
// buffer) before they are used.

// TokenAt reads the token tag at off. off must be within [0, limit-TokenSize].
func TokenAt(b []byte, off, limit int) (uint32, error) {
	if off < 0 || off+TokenSize > limit || off+TokenSize > len(b) {
		return 0, fmt.Errorf("format: token at %d beyond limit %d: %w", off, limit, ErrTruncated)
	}
	return ReadU32(b, off), nil
}

// CString returns the null-terminated byte string starting at off, without
// the terminator. The second result is false when off is out of range or no
// terminator exists before limit.
func CString(b []byte, off, limit int) ([]byte, bool) {
	if off < 0 || off > limit || limit > len(b) {
		return nil, false
	}
	i := bytes.IndexByte(b[off:limit], 0)
	if i < 0 {
		return nil, false
	}
	return b[off : off+i], true
}

// NextToken returns the offset of the token following the one at off,
// applying the per-kind skip rules:
//
//   - BEGIN_NODE: skip the tag, then the null-terminated name padded to the
//     next 4-byte boundary. The root's empty name is exactly one padding word.
//   - END_NODE, NOP: skip the tag only.
//   - PROP: skip the tag, the 8-byte descriptor, and the declared value
//     length padded to the next 4-byte boundary.
//   - END: no movement; callers must not advance past the terminal token.
func NextToken(b []byte, off, limit int) (int, error) {
	tok, err := TokenAt(b, off, limit)
	if err != nil {
		return 0, err
	}

	switch tok {
	case TokenBeginNode:
		name, ok := CString(b, off+TokenSize, limit)
		if !ok {
			return 0, fmt.Errorf("format: unterminated node name at %d: %w", off+TokenSize, ErrTruncated)
		}
		if len(name) == 0 {
			// Root node: nameless, represented by a single padding word.
			return boundedNext(off+TokenSize+TokenSize, off, limit)
		}
		return boundedNext(off+TokenSize+AlignToken(len(name)+1), off, limit)

	case TokenEndNode, TokenNop:
		return boundedNext(off+TokenSize, off, limit)

	case TokenProp:
		descOff := off + TokenSize
		if descOff+PropDescSize > limit {
			return 0, fmt.Errorf("format: property descriptor at %d beyond limit %d: %w", descOff, limit, ErrTruncated)
		}
		propLen := int(ReadU32(b, descOff+PropDescLenOffset))
		return boundedNext(descOff+PropDescSize+AlignToken(propLen), off, limit)

	case TokenEnd:
		return off, nil

	default:
		return 0, fmt.Errorf("format: unknown token 0x%08X at %d: %w", tok, off, ErrMalformed)
	}
}

// boundedNext rejects advances that leave the structure block or fail to
// make progress (a corrupt PROP length can overflow the offset math).
func boundedNext(next, off, limit int) (int, error) {
	if next <= off || next > limit {
		return 0, fmt.Errorf("format: token advance from %d to %d beyond limit %d: %w", off, next, limit, ErrTruncated)
	}
	return next, nil
}
