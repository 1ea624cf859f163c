package fdt

import (
	"fmt"

	"github.com/hsantos/fdtkit/internal/format"
)

// Visitor receives token events during a structure-block walk, in document
// order (depth-first, pre-order). Offsets are absolute byte offsets of the
// token tag within the blob.
//
// Satisfied is polled before every token read; once it reports true the
// walk stops immediately and the remainder of the stream is never read.
type Visitor interface {
	OnBeginNode(off int)
	OnEndNode(off int)
	OnProperty(off int)
	OnNop(off int)
	Satisfied() bool
}

// Walk traverses the node's whole subtree, firing the visitor for every
// token it encounters, the node's own BEGIN_NODE included. It returns nil
// when the subtree was consumed (or the visitor was satisfied), and an
// ErrMalformed- or ErrTruncated-wrapped error when the token stream
// violates the grammar.
func (n Node) Walk(v Visitor) error {
	if !n.Valid() {
		return fmt.Errorf("fdt: walk on invalid node: %w", format.ErrMalformed)
	}
	return n.t.walk(n.off, v)
}

// walk is the traversal engine. The token at start must be BEGIN_NODE.
//
// The recursion of the node grammar is driven by a plain depth counter
// instead of the call stack: nesting depth is controlled by the blob's
// producer, and a hostile blob must exhaust neither the stack nor the
// walk. Worst case is one bounded pass over the structure block.
func (t *Tree) walk(start int, v Visitor) error {
	data, limit := t.data, t.structLimit()

	tok, err := format.TokenAt(data, start, limit)
	if err != nil {
		return err
	}
	if tok != format.TokenBeginNode {
		return fmt.Errorf("fdt: walk must start at BEGIN_NODE, got 0x%08X at %d: %w",
			tok, start, format.ErrMalformed)
	}
	v.OnBeginNode(start)
	pos, err := format.NextToken(data, start, limit)
	if err != nil {
		return err
	}

	for depth := 1; ; {
		if v.Satisfied() {
			return nil
		}
		tok, err := format.TokenAt(data, pos, limit)
		if err != nil {
			return err
		}
		switch tok {
		case format.TokenBeginNode:
			v.OnBeginNode(pos)
			depth++
		case format.TokenEndNode:
			v.OnEndNode(pos)
			depth--
		case format.TokenProp:
			v.OnProperty(pos)
		case format.TokenNop:
			v.OnNop(pos)
		case format.TokenEnd:
			// Legal only after the top-level node is closed, which the
			// depth==0 branch below consumes; here it is out of place.
			return fmt.Errorf("fdt: unexpected END inside node at %d: %w", pos, format.ErrMalformed)
		default:
			return fmt.Errorf("fdt: unexpected token 0x%08X at %d: %w", tok, pos, format.ErrMalformed)
		}
		if pos, err = format.NextToken(data, pos, limit); err != nil {
			return err
		}
		if depth == 0 {
			// The start node is closed. A walk over the whole structure
			// block must be terminated by the END token.
			if start == t.structStart() {
				endTok, err := format.TokenAt(data, pos, limit)
				if err != nil {
					return err
				}
				if endTok != format.TokenEnd {
					return fmt.Errorf("fdt: expected END after top-level node, got 0x%08X at %d: %w",
						endTok, pos, format.ErrMalformed)
				}
			}
			return nil
		}
	}
}
