package fdt

import "fmt"

// Stats summarizes a full traversal of the structure block.
type Stats struct {
	Nodes      int // BEGIN_NODE tokens seen
	Properties int // PROP tokens seen
	Nops       int // NOP tokens seen
	MaxDepth   int // deepest nesting level, root = 1
}

// statsVisitor counts tokens by kind and tracks nesting depth during a
// traversal. It is never satisfied, so it sees the whole subtree.
type statsVisitor struct {
	depth int
	stats Stats
}

func (s *statsVisitor) OnBeginNode(int) {
	s.depth++
	s.stats.Nodes++
	if s.depth > s.stats.MaxDepth {
		s.stats.MaxDepth = s.depth
	}
}

func (s *statsVisitor) OnEndNode(int) { s.depth-- }
func (s *statsVisitor) OnProperty(int) { s.stats.Properties++ }
func (s *statsVisitor) OnNop(int) { s.stats.Nops++ }
func (s *statsVisitor) Satisfied() bool { return false }

// Stats walks the entire structure block and returns token counts and the
// maximum nesting depth. The walk error, if any, is the same malformed or
// truncated class Validate reports.
func (t *Tree) Stats() (Stats, error) {
	if !t.Valid() {
		return Stats{}, fmt.Errorf("fdt: invalid tree: %w", ErrBadMagic)
	}
	var sv statsVisitor
	if err := t.walk(t.structStart(), &sv); err != nil {
		return Stats{}, err
	}
	return sv.stats, nil
}
