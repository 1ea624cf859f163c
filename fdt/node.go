package fdt

// Node is a lightweight, non-owning handle to one node of the tree: a tree
// reference plus the offset of the node's BEGIN_NODE token. The zero value
// is the invalid handle; invalid handles are legal, inert values and every
// lookup on them reports "not found".
type Node struct {
	t   *Tree
	off int
}

// Valid reports whether the handle references a node. Handles returned by
// Child/ChildAt/Find are invalid when the lookup missed.
func (n Node) Valid() bool { return n.t != nil && n.off != 0 }

// Name returns the node's name, unit address included ("uart@10000000").
// The root's name is empty.
func (n Node) Name() string {
	if !n.Valid() {
		return ""
	}
	name, ok := n.t.nodeNameAt(n.off)
	if !ok {
		return ""
	}
	return string(name)
}

// Child searches the node's subtree depth-first for the first node whose
// full name equals name, and returns its handle, or an invalid one on a
// miss or a malformed stream. The search descends transitively, so a match
// may come from any depth below the node, not only its immediate children;
// the scan stops at the first hit in document order.
func (n Node) Child(name string) Node {
	return n.find(nodeFinder{t: n.t, name: name})
}

// ChildAt is Child with the unit address matched separately: the
// encountered name is split at its first '@'; the prefix must equal name
// and the suffix must equal unitAddress exactly. Nodes without a unit
// address never match.
func (n Node) ChildAt(name, unitAddress string) Node {
	return n.find(nodeFinder{t: n.t, name: name, unit: unitAddress, hasUnit: true})
}

func (n Node) find(f nodeFinder) Node {
	if !n.Valid() {
		return Node{}
	}
	// A malformed tail past the match point is irrelevant; the finder
	// either holds a result or it does not.
	_ = n.t.walk(n.off, &f)
	return f.result
}

// Property searches the node's subtree for the first property named name
// and returns its raw value as a subslice of the blob. found
// distinguishes a zero-length property (empty slice, true) from a miss
// (nil, false); interpreting the bytes is the caller's concern.
func (n Node) Property(name string) (value []byte, found bool) {
	if !n.Valid() {
		return nil, false
	}
	f := propFinder{t: n.t, name: name}
	_ = n.t.walk(n.off, &f)
	if !f.found {
		return nil, false
	}
	return n.t.data[f.valOff : f.valOff+f.length], true
}

// HasProperty reports whether the node's subtree carries a property named
// name, zero-length properties included.
func (n Node) HasProperty(name string) bool {
	_, found := n.Property(name)
	return found
}
