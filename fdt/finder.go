package fdt

import (
	"bytes"

	"github.com/hsantos/fdtkit/internal/format"
)

// Search visitors. Both stop the walk at their first hit in document order.

// nodeFinder matches node names on BEGIN_NODE events. With hasUnit, the
// encountered name is split at its first '@' and the prefix and suffix are
// matched separately; otherwise the whole name must be equal.
type nodeFinder struct {
	t       *Tree
	name    string
	unit    string
	hasUnit bool
	result  Node
}

func (f *nodeFinder) OnBeginNode(off int) {
	name, ok := f.t.nodeNameAt(off)
	if ok && f.matches(name) {
		f.result = Node{t: f.t, off: off}
	}
}

func (f *nodeFinder) matches(name []byte) bool {
	if !f.hasUnit {
		return string(name) == f.name
	}
	at := bytes.IndexByte(name, '@')
	if at < 0 {
		return false
	}
	return string(name[:at]) == f.name && string(name[at+1:]) == f.unit
}

func (f *nodeFinder) OnEndNode(int) {}
func (f *nodeFinder) OnProperty(int) {}
func (f *nodeFinder) OnNop(int) {}
func (f *nodeFinder) Satisfied() bool { return f.result.Valid() }

// propFinder matches property names on PROP events, resolving each name
// through the string block. A hit records the value's position and decoded
// length; length zero is a legitimate hit ("found but empty").
type propFinder struct {
	t      *Tree
	name   string
	found  bool
	valOff int
	length int
}

func (f *propFinder) OnProperty(off int) {
	descOff := off + format.TokenSize
	limit := f.t.structLimit()
	if descOff+format.PropDescSize > limit {
		// Let the engine report the truncation when it advances.
		return
	}
	nameOff := format.ReadU32(f.t.data, descOff+format.PropDescNameOffset)
	name, ok := f.t.stringAt(nameOff)
	if !ok || string(name) != f.name {
		return
	}
	length := int(format.ReadU32(f.t.data, descOff+format.PropDescLenOffset))
	valOff := descOff + format.PropDescSize
	if valOff+length > limit {
		return
	}
	f.found = true
	f.valOff = valOff
	f.length = length
}

func (f *propFinder) OnBeginNode(int) {}
func (f *propFinder) OnEndNode(int) {}
func (f *propFinder) OnNop(int) {}
func (f *propFinder) Satisfied() bool { return f.found }
