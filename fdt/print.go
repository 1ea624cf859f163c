package fdt

import (
	"fmt"
	"io"

	"github.com/hsantos/fdtkit/internal/format"
)

// Print renders the node hierarchy below n as indented text, one line per
// node and property, in document order:
//
//	/ {
//	  compatible (11 bytes)
//	  uart@10000000 {
//	    reg (16 bytes)
//	  }
//	}
//
// Property values are shown by size only; decoding them is caller-specific.
func (n Node) Print(w io.Writer) error {
	if !n.Valid() {
		return fmt.Errorf("fdt: print on invalid node: %w", ErrMalformed)
	}
	pv := printVisitor{t: n.t, w: w}
	if err := n.t.walk(n.off, &pv); err != nil {
		return err
	}
	return pv.err
}

// Print renders the whole tree from the root.
func (t *Tree) Print(w io.Writer) error {
	if !t.Valid() {
		return fmt.Errorf("fdt: print on invalid tree: %w", ErrBadMagic)
	}
	return t.Root().Print(w)
}

type printVisitor struct {
	t     *Tree
	w     io.Writer
	depth int
	err   error
}

func (p *printVisitor) OnBeginNode(off int) {
	name, _ := p.t.nodeNameAt(off)
	label := string(name)
	if label == "" {
		label = "/"
	}
	p.printf("%s%s {\n", indent(p.depth), label)
	p.depth++
}

func (p *printVisitor) OnEndNode(int) {
	p.depth--
	p.printf("%s}\n", indent(p.depth))
}

func (p *printVisitor) OnProperty(off int) {
	descOff := off + format.TokenSize
	if descOff+format.PropDescSize > p.t.structLimit() {
		return
	}
	length := format.ReadU32(p.t.data, descOff+format.PropDescLenOffset)
	nameOff := format.ReadU32(p.t.data, descOff+format.PropDescNameOffset)
	name, ok := p.t.stringAt(nameOff)
	if !ok {
		p.printf("%s<bad name offset 0x%X> (%d bytes)\n", indent(p.depth), nameOff, length)
		return
	}
	p.printf("%s%s (%d bytes)\n", indent(p.depth), name, length)
}

func (p *printVisitor) OnNop(int) {}
func (p *printVisitor) Satisfied() bool { return p.err != nil }

func (p *printVisitor) printf(f string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, f, args...)
}

func indent(depth int) string {
	const pad = "                                "
	n := depth * 2
	if n > len(pad) {
		n = len(pad)
	}
	return pad[:n]
}
