package decor

import (
	"strconv"
	"strings"

	"github.com/pooriaaskarim/logd-sub003/arena"
	"github.com/pooriaaskarim/logd-sub003/event"
	"github.com/pooriaaskarim/logd-sub003/ir"
)

// indentStep is the cell width of one hierarchy level.
const indentStep = 2

type indent struct {
	arena *arena.Arena
	level int
}

// NewIndent replaces every line, border lines included, with an indent node
// carrying level steps of padding before the displaced content, so a framed
// block indents as a unit. Indent nodes come from the given arena; the lines
// they displace go back to it.
func NewIndent(a *arena.Arena, level int) Decorator {
	if level < 0 {
		level = 0
	}
	return &indent{arena: a, level: level}
}

func (in *indent) Category() Category { return Hierarchy }
func (in *indent) PaddingWidth(ev *event.Event) int { return in.level * indentStep }

func (in *indent) Descriptor() *ir.Node {
	return descriptor("structural.indent", strconv.Itoa(in.level))
}

func (in *indent) Decorate(doc *ir.Document, ev *event.Event) (*ir.Document, error) {
	if in.level == 0 {
		return doc, nil
	}
	pad := strings.Repeat(" ", in.level*indentStep)
	for i, n := range doc.Nodes {
		if !n.Kind.IsLine() {
			continue
		}
		line := ir.IndentNodeAt(in.arena.CheckoutNode(ir.KindIndent), ir.Seg(pad, ir.TagIndent))
		line.Tags |= n.Tags
		line.Segments = append(line.Segments, n.Segments...)
		doc.Nodes[i] = line
		in.arena.Release(n)
	}
	return doc, nil
}
