package decor

import (
	"strconv"
	"strings"

	"github.com/pooriaaskarim/logd-sub003/arena"
	"github.com/pooriaaskarim/logd-sub003/event"
	"github.com/pooriaaskarim/logd-sub003/ir"
	"github.com/pooriaaskarim/logd-sub003/layout"
)

// BorderSet is one family of box-drawing glyphs.
type BorderSet struct {
	Name        string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var (
	Rounded = BorderSet{"rounded", "╭", "╮", "╰", "╯", "─", "│"}
	Square  = BorderSet{"square", "┌", "┐", "└", "┘", "─", "│"}
	Heavy   = BorderSet{"heavy", "┏", "┓", "┗", "┛", "━", "┃"}
	ASCII   = BorderSet{"ascii", "+", "+", "+", "+", "-", "|"}
)

// boxPadding is the per-line cell cost of a box: one glyph column and one
// pad column on each side.
const boxPadding = 4

type box struct {
	arena *arena.Arena
	set   BorderSet
	width int
}

// NewBox frames the document's lines with borders from set. Interior lines
// pad to width content cells; width 0 pads to the widest line. Border nodes
// come from the given arena so recursive release recycles them.
func NewBox(a *arena.Arena, set BorderSet, width int) Decorator {
	return &box{arena: a, set: set, width: width}
}

func (b *box) Category() Category { return Framing }
func (b *box) PaddingWidth(ev *event.Event) int { return boxPadding }

func (b *box) Descriptor() *ir.Node {
	return descriptor("structural.box", b.set.Name, strconv.Itoa(b.width))
}

func (b *box) Decorate(doc *ir.Document, ev *event.Event) (*ir.Document, error) {
	interior := b.width
	if interior <= 0 {
		for _, n := range doc.Nodes {
			if !n.Kind.IsLine() {
				continue
			}
			if w := lineWidth(n); w > interior {
				interior = w
			}
		}
	}

	rule := strings.Repeat(b.set.Horizontal, interior+2)
	top := ir.BorderNodeAt(b.arena.CheckoutNode(ir.KindBorder),
		ir.Seg(b.set.TopLeft+rule+b.set.TopRight, ir.TagBorder))
	bottom := ir.BorderNodeAt(b.arena.CheckoutNode(ir.KindBorder),
		ir.Seg(b.set.BottomLeft+rule+b.set.BottomRight, ir.TagBorder))

	out := make([]*ir.Node, 0, len(doc.Nodes)+2)
	out = append(out, top)
	for _, n := range doc.Nodes {
		if n.Kind.IsLine() {
			b.flank(n, interior)
		}
		out = append(out, n)
	}
	out = append(out, bottom)
	doc.Nodes = out
	return doc, nil
}

// flank wraps one line in vertical border glyphs, padding the interior so
// every line of the box renders equally wide.
func (b *box) flank(n *ir.Node, interior int) {
	segs := make([]ir.Segment, 0, len(n.Segments)+3)
	segs = append(segs, ir.Seg(b.set.Vertical+" ", ir.TagBorder))
	segs = append(segs, n.Segments...)
	if w := lineWidth(n); w < interior {
		segs = append(segs, ir.Seg(strings.Repeat(" ", interior-w), 0))
	}
	segs = append(segs, ir.Seg(" "+b.set.Vertical, ir.TagBorder))
	n.Segments = segs
}

func lineWidth(n *ir.Node) int {
	w := 0
	for i := range n.Segments {
		w += layout.VisibleWidth(n.Segments[i].Text)
	}
	return w
}
