package decor

import (
	"slices"
	"strings"

	"github.com/pooriaaskarim/logd-sub003/event"
	"github.com/pooriaaskarim/logd-sub003/ir"
)

type prefix struct {
	text string
	tags ir.Tag
}

// NewPrefix inserts a literal segment at the start of every message line.
func NewPrefix(text string) Decorator {
	return &prefix{text: text, tags: ir.TagMessage}
}

func (p *prefix) Category() Category { return Content }
func (p *prefix) PaddingWidth(ev *event.Event) int { return 0 }
func (p *prefix) Descriptor() *ir.Node { return descriptor("content.prefix", p.text) }

func (p *prefix) Decorate(doc *ir.Document, ev *event.Event) (*ir.Document, error) {
	for _, n := range doc.Nodes {
		if n.Kind != ir.KindMessage {
			continue
		}
		n.Segments = slices.Insert(n.Segments, 0, ir.Seg(p.text, p.tags))
	}
	return doc, nil
}

type suffix struct {
	text string
	tags ir.Tag
}

// NewSuffix appends a literal segment to the end of every message line.
func NewSuffix(text string) Decorator {
	return &suffix{text: text, tags: ir.TagMessage}
}

func (s *suffix) Category() Category { return Content }
func (s *suffix) PaddingWidth(ev *event.Event) int { return 0 }
func (s *suffix) Descriptor() *ir.Node { return descriptor("content.suffix", s.text) }

func (s *suffix) Decorate(doc *ir.Document, ev *event.Event) (*ir.Document, error) {
	for _, n := range doc.Nodes {
		if n.Kind != ir.KindMessage {
			continue
		}
		n.AddSegment(ir.Seg(s.text, s.tags))
	}
	return doc, nil
}

type mask struct {
	match       string
	replacement string
}

// NewMask is a designated in-place rewriter: every occurrence of match in
// segment text, anywhere in the document, becomes replacement. Used to keep
// secrets out of rendered records.
func NewMask(match, replacement string) Decorator {
	return &mask{match: match, replacement: replacement}
}

func (m *mask) Category() Category { return Content }
func (m *mask) PaddingWidth(ev *event.Event) int { return 0 }
func (m *mask) Descriptor() *ir.Node {
	return descriptor("content.mask", m.match, m.replacement)
}

func (m *mask) Decorate(doc *ir.Document, ev *event.Event) (*ir.Document, error) {
	err := doc.Walk(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		for i := range n.Segments {
			seg := &n.Segments[i]
			if strings.Contains(seg.Text, m.match) {
				seg.Text = strings.ReplaceAll(seg.Text, m.match, m.replacement)
			}
		}
		return true, nil
	})
	return doc, err
}
