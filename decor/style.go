package decor

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/pooriaaskarim/logd-sub003/event"
	"github.com/pooriaaskarim/logd-sub003/ir"
)

type style struct {
	colors  *Colors
	name    string
	enabled bool
}

type StyleOption func(*style)

// StyleName sets the name used for dedup identity; styles with different
// names compose independently.
func StyleName(name string) StyleOption {
	return func(s *style) { s.name = name }
}

// StyleEnabled forces styling on or off.
func StyleEnabled(v bool) StyleOption {
	return func(s *style) { s.enabled = v }
}

// StyleAutoEnable enables styling only when f is a terminal.
func StyleAutoEnable(f *os.File) StyleOption {
	return func(s *style) { s.enabled = isatty.IsTerminal(f.Fd()) }
}

// NewStyle wraps segment text in ANSI styling chosen per role and severity.
// It runs outermost, so border and indent segments added by structural
// decorators style uniformly with content.
func NewStyle(colors *Colors, opts ...StyleOption) Decorator {
	s := &style{colors: colors, name: "default", enabled: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *style) Category() Category { return Visual }
func (s *style) PaddingWidth(ev *event.Event) int { return 0 }
func (s *style) Descriptor() *ir.Node { return descriptor("visual.style", s.name) }

func (s *style) Decorate(doc *ir.Document, ev *event.Event) (*ir.Document, error) {
	if !s.enabled {
		return doc, nil
	}
	err := doc.Walk(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		for i := range n.Segments {
			seg := &n.Segments[i]
			if seg.Text == "" {
				continue
			}
			seg.Text = s.colors.Color(seg.Tags|n.Tags, ev.Level, seg.Text)
		}
		return true, nil
	})
	return doc, err
}
