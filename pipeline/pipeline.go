package pipeline

import (
	"errors"
	"fmt"

	"github.com/pooriaaskarim/logd-sub003/arena"
	"github.com/pooriaaskarim/logd-sub003/debug"
	"github.com/pooriaaskarim/logd-sub003/decor"
	"github.com/pooriaaskarim/logd-sub003/event"
	"github.com/pooriaaskarim/logd-sub003/ir"
)

// Pipeline owns the per-event render lifecycle: checkout, format, decorate,
// encode, dispatch, release. Release is guaranteed on every path, including
// collaborator failure and panic, and happens before any sink I/O: a
// document's lifetime never spans an I/O wait.
type Pipeline struct {
	arena      *arena.Arena
	formatter  Formatter
	filter     Filter
	decorators []decor.Decorator
	routes     []Route
	width      int
}

func New(f Formatter, opts ...Option) *Pipeline {
	p := &Pipeline{
		formatter: f,
		width:     DefaultWidth,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.arena == nil {
		p.arena = arena.New()
	}
	return p
}

// Arena returns the pool backing this pipeline.
func (p *Pipeline) Arena() *arena.Arena {
	return p.arena
}

// ContentWidth is the cell budget left for content after the structural
// decorators take their padding, clamped to at least 1. Formatters wrap
// message text to this width.
func (p *Pipeline) ContentWidth(ev *event.Event) int {
	w := p.width - decor.PaddingWidth(ev, p.decorators)
	if w < 1 {
		w = 1
	}
	return w
}

// Run renders one event. A filtered event returns nil with zero arena work.
// Collaborator failures release the in-flight document, then report; one
// failing sink neither blocks other sinks nor re-triggers rendering.
func (p *Pipeline) Run(ev *event.Event) error {
	if p.filter != nil && !p.filter.Accept(ev) {
		return nil
	}
	bufs, rerr := p.render(ev)
	if bufs == nil {
		return rerr
	}
	return errors.Join(rerr, p.dispatch(ev, bufs))
}

// render drives checkout through encode and always releases the document
// before returning. It yields the encoded bytes per route; a route whose
// encoder failed has a nil entry, and the error aggregates every failure.
func (p *Pipeline) render(ev *event.Event) (bufs [][]byte, err error) {
	doc := p.arena.CheckoutDocument()
	defer func() {
		if r := recover(); r != nil {
			bufs = nil
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
		p.arena.ReleaseRecursive(doc)
	}()

	if ferr := p.formatter.Format(ev, doc, p.arena); ferr != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, ferr)
	}
	out, derr := decor.Compose(doc, ev, p.decorators)
	if out != nil {
		doc = out
	}
	if derr != nil {
		if debug.Pipeline() {
			debug.Logf("pipeline: decorate failed: %v\n", derr)
		}
		return nil, derr
	}

	bufs = make([][]byte, len(p.routes))
	var errs []error
	seen := make(map[Encoder]int, len(p.routes))
	for i := range p.routes {
		enc := p.routes[i].Encoder
		if j, ok := seen[enc]; ok {
			bufs[i] = bufs[j]
			continue
		}
		seen[enc] = i
		b, eerr := p.encode(enc, ev, doc)
		if eerr != nil {
			errs = append(errs, eerr)
			continue
		}
		bufs[i] = b
	}
	return bufs, errors.Join(errs...)
}

func (p *Pipeline) encode(enc Encoder, ev *event.Event, doc *ir.Document) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("%w: panic: %v", ErrEncode, r)
		}
	}()
	b, err = enc.Encode(ev, doc, ev.Level)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return b, err
}

// dispatch fans encoded records out to the routes' sinks. The document is
// already released; only bytes cross this boundary.
func (p *Pipeline) dispatch(ev *event.Event, bufs [][]byte) error {
	var errs []error
	for i := range p.routes {
		if bufs[i] == nil {
			continue
		}
		for _, s := range p.routes[i].Sinks {
			if err := p.output(s, bufs[i], ev); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (p *Pipeline) output(s Sink, b []byte, ev *event.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrSink, r)
		}
	}()
	if oerr := s.Output(b, ev, ev.Level); oerr != nil {
		return fmt.Errorf("%w: %v", ErrSink, oerr)
	}
	return nil
}
