package pipeline

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pooriaaskarim/logd-sub003/arena"
	"github.com/pooriaaskarim/logd-sub003/decor"
	"github.com/pooriaaskarim/logd-sub003/event"
	"github.com/pooriaaskarim/logd-sub003/ir"
)

// lineFormatter renders the message as a single line node.
type lineFormatter struct{}

func (lineFormatter) Format(ev *event.Event, doc *ir.Document, nodes *arena.Arena) error {
	doc.Add(ir.MessageNodeAt(nodes.CheckoutNode(ir.KindMessage), ir.Seg(ev.Message, ir.TagMessage)))
	return nil
}

// textEncoder joins line nodes, one record per call, newline-terminated.
type textEncoder struct{ calls int }

func (e *textEncoder) Encode(ev *event.Event, doc *ir.Document, lvl event.Level) ([]byte, error) {
	e.calls++
	var b bytes.Buffer
	for _, n := range doc.Nodes {
		if n.Kind.IsLine() {
			b.WriteString(n.Text())
			b.WriteByte('\n')
		}
	}
	return b.Bytes(), nil
}

type bufSink struct {
	buf  bytes.Buffer
	fail bool
}

func (s *bufSink) Output(encoded []byte, ev *event.Event, lvl event.Level) error {
	if s.fail {
		return errors.New("sink down")
	}
	s.buf.Write(encoded)
	return nil
}

type minLevel struct{ lvl event.Level }

func (f minLevel) Accept(ev *event.Event) bool { return ev.Level >= f.lvl }

type failFormatter struct{}

func (failFormatter) Format(ev *event.Event, doc *ir.Document, nodes *arena.Arena) error {
	doc.Add(ir.MessageNodeAt(nodes.CheckoutNode(ir.KindMessage), ir.Seg("partial", ir.TagMessage)))
	return errors.New("bad field")
}

type failEncoder struct{}

func (failEncoder) Encode(ev *event.Event, doc *ir.Document, lvl event.Level) ([]byte, error) {
	return nil, errors.New("cannot encode")
}

type panicEncoder struct{}

func (panicEncoder) Encode(ev *event.Event, doc *ir.Document, lvl event.Level) ([]byte, error) {
	panic("encoder bug")
}

func TestRun(t *testing.T) {
	sink := &bufSink{}
	p := New(lineFormatter{}, WithRoutes(Route{Encoder: &textEncoder{}, Sinks: []Sink{sink}}))
	if err := p.Run(event.New(event.InfoLevel, "service started")); err != nil {
		t.Fatal(err)
	}
	if got := sink.buf.String(); got != "service started\n" {
		t.Errorf("sink got %q", got)
	}
	if got := p.Arena().FreeDocuments(); got != 1 {
		t.Errorf("document not released: free=%d", got)
	}
}

func TestRejectedEventNoCheckout(t *testing.T) {
	p := New(lineFormatter{},
		WithFilter(minLevel{event.WarnLevel}),
		WithRoutes(Route{Encoder: &textEncoder{}, Sinks: []Sink{&bufSink{}}}),
	)
	if err := p.Run(event.New(event.DebugLevel, "noisy")); err != nil {
		t.Fatal(err)
	}
	if got := p.Arena().Checkouts(); got != 0 {
		t.Errorf("rejected event made %d checkouts", got)
	}
}

// poolDepths snapshots every free-list.
func poolDepths(a *arena.Arena) map[ir.Kind]int {
	m := map[ir.Kind]int{}
	for _, k := range ir.Kinds() {
		m[k] = a.FreeNodes(k)
	}
	m[ir.Kind(-1)] = a.FreeDocuments()
	return m
}

func assertDepths(t *testing.T, a *arena.Arena, want map[ir.Kind]int) {
	t.Helper()
	for k, d := range poolDepths(a) {
		if d != want[k] {
			t.Errorf("free-list %v depth = %d, want %d", k, d, want[k])
		}
	}
}

func TestEncoderFailureNoLeak(t *testing.T) {
	p := New(lineFormatter{}, WithRoutes(Route{Encoder: failEncoder{}, Sinks: []Sink{&bufSink{}}}))
	// warm the pool to a steady state
	p.Run(event.New(event.InfoLevel, "warm"))
	before := poolDepths(p.Arena())

	err := p.Run(event.New(event.InfoLevel, "boom"))
	if !errors.Is(err, ErrEncode) {
		t.Fatalf("err = %v, want ErrEncode", err)
	}
	assertDepths(t, p.Arena(), before)
}

func TestEncoderPanicNoLeak(t *testing.T) {
	p := New(lineFormatter{}, WithRoutes(Route{Encoder: panicEncoder{}, Sinks: []Sink{&bufSink{}}}))
	p.Run(event.New(event.InfoLevel, "warm"))
	before := poolDepths(p.Arena())

	err := p.Run(event.New(event.InfoLevel, "boom"))
	if !errors.Is(err, ErrEncode) {
		t.Fatalf("err = %v, want ErrEncode", err)
	}
	assertDepths(t, p.Arena(), before)
}

func TestFormatterFailureReleases(t *testing.T) {
	sink := &bufSink{}
	p := New(failFormatter{}, WithRoutes(Route{Encoder: &textEncoder{}, Sinks: []Sink{sink}}))
	err := p.Run(event.New(event.InfoLevel, "x"))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("err = %v, want ErrFormat", err)
	}
	if sink.buf.Len() != 0 {
		t.Error("failed format still reached a sink")
	}
	// the partially built document and its node were still released
	if got := p.Arena().FreeDocuments(); got != 1 {
		t.Errorf("FreeDocuments = %d, want 1", got)
	}
	if got := p.Arena().FreeNodes(ir.KindMessage); got != 1 {
		t.Errorf("FreeNodes(Message) = %d, want 1", got)
	}
}

func TestDecoratorFailureReleases(t *testing.T) {
	a := arena.New()
	sink := &bufSink{}
	p := New(lineFormatter{},
		WithArena(a),
		WithDecorators(boomDecorator{}),
		WithRoutes(Route{Encoder: &textEncoder{}, Sinks: []Sink{sink}}),
	)
	err := p.Run(event.New(event.InfoLevel, "x"))
	if !errors.Is(err, decor.ErrDecorate) {
		t.Fatalf("err = %v, want ErrDecorate", err)
	}
	if sink.buf.Len() != 0 {
		t.Error("failed decoration still reached a sink")
	}
	if got := a.FreeDocuments(); got != 1 {
		t.Errorf("FreeDocuments = %d, want 1", got)
	}
	// the pipeline stays usable
	if err := p2ndRun(p); err != nil {
		t.Errorf("pipeline unusable after decorator failure: %v", err)
	}
}

type boomDecorator struct{}

func (boomDecorator) Category() decor.Category { return decor.Content }
func (boomDecorator) PaddingWidth(ev *event.Event) int { return 0 }
func (boomDecorator) Descriptor() *ir.Node { return ir.MessageNode(ir.Seg("boom", ir.TagMeta)) }
func (boomDecorator) Decorate(doc *ir.Document, ev *event.Event) (*ir.Document, error) {
	panic("decorator bug")
}

func p2ndRun(p *Pipeline) error {
	// strip the bad decorator by running a fresh pipeline on the same arena
	q := New(lineFormatter{}, WithArena(p.Arena()))
	return q.Run(event.New(event.InfoLevel, "recovered"))
}

func TestSinkFailureIsolated(t *testing.T) {
	bad := &bufSink{fail: true}
	good := &bufSink{}
	p := New(lineFormatter{}, WithRoutes(Route{Encoder: &textEncoder{}, Sinks: []Sink{bad, good}}))
	err := p.Run(event.New(event.InfoLevel, "fan out"))
	if !errors.Is(err, ErrSink) {
		t.Fatalf("err = %v, want ErrSink", err)
	}
	if got := good.buf.String(); got != "fan out\n" {
		t.Errorf("surviving sink got %q", got)
	}
}

func TestEncodeOncePerEncoder(t *testing.T) {
	enc := &textEncoder{}
	s1, s2, s3 := &bufSink{}, &bufSink{}, &bufSink{}
	other := &textEncoder{}
	p := New(lineFormatter{}, WithRoutes(
		Route{Encoder: enc, Sinks: []Sink{s1}},
		Route{Encoder: enc, Sinks: []Sink{s2}},
		Route{Encoder: other, Sinks: []Sink{s3}},
	))
	if err := p.Run(event.New(event.InfoLevel, "shared")); err != nil {
		t.Fatal(err)
	}
	if enc.calls != 1 {
		t.Errorf("shared encoder ran %d times, want 1", enc.calls)
	}
	if other.calls != 1 {
		t.Errorf("distinct encoder ran %d times, want 1", other.calls)
	}
	for i, s := range []*bufSink{s1, s2, s3} {
		if got := s.buf.String(); got != "shared\n" {
			t.Errorf("sink %d got %q", i, got)
		}
	}
}

func TestContentWidth(t *testing.T) {
	a := arena.New()
	p := New(lineFormatter{},
		WithArena(a),
		WithWidth(80),
		WithDecorators(decor.NewBox(a, decor.Rounded, 0), decor.NewIndent(a, 2)),
	)
	if got := p.ContentWidth(event.New(event.InfoLevel, "")); got != 72 {
		t.Errorf("ContentWidth = %d, want 72", got)
	}

	narrow := New(lineFormatter{}, WithArena(a), WithWidth(3),
		WithDecorators(decor.NewBox(a, decor.Rounded, 0)))
	if got := narrow.ContentWidth(event.New(event.InfoLevel, "")); got != 1 {
		t.Errorf("ContentWidth = %d, want clamp to 1", got)
	}
}
