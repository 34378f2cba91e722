package pipeline_test

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pooriaaskarim/logd-sub003/arena"
	"github.com/pooriaaskarim/logd-sub003/decor"
	"github.com/pooriaaskarim/logd-sub003/event"
	"github.com/pooriaaskarim/logd-sub003/ir"
	"github.com/pooriaaskarim/logd-sub003/pipeline"
)

type exampleFormatter struct{}

func (exampleFormatter) Format(ev *event.Event, doc *ir.Document, nodes *arena.Arena) error {
	doc.Add(ir.MessageNodeAt(nodes.CheckoutNode(ir.KindMessage),
		ir.Seg(ev.Level.String(), ir.TagLevel),
		ir.Seg(" "+ev.Message, ir.TagMessage),
	))
	return nil
}

type exampleEncoder struct{}

func (exampleEncoder) Encode(ev *event.Event, doc *ir.Document, lvl event.Level) ([]byte, error) {
	var b bytes.Buffer
	for _, n := range doc.Nodes {
		if n.Kind.IsLine() {
			b.WriteString(n.Text())
			b.WriteByte('\n')
		}
	}
	return b.Bytes(), nil
}

type stdoutSink struct{}

func (stdoutSink) Output(encoded []byte, ev *event.Event, lvl event.Level) error {
	_, err := os.Stdout.Write(encoded)
	return err
}

func Example() {
	a := arena.New()
	p := pipeline.New(exampleFormatter{},
		pipeline.WithArena(a),
		pipeline.WithWidth(30),
		pipeline.WithDecorators(decor.NewBox(a, decor.ASCII, 20)),
		pipeline.WithRoutes(pipeline.Route{Encoder: exampleEncoder{}, Sinks: []pipeline.Sink{stdoutSink{}}}),
	)

	if err := p.Run(event.New(event.InfoLevel, "service started")); err != nil {
		fmt.Println("render failed:", err)
	}

	// Output:
	// +----------------------+
	// | INFO service started |
	// +----------------------+
}
