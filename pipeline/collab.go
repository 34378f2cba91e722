package pipeline

import (
	"github.com/pooriaaskarim/logd-sub003/arena"
	"github.com/pooriaaskarim/logd-sub003/event"
	"github.com/pooriaaskarim/logd-sub003/ir"
)

// Formatter builds the initial IR for an event. It works in place: nodes go
// into the already-checked-out doc, sourced from nodes, and the formatter
// never swaps the document.
type Formatter interface {
	Format(ev *event.Event, doc *ir.Document, nodes *arena.Arena) error
}

// Encoder turns a finished document into the bytes of one record. The
// encoder alone terminates the record with its medium's delimiter; the core
// and sinks never add or strip one.
type Encoder interface {
	Encode(ev *event.Event, doc *ir.Document, lvl event.Level) ([]byte, error)
}

// Sink delivers one encoded record. Failures are isolated per sink and
// reported; retry policy belongs to the sink.
type Sink interface {
	Output(encoded []byte, ev *event.Event, lvl event.Level) error
}

// Filter is the pre-check consulted before any IR work. A rejected event
// costs no arena checkout.
type Filter interface {
	Accept(ev *event.Event) bool
}

// Route pairs one encoder with the sinks consuming its output. Routes
// sharing an encoder value encode at most once per event.
type Route struct {
	Encoder Encoder
	Sinks   []Sink
}
