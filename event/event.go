// Package event defines the raw log occurrence submitted to the rendering
// pipeline: severity, message, optional error and stack, plus structured
// fields and free-form metadata. Events are inputs; the IR a pipeline run
// builds from them lives in the ir package.
package event

import "time"

// Field is one structured key/value attached to an event.
type Field struct {
	Key   string
	Value any
}

// Event is one log occurrence. It is read-only to the pipeline core;
// collaborators receive the same instance at every stage of a run.
type Event struct {
	Time    time.Time
	Level   Level
	Message string
	Err     error
	Stack   []byte
	Fields  []Field
	Meta    map[string]string
}

func New(lvl Level, msg string) *Event {
	return &Event{
		Time:    time.Now(),
		Level:   lvl,
		Message: msg,
	}
}

// With appends a structured field and returns the event.
func (e *Event) With(key string, value any) *Event {
	e.Fields = append(e.Fields, Field{Key: key, Value: value})
	return e
}

// WithError attaches err and returns the event.
func (e *Event) WithError(err error) *Event {
	e.Err = err
	return e
}

// WithMeta sets one metadata key and returns the event.
func (e *Event) WithMeta(key, value string) *Event {
	if e.Meta == nil {
		e.Meta = map[string]string{}
	}
	e.Meta[key] = value
	return e
}
