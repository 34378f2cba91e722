// Package filter provides an expression-backed event pre-filter. The
// pipeline consults it before any arena work; hosts that need bespoke policy
// implement pipeline.Filter directly.
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/pooriaaskarim/logd-sub003/event"
)

// Expr filters events with a compiled boolean expression. The environment
// exposes level (name), levelno, message, fields, and meta:
//
//	levelno >= 2 && !(message contains "heartbeat")
//
// Run failures and non-boolean results fail open: a filter bug must never
// lose records.
type Expr struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Expr, error) {
	prg, err := expr.Compile(src, expr.Env(envFor(&event.Event{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("filter: compile %q: %w", src, err)
	}
	return &Expr{src: src, prg: prg}, nil
}

func (x *Expr) String() string {
	return x.src
}

func (x *Expr) Accept(ev *event.Event) bool {
	res, err := expr.Run(x.prg, envFor(ev))
	if err != nil {
		return true
	}
	b, ok := res.(bool)
	if !ok {
		return true
	}
	return b
}

func envFor(ev *event.Event) map[string]any {
	fields := make(map[string]any, len(ev.Fields))
	for _, f := range ev.Fields {
		fields[f.Key] = f.Value
	}
	return map[string]any{
		"level":   ev.Level.String(),
		"levelno": int(ev.Level),
		"message": ev.Message,
		"fields":  fields,
		"meta":    ev.Meta,
	}
}
