package pipeline

import (
	"github.com/pooriaaskarim/logd-sub003/arena"
	"github.com/pooriaaskarim/logd-sub003/decor"
)

// DefaultWidth is the render width when none is configured.
const DefaultWidth = 80

type Option func(*Pipeline)

// WithArena shares an arena between pipelines instead of owning a fresh one.
func WithArena(a *arena.Arena) Option {
	return func(p *Pipeline) { p.arena = a }
}

func WithFilter(f Filter) Option {
	return func(p *Pipeline) { p.filter = f }
}

func WithDecorators(ds ...decor.Decorator) Option {
	return func(p *Pipeline) { p.decorators = append(p.decorators, ds...) }
}

func WithRoutes(rs ...Route) Option {
	return func(p *Pipeline) { p.routes = append(p.routes, rs...) }
}

// WithWidth sets the total render width budget in display cells.
func WithWidth(w int) Option {
	return func(p *Pipeline) { p.width = w }
}
