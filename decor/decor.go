package decor

import (
	"errors"
	"fmt"
	"slices"

	"github.com/pooriaaskarim/logd-sub003/debug"
	"github.com/pooriaaskarim/logd-sub003/event"
	"github.com/pooriaaskarim/logd-sub003/ir"
)

var ErrDecorate = errors.New("decorate error")

// Decorator transforms the document of one event. Implementations belong to
// exactly one Category and must be safe for repeated invocation.
type Decorator interface {
	Category() Category

	// PaddingWidth is the number of display cells the decorator adds around
	// content on each line. Visual decorators report 0: escape sequences
	// occupy no cells.
	PaddingWidth(ev *event.Event) int

	// Decorate transforms doc in place or returns a replacement checked out
	// from the same arena; a replacing decorator releases the document it
	// consumed before returning.
	Decorate(doc *ir.Document, ev *event.Event) (*ir.Document, error)

	// Descriptor is a structural self-description. The engine dedups
	// decorator lists by ir.Equal over descriptors, so two identically
	// configured decorators compose once.
	Descriptor() *ir.Node
}

// Order dedups decorators by descriptor equality, preserving first
// occurrence, then stable-sorts by category priority. Any permutation of the
// same decorator multiset yields the same nesting; only relative order
// within a category follows input order.
func Order(decorators []Decorator) []Decorator {
	uniq := make([]Decorator, 0, len(decorators))
	descs := make([]*ir.Node, 0, len(decorators))
	for _, d := range decorators {
		desc := d.Descriptor()
		dup := false
		for _, seen := range descs {
			if ir.Equal(seen, desc) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		uniq = append(uniq, d)
		descs = append(descs, desc)
	}
	slices.SortStableFunc(uniq, func(a, b Decorator) int {
		return a.Category().priority() - b.Category().priority()
	})
	return uniq
}

// Compose folds the ordered decorators over doc. On failure the partially
// decorated document is returned alongside the error so the caller can still
// release it; a panicking decorator is reported as an error and does not
// escape.
func Compose(doc *ir.Document, ev *event.Event, decorators []Decorator) (*ir.Document, error) {
	out := doc
	for _, d := range Order(decorators) {
		if debug.Compose() {
			debug.Logf("decor: %s %s\n", d.Category(), d.Descriptor().Text())
		}
		next, err := decorate(d, out, ev)
		if next != nil {
			out = next
		}
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

func decorate(d Decorator, doc *ir.Document, ev *event.Event) (out *ir.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = doc
			err = fmt.Errorf("%w: %s: panic: %v", ErrDecorate, d.Category(), r)
		}
	}()
	out, err = d.Decorate(doc, ev)
	if err != nil {
		err = fmt.Errorf("%w: %s: %v", ErrDecorate, d.Category(), err)
	}
	if out == nil {
		out = doc
	}
	return out, err
}

// PaddingWidth sums the padding the structural decorators in the list will
// add, after dedup. The orchestrator subtracts it from the render width to
// budget content width for the formatter's wrap step.
func PaddingWidth(ev *event.Event, decorators []Decorator) int {
	total := 0
	for _, d := range Order(decorators) {
		switch d.Category() {
		case Framing, Hierarchy:
			total += d.PaddingWidth(ev)
		}
	}
	return total
}

// descriptor builds the identity node shared by the built-in decorators.
func descriptor(parts ...string) *ir.Node {
	n := ir.MessageNode()
	n.Tags |= ir.TagMeta
	for _, p := range parts {
		n.AddSegment(ir.Seg(p, ir.TagMeta))
	}
	return n
}
