// Package arena recycles IR documents and nodes across pipeline runs. Most
// IR lifetimes are one run (microseconds); checking instances back in avoids
// allocation churn under bursty, high-frequency logging. The cost is strict
// release discipline, which the pipeline orchestrator centralizes.
package arena

import (
	"sync"

	"github.com/pooriaaskarim/logd-sub003/debug"
	"github.com/pooriaaskarim/logd-sub003/ir"
)

// Arena holds one LIFO free-list per instance kind. Checkout pops or
// allocates fresh and never fails; Release resets mutable fields and pushes
// back. A mutex guards the free-lists so multi-threaded hosts can share one
// arena; collaborators themselves are never locked.
type Arena struct {
	mu        sync.Mutex
	docs      []*ir.Document
	nodes     [][]*ir.Node
	freeDocs  map[*ir.Document]struct{}
	freeNodes map[*ir.Node]struct{}
	checkouts uint64
}

func New() *Arena {
	return &Arena{
		nodes:     make([][]*ir.Node, len(ir.Kinds())),
		freeDocs:  make(map[*ir.Document]struct{}),
		freeNodes: make(map[*ir.Node]struct{}),
	}
}

// CheckoutDocument returns an empty document, pooled or fresh. The caller
// owns it for one pipeline run and must not retain it past release.
func (a *Arena) CheckoutDocument() *ir.Document {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.checkouts++
	n := len(a.docs)
	if n == 0 {
		return &ir.Document{Meta: map[string]string{}}
	}
	d := a.docs[n-1]
	a.docs[n-1] = nil
	a.docs = a.docs[:n-1]
	delete(a.freeDocs, d)
	return d
}

// CheckoutNode returns an empty node of the given kind, pooled or fresh.
func (a *Arena) CheckoutNode(k ir.Kind) *ir.Node {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.checkouts++
	list := a.nodes[k]
	n := len(list)
	if n == 0 {
		return &ir.Node{Kind: k}
	}
	nd := list[n-1]
	list[n-1] = nil
	a.nodes[k] = list[:n-1]
	delete(a.freeNodes, nd)
	nd.Kind = k
	return nd
}

// Release resets a node and pushes it onto its kind's free-list. Releasing a
// node twice is a programming defect and panics.
func (a *Arena) Release(n *ir.Node) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.freeNodes[n]; ok {
		panic("arena: node released twice")
	}
	n.Reset()
	a.freeNodes[n] = struct{}{}
	a.nodes[n.Kind] = append(a.nodes[n.Kind], n)
}

// ReleaseDocument resets a document and pushes it back, without touching its
// nodes. Use ReleaseRecursive unless the nodes were already released.
func (a *Arena) ReleaseDocument(d *ir.Document) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.freeDocs[d]; ok {
		panic("arena: document released twice")
	}
	d.Reset()
	a.freeDocs[d] = struct{}{}
	a.docs = append(a.docs, d)
}

// ReleaseRecursive releases every node the document owns, children first,
// then the document itself.
func (a *Arena) ReleaseRecursive(d *ir.Document) {
	if debug.Arena() {
		debug.Logf("arena: recursive release of %d nodes\n", len(d.Nodes))
	}
	for _, n := range d.Nodes {
		a.releaseTree(n)
	}
	a.ReleaseDocument(d)
}

func (a *Arena) releaseTree(n *ir.Node) {
	for _, v := range n.Values {
		a.releaseTree(v)
	}
	a.Release(n)
}

// FreeDocuments returns the document free-list depth.
func (a *Arena) FreeDocuments() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.docs)
}

// FreeNodes returns the free-list depth for one node kind.
func (a *Arena) FreeNodes(k ir.Kind) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.nodes[k])
}

// Checkouts returns the cumulative checkout count. A rejected event must
// leave it unchanged.
func (a *Arena) Checkouts() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.checkouts
}
