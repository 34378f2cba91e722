package ir

import "strings"

// Segment is the smallest styled unit: a text run plus its semantic tags.
type Segment struct {
	Text string
	Tags Tag
}

func Seg(text string, tags Tag) Segment {
	return Segment{Text: text, Tags: tags}
}

// Node is one IR element. Message and Border nodes render as a single output
// line of Segments. Map nodes hold parallel Keys/Values in insertion order;
// List nodes hold ordered Values. Fields are mutated in place during one
// pipeline run and cleared by Reset when the node returns to its pool.
type Node struct {
	Kind     Kind
	Tags     Tag
	Segments []Segment
	Keys     []string
	Values   []*Node
}

// Document is the semantic IR for exactly one rendered event: an ordered
// node sequence plus an open string-keyed metadata sidecar.
type Document struct {
	Nodes []*Node
	Meta  map[string]string
}

func MessageNode(segs ...Segment) *Node {
	return MessageNodeAt(&Node{}, segs...)
}

func MessageNodeAt(n *Node, segs ...Segment) *Node {
	n.Kind = KindMessage
	n.Segments = append(n.Segments, segs...)
	return n
}

func BorderNode(segs ...Segment) *Node {
	return BorderNodeAt(&Node{}, segs...)
}

func BorderNodeAt(n *Node, segs ...Segment) *Node {
	n.Kind = KindBorder
	n.Tags |= TagBorder
	n.Segments = append(n.Segments, segs...)
	return n
}

func IndentNode(segs ...Segment) *Node {
	return IndentNodeAt(&Node{}, segs...)
}

// IndentNodeAt builds the line variant indentation decorators emit: leading
// pad segments followed by the content of the line they displaced. Node tags
// stay clear so the content keeps its own roles; only the pad segments carry
// TagIndent.
func IndentNodeAt(n *Node, segs ...Segment) *Node {
	n.Kind = KindIndent
	n.Segments = append(n.Segments, segs...)
	return n
}

func MapNode() *Node {
	return MapNodeAt(&Node{})
}

func MapNodeAt(n *Node) *Node {
	n.Kind = KindMap
	return n
}

func ListNode(vals ...*Node) *Node {
	return ListNodeAt(&Node{}, vals...)
}

func ListNodeAt(n *Node, vals ...*Node) *Node {
	n.Kind = KindList
	n.Values = append(n.Values, vals...)
	return n
}

func (n *Node) WithTags(t Tag) *Node {
	n.Tags |= t
	return n
}

// Put appends a key/value pair to a Map node, preserving insertion order.
func (n *Node) Put(key string, val *Node) *Node {
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, val)
	return n
}

// Append adds values to a List node.
func (n *Node) Append(vals ...*Node) *Node {
	n.Values = append(n.Values, vals...)
	return n
}

// AddSegment appends a segment to a line node.
func (n *Node) AddSegment(seg Segment) *Node {
	n.Segments = append(n.Segments, seg)
	return n
}

// Get returns the value stored under field in a Map node, or nil.
func Get(n *Node, field string) *Node {
	for i := range n.Keys {
		if n.Keys[i] == field {
			return n.Values[i]
		}
	}
	return nil
}

// Text returns the concatenated segment text of a line node.
func (n *Node) Text() string {
	switch len(n.Segments) {
	case 0:
		return ""
	case 1:
		return n.Segments[0].Text
	}
	var b strings.Builder
	for i := range n.Segments {
		b.WriteString(n.Segments[i].Text)
	}
	return b.String()
}

// Visit walks the node tree. f runs before descending (isPost false) and
// again after (isPost true); returning false from the pre call skips the
// children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Walk visits every node of the document in order.
func (d *Document) Walk(f func(n *Node, isPost bool) (bool, error)) error {
	for _, n := range d.Nodes {
		if err := n.Visit(f); err != nil {
			return err
		}
	}
	return nil
}

// Add appends nodes to the document.
func (d *Document) Add(nodes ...*Node) *Document {
	d.Nodes = append(d.Nodes, nodes...)
	return d
}

// Reset clears every mutable field so the node can return to its free-list.
// Kind survives: free-lists are kept per kind.
func (n *Node) Reset() {
	n.Tags = 0
	n.Segments = n.Segments[:0]
	n.Keys = n.Keys[:0]
	n.Values = n.Values[:0]
}

// Reset clears the node sequence and metadata sidecar.
func (d *Document) Reset() {
	d.Nodes = d.Nodes[:0]
	clear(d.Meta)
}
