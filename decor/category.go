package decor

// Category is the closed set of decorator capabilities. Each category has a
// fixed relative priority; composition order across categories never depends
// on input order.
type Category int

const (
	// Content decorators rewrite or augment existing nodes and segments.
	// They run innermost, before structural framing, so inserted text
	// participates in width math.
	Content Category = iota
	// Framing decorators add border lines around existing lines and declare
	// a padding width.
	Framing
	// Hierarchy decorators add a fixed per-level prefix to every line,
	// including border lines, so a framed block indents as a unit.
	Hierarchy
	// Visual decorators apply presentation-only styling. They run outermost
	// and style content and structural segments uniformly.
	Visual
)

var priorities = map[Category]int{
	Content:   0,
	Framing:   1,
	Hierarchy: 2,
	Visual:    4,
}

func (c Category) priority() int {
	p, ok := priorities[c]
	if ok {
		return p
	}
	return 100
}

func (c Category) String() string {
	s, ok := map[Category]string{
		Content:   "Content",
		Framing:   "Framing",
		Hierarchy: "Hierarchy",
		Visual:    "Visual",
	}[c]
	if ok {
		return s
	}
	return "<unknown category>"
}
