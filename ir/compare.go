package ir

import (
	"cmp"
	"maps"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	if c := cmp.Compare(rank(a.Kind), rank(b.Kind)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Tags, b.Tags); c != 0 {
		return c
	}
	if c := compareSegments(a.Segments, b.Segments); c != 0 {
		return c
	}
	if c := compareKeys(a.Keys, b.Keys); c != 0 {
		return c
	}
	return compareValues(a.Values, b.Values)
}

// Equal reports structural equality of two nodes.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// EqualDocuments reports structural equality: same node sequence, same
// metadata sidecar.
func EqualDocuments(a, b *Document) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.Nodes) != len(b.Nodes) {
		return false
	}
	for i := range a.Nodes {
		if !Equal(a.Nodes[i], b.Nodes[i]) {
			return false
		}
	}
	return maps.Equal(a.Meta, b.Meta)
}

// rank returns the sorting rank of a kind.
// Order: Message < Border < Indent < Map < List
func rank(k Kind) int {
	switch k {
	case KindMessage:
		return 0
	case KindBorder:
		return 1
	case KindIndent:
		return 2
	case KindMap:
		return 3
	case KindList:
		return 4
	}
	return 100
}

func compareSegments(a, b []Segment) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a[i].Text, b[i].Text); c != 0 {
			return c
		}
		if c := cmp.Compare(a[i].Tags, b[i].Tags); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareKeys(a, b []string) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareValues(a, b []*Node) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
