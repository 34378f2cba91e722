package ir

import "strings"

// Tag is a bitmask of semantic roles carried by segments and nodes. Tags
// drive downstream styling without exposing concrete types.
type Tag uint32

const (
	TagMessage Tag = 1 << iota
	TagTimestamp
	TagLevel
	TagError
	TagStack
	TagKey
	TagValue
	TagBorder
	TagIndent
	TagMeta
)

var tagNames = []struct {
	tag  Tag
	name string
}{
	{TagMessage, "message"},
	{TagTimestamp, "timestamp"},
	{TagLevel, "level"},
	{TagError, "error"},
	{TagStack, "stack"},
	{TagKey, "key"},
	{TagValue, "value"},
	{TagBorder, "border"},
	{TagIndent, "indent"},
	{TagMeta, "meta"},
}

// Has reports whether every bit of u is set in t.
func (t Tag) Has(u Tag) bool {
	return t&u == u
}

func (t Tag) String() string {
	if t == 0 {
		return "<none>"
	}
	parts := make([]string, 0, 4)
	for _, tn := range tagNames {
		if t.Has(tn.tag) {
			parts = append(parts, tn.name)
		}
	}
	return strings.Join(parts, "|")
}
