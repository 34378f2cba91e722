package ir

import "fmt"

type Kind int

const (
	KindMessage Kind = iota
	KindMap
	KindList
	KindBorder
	KindIndent
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindMessage: "Message",
		KindMap:     "Map",
		KindList:    "List",
		KindBorder:  "Border",
		KindIndent:  "Indent",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Message": KindMessage,
		"Map":     KindMap,
		"List":    KindList,
		"Border":  KindBorder,
		"Indent":  KindIndent,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		KindMessage,
		KindMap,
		KindList,
		KindBorder,
		KindIndent,
	}
}

// IsLine reports whether nodes of this kind render as one output line of
// segments. Map and List nodes carry structured data instead.
func (k Kind) IsLine() bool {
	switch k {
	case KindMap, KindList:
		return false
	default:
		return true
	}
}
