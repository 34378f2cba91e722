package layout

import "strings"

// PadRight pads s with spaces to the given visible width. Strings already at
// least width cells wide are returned unchanged. For styled strings the
// leading escape prefix is reapplied before the stripped text and a reset is
// appended after the padding, so the padding inherits the style and the style
// is then terminated. Unstyled strings are padded plainly.
func PadRight(s string, width int) string {
	vw := VisibleWidth(s)
	if vw >= width {
		return s
	}
	pad := strings.Repeat(" ", width-vw)
	if strings.IndexByte(s, escByte) < 0 {
		return s + pad
	}
	return leadingEscape(s) + StripEscapes(s) + pad + Reset
}
