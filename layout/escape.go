package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const escByte = 0x1b

// Reset is the style terminator appended after padded or wrapped styled text.
const Reset = "\x1b[0m"

// scanEscape returns the byte length of the escape sequence starting at s[i],
// or 0 if s[i] does not start one. CSI sequences run from ESC '[' to the
// first final byte in 0x40..0x7e; any other ESC pair is two bytes; a lone
// trailing ESC is one.
func scanEscape(s string, i int) int {
	if s[i] != escByte {
		return 0
	}
	if i+1 == len(s) {
		return 1
	}
	if s[i+1] != '[' {
		return 2
	}
	for j := i + 2; j < len(s); j++ {
		if s[j] >= 0x40 && s[j] <= 0x7e {
			return j - i + 1
		}
	}
	return len(s) - i
}

// StripEscapes returns s with all escape sequences removed.
func StripEscapes(s string) string {
	k := strings.IndexByte(s, escByte)
	if k < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:k])
	for i := k; i < len(s); {
		if n := scanEscape(s, i); n > 0 {
			i += n
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// VisibleWidth returns the display-cell count of s, excluding escape
// sequences. Wide runes count by display width, not by code units.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripEscapes(s))
}

// leadingEscape returns the run of escape sequences at the start of s.
func leadingEscape(s string) string {
	i := 0
	for i < len(s) {
		n := scanEscape(s, i)
		if n == 0 {
			break
		}
		i += n
	}
	return s[:i]
}
