package layout

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Wrap splits s into lines of at most width display cells, lazily. Breaks
// prefer the last whitespace boundary at or before width; a token wider than
// a whole line is hard-broken at the width boundary. Whitespace around break
// points is trimmed and all-whitespace segments are skipped. A width below 1
// is clamped to 1. The empty string yields one empty line.
func Wrap(s string, width int) iter.Seq[string] {
	if width < 1 {
		width = 1
	}
	return func(yield func(string) bool) {
		rest := s
		for {
			line, more := breakLine(rest, width)
			if line == "" && more != "" {
				rest = more
				continue
			}
			if !yield(line) {
				return
			}
			if more == "" {
				return
			}
			rest = more
		}
	}
}

// WrapPreserving wraps like Wrap but against the escape-stripped text; each
// emitted line carries the original leading escape sequence and a trailing
// reset, so style reapplies per line instead of leaking across breaks.
func WrapPreserving(s string, width int) iter.Seq[string] {
	prefix := leadingEscape(s)
	body := StripEscapes(s)
	if prefix == "" {
		return Wrap(body, width)
	}
	return func(yield func(string) bool) {
		for line := range Wrap(body, width) {
			if !yield(prefix + line + Reset) {
				return
			}
		}
	}
}

// breakLine splits off the first wrapped line of s, returning it and the
// untaken remainder. Escape sequences pass through with zero width and are
// never split.
func breakLine(s string, width int) (string, string) {
	var (
		w      int
		lastWS = -1
	)
	for i := 0; i < len(s); {
		if n := scanEscape(s, i); n > 0 {
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			if unicode.IsSpace(r) {
				lastWS = i
			}
			if lastWS >= 0 {
				// same predicate as the break scan, so the remainder
				// always shrinks
				return strings.TrimRightFunc(s[:lastWS], unicode.IsSpace),
					strings.TrimLeftFunc(s[lastWS:], unicode.IsSpace)
			}
			if i == 0 {
				// a single rune wider than the whole line
				i = size
			}
			return s[:i], s[i:]
		}
		if unicode.IsSpace(r) {
			lastWS = i
		}
		w += rw
		i += size
	}
	return s, ""
}
