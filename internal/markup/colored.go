// Package markup parses the inline markup of PoB notes and labels: color
// codes (^1, ^xRRGGBB) and links to known sites.
package markup

import (
	"iter"
	"strings"
)

// ColorKind tags the populated field of a Color.
type ColorKind uint8

const (
	NoColor ColorKind = iota
	NamedColor
	HexColor
)

// Color is the color of a segment. The zero value is no color.
type Color struct {
	Kind ColorKind `json:"kind"`
	// Named is the digit of a ^N code.
	Named uint8 `json:"named,omitempty"`
	// Hex is the six hex digits of a ^xRRGGBB code.
	Hex string `json:"hex,omitempty"`
}

// Segment is a run of text sharing one color.
type Segment struct {
	Color Color  `json:"color"`
	Text  string `json:"text"`
}

// Colored splits text into colored segments. A color code applies from the
// next character until the next valid code. Malformed codes are literal
// text and empty segments are dropped.
func Colored(text string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		var color Color
		start, search := 0, 0
		for {
			i := strings.IndexByte(text[search:], '^')
			if i < 0 {
				break
			}
			i += search

			next, width, ok := parseCode(text[i:])
			if !ok {
				search = i + 1
				continue
			}

			if i > start && !yield(Segment{Color: color, Text: text[start:i]}) {
				return
			}
			color = next
			start = i + width
			search = start
		}
		if start < len(text) {
			yield(Segment{Color: color, Text: text[start:]})
		}
	}
}

// parseCode parses a color code at the start of s, which begins with '^'.
func parseCode(s string) (Color, int, bool) {
	if len(s) < 2 {
		return Color{}, 0, false
	}
	switch c := s[1]; {
	case c >= '0' && c <= '9':
		return Color{Kind: NamedColor, Named: c - '0'}, 2, true
	case c == 'x':
		if len(s) < 8 || !isHex(s[2:8]) {
			return Color{}, 0, false
		}
		return Color{Kind: HexColor, Hex: s[2:8]}, 8, true
	}
	return Color{}, 0, false
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// StripColors removes all valid color codes from text.
func StripColors(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for seg := range Colored(text) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
