package item

import (
	"strconv"
	"strings"
)

// Mod is one logical affix line with its leading {attr} segments removed.
type Mod struct {
	Line      string `json:"line"`
	Fractured bool   `json:"fractured,omitempty"`
	Crafted   bool   `json:"crafted,omitempty"`
	Tag       string `json:"tag,omitempty"`
	// Variant is the comma separated list of variants the mod applies to.
	// Empty means all variants.
	Variant string `json:"variant,omitempty"`
}

// parseMod strips and interprets the leading {attr} or {attr:value}
// segments of a mod line.
func parseMod(line string) Mod {
	var m Mod
	rest := strings.TrimSpace(line)
	for strings.HasPrefix(rest, "{") {
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			break
		}
		name, value, _ := strings.Cut(rest[1:end], ":")
		rest = rest[end+1:]

		switch name {
		case "variant":
			m.Variant = value
		case "fractured":
			m.Fractured = true
		case "crafted":
			m.Crafted = true
		case "tags", "custom", "range":
		default:
			m.Tag = name
		}
	}
	m.Line = strings.TrimSpace(rest)
	return m
}

// AppliesTo reports whether the mod is active for the selected variant.
// Variant 0 means no variant was selected and every mod applies.
func (m Mod) AppliesTo(variant uint8) bool {
	if variant == 0 || m.Variant == "" {
		return true
	}
	want := strconv.Itoa(int(variant))
	for v := range strings.SplitSeq(m.Variant, ",") {
		if strings.TrimSpace(v) == want {
			return true
		}
	}
	return false
}

// stripAttrs removes leading {...} segments without interpreting them.
func stripAttrs(line string) string {
	for strings.HasPrefix(line, "{") {
		end := strings.IndexByte(line, '}')
		if end < 0 {
			break
		}
		line = line[end+1:]
	}
	return line
}

// isModLine reports whether a line is an affix rather than a "Key: value"
// command: its first word does not end in ':'.
func isModLine(line string) bool {
	fields := strings.Fields(stripAttrs(line))
	if len(fields) == 0 {
		return false
	}
	return !strings.HasSuffix(fields[0], ":")
}
