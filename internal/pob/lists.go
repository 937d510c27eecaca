package pob

import (
	"slices"
	"strconv"
	"strings"
)

// parseU8 parses a decimal u8. Overflow, "nil" and garbage read as 0.
func parseU8(s string) uint8 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// parseU32 parses a decimal u32, 0 on failure.
func parseU32(s string) uint32 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseBool(s string) (bool, bool) {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, false
	}
	return v, true
}

func parseBoolDefault(s string, def bool) bool {
	if v, ok := parseBool(s); ok {
		return v
	}
	return def
}

// parseNodeList parses a comma separated node id list into a sorted set.
// Entries that are not valid u32 values are skipped.
func parseNodeList(s string) []uint32 {
	nodes := make([]uint32, 0, strings.Count(s, ",")+1)
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			continue
		}
		nodes = append(nodes, uint32(v))
	}
	slices.Sort(nodes)
	return slices.Compact(nodes)
}

// parseMasteryEffects parses the brace table "{node,effect},{node,effect}".
// Splitting on commas alone would tear the pairs apart, so the scan walks
// brace groups. Malformed groups are skipped.
func parseMasteryEffects(s string) []MasteryEffect {
	var out []MasteryEffect
	rest := s
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			break
		}
		pair := rest[open+1 : open+end]
		rest = rest[open+end+1:]

		node, effect, ok := strings.Cut(pair, ",")
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(strings.TrimSpace(node), 10, 32)
		if err != nil {
			continue
		}
		e, err := strconv.ParseUint(strings.TrimSpace(effect), 10, 32)
		if err != nil {
			continue
		}
		out = append(out, MasteryEffect{Node: uint32(n), Effect: uint32(e)})
	}
	return out
}
