package item

import "strings"

// fixName strips a creator-added "Prefix - " segment, keeping the part after
// the last separator, and a trailing [..] or (..) annotation such as the
// seed PoB appends to timeless jewels.
func fixName(s string) string {
	if i := strings.LastIndex(s, " - "); i >= 0 {
		s = s[i+len(" - "):]
	}
	s = strings.TrimSpace(s)
	for _, pair := range [...][2]string{{"[", "]"}, {"(", ")"}} {
		if !strings.HasSuffix(s, pair[1]) {
			continue
		}
		if i := strings.LastIndex(s, pair[0]); i > 0 {
			s = strings.TrimSpace(s[:i])
		}
	}
	return s
}

// magicBase reduces a magic item's type line to its base type.
//
// Without a mod database this is a guess: a single mod plus an " of"
// suffix means the remaining text is the base, otherwise a base longer
// than a plausible base type loses its first word as the prefix.
func magicBase(typeLine string, explicits int) string {
	base := strings.TrimPrefix(typeLine, "Synthesised ")

	i := strings.Index(base, " of")
	hasSuffix := i >= 0
	if hasSuffix {
		base = base[:i]
	}

	if explicits == 1 && hasSuffix {
		return base
	}
	if mayBeFullBase(base) {
		return base
	}
	if _, rest, ok := strings.Cut(base, " "); ok {
		return rest
	}
	return base
}

// mayBeFullBase reports whether base has few enough words to already be a
// base type.
func mayBeFullBase(base string) bool {
	limit := 2
	if strings.HasSuffix(base, "Shield") ||
		strings.HasSuffix(base, "Cluster Jewel") ||
		strings.HasSuffix(base, "Abyss Jewel") {
		limit = 3
	}
	return len(strings.Fields(base)) <= limit
}
