// Package item parses Path of Building item text.
//
// Only the rarity line is required. Every other field is optional and a
// malformed value reads as its zero value.
package item

import (
	"iter"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
)

const rarityPrefix = "Rarity: "

// Item is a parsed item.
type Item struct {
	Rarity Rarity `json:"rarity"`
	// Name is the proper name of rare and unique items. Normal and magic
	// items use their type line.
	Name string `json:"name"`
	Base string `json:"base"`

	ItemLevel        uint8  `json:"item_level,omitempty"`
	LevelRequirement uint8  `json:"level_requirement,omitempty"`
	Quality          uint8  `json:"quality,omitempty"`
	CatalystQuality  uint8  `json:"catalyst_quality,omitempty"`
	Armour           uint16 `json:"armour,omitempty"`
	Evasion          uint16 `json:"evasion,omitempty"`
	EnergyShield     uint16 `json:"energy_shield,omitempty"`
	AltQuality       string `json:"alt_quality,omitempty"`
	SelectedVariant  uint8  `json:"selected_variant,omitempty"`

	Influence1 Influence `json:"influence1,omitempty"`
	Influence2 Influence `json:"influence2,omitempty"`

	Mirrored  bool `json:"mirrored,omitempty"`
	Split     bool `json:"split,omitempty"`
	Corrupted bool `json:"corrupted,omitempty"`

	enchants  []Mod
	implicits []Mod
	explicits []Mod
}

// splitLines returns the trimmed, non-empty lines of text.
func splitLines(text string) []string {
	var out []string
	for l := range strings.Lines(text) {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// headerKeys are command keys that contain spaces and therefore are not
// caught by the "first word ends in ':'" rule.
var headerKeys = []string{
	"Unique ID",
	"Item Level",
	"Energy Shield",
	"Limited to",
	"Has Alt Variant",
	"Has Alt Variant Two",
	"Selected Variant",
	"Selected Alt Variant",
	"Selected Alt Variant Two",
	"Cluster Jewel Skill",
	"Cluster Jewel Node Count",
	"Requires Level",
	"Requires Class",
	"Talisman Tier",
}

// altQualityPattern matches "Quality (Attack Modifiers): +20%".
var altQualityPattern = regexp.MustCompile(`^Quality \(([^)]+)\):\s*\+?(\d+)%?$`)

// Parse parses an item from its PoB text.
func Parse(text string) (*Item, error) {
	lines := splitLines(text)
	if len(lines) == 0 || !strings.HasPrefix(lines[0], rarityPrefix) {
		return nil, errors.NewInvalidItem("expected rarity")
	}
	rarity, ok := ParseRarity(strings.TrimSpace(strings.TrimPrefix(lines[0], rarityPrefix)))
	if !ok {
		return nil, errors.NewInvalidItem("expected normal, magic, rare, unique or relic rarity")
	}

	it := &Item{Rarity: rarity}
	next := 1
	take := func() string {
		if next >= len(lines) {
			return ""
		}
		next++
		return lines[next-1]
	}

	var typeLine string
	if rarity.HasName() {
		it.Name = take()
		typeLine = take()
	} else {
		typeLine = take()
		it.Name = typeLine
	}
	it.Base = fixName(typeLine)

	implicitCount := 0
	for ; next < len(lines); next++ {
		l := lines[next]
		if l == typeLine || l == it.Name {
			continue
		}
		if inf, ok := parseInfluenceLine(l); ok {
			it.addInfluence(inf)
			continue
		}
		if n, ok := it.applyCommand(l); ok {
			if n >= 0 {
				implicitCount = n
			}
			continue
		}
		if isModLine(l) {
			break
		}
		// Unknown "Key: value" command.
	}
	modStart := next

	modEnd := len(lines)
trailer:
	for modEnd > modStart {
		switch lines[modEnd-1] {
		case "Corrupted":
			it.Corrupted = true
		case "Mirrored":
			it.Mirrored = true
		case "Split":
			it.Split = true
		default:
			break trailer
		}
		modEnd--
	}

	mods := joinModLines(lines[modStart:modEnd])
	implicitCount = min(implicitCount, len(mods))

	implicitRegion := it.applicable(mods[:implicitCount])
	crafted := 0
	for crafted < len(implicitRegion) && implicitRegion[crafted].Crafted {
		crafted++
	}
	it.enchants = implicitRegion[:crafted]
	it.implicits = implicitRegion[crafted:]
	it.explicits = it.applicable(mods[implicitCount:])

	if rarity == Magic && len(it.explicits) > 0 {
		it.Base = magicBase(it.Base, len(it.explicits))
	}

	if it.Influence1 == NoInfluence && slices.ContainsFunc(it.explicits, func(m Mod) bool { return m.Fractured }) {
		it.Influence1 = Fracture
	}
	if it.Influence2 == NoInfluence {
		it.Influence2 = it.Influence1
	}

	return it, nil
}

// applyCommand interprets a header command. It reports whether the line was
// a known command and, for "Implicits: N", the implicit count (-1 otherwise).
func (it *Item) applyCommand(l string) (int, bool) {
	if m := altQualityPattern.FindStringSubmatch(l); m != nil {
		it.AltQuality = m[1]
		it.Quality = parseU8(m[2])
		return -1, true
	}

	key, value, ok := strings.Cut(l, ":")
	if !ok {
		return -1, false
	}
	value = strings.TrimSpace(value)

	switch key {
	case "Item Level":
		it.ItemLevel = parseU8(value)
	case "LevelReq", "Requires Level":
		it.LevelRequirement = parseU8(value)
	case "Quality":
		it.Quality = parseU8(value)
	case "Catalyst":
		if q, ok := CatalystQuality(value); ok {
			it.AltQuality = q
		}
	case "CatalystQuality":
		it.CatalystQuality = parseU8(value)
	case "Armour":
		it.Armour = parseU16(value)
	case "Evasion":
		it.Evasion = parseU16(value)
	case "Energy Shield":
		it.EnergyShield = parseU16(value)
	case "Selected Variant":
		it.SelectedVariant = parseU8(value)
	case "Implicits":
		return int(parseU16(value)), true
	default:
		if slices.Contains(headerKeys, key) || !strings.Contains(key, " ") && !strings.HasPrefix(key, "{") {
			return -1, true
		}
		return -1, false
	}
	return -1, true
}

func (it *Item) addInfluence(inf Influence) {
	switch {
	case it.Influence1 == NoInfluence:
		it.Influence1 = inf
	case it.Influence2 == NoInfluence:
		it.Influence2 = inf
	}
}

func (it *Item) applicable(mods []Mod) []Mod {
	out := make([]Mod, 0, len(mods))
	for _, m := range mods {
		if m.AppliesTo(it.SelectedVariant) {
			out = append(out, m)
		}
	}
	return out
}

// joinModLines turns the mod region into logical mods. Command lines are
// dropped and a line ending in "you've" continues on the next line.
func joinModLines(lines []string) []Mod {
	var mods []Mod
	for i := 0; i < len(lines); i++ {
		l := lines[i]
		if !isModLine(l) {
			continue
		}
		if strings.HasSuffix(l, "you've") && i+1 < len(lines) {
			l += " " + lines[i+1]
			i++
		}
		mods = append(mods, parseMod(l))
	}
	return mods
}

// Enchants returns the crafted mods leading the implicit region.
func (it *Item) Enchants() iter.Seq[Mod] {
	return slices.Values(it.enchants)
}

// Implicits returns the implicit mods that are not enchants.
func (it *Item) Implicits() iter.Seq[Mod] {
	return slices.Values(it.implicits)
}

// Explicits returns the explicit mods, including fractured and crafted ones.
func (it *Item) Explicits() iter.Seq[Mod] {
	return slices.Values(it.explicits)
}

// FixedItemName maps a possibly customized unique name back to the
// canonical name. Other rarities return Name unchanged.
func (it *Item) FixedItemName() string {
	if it.Rarity.IsUnique() {
		return fixName(it.Name)
	}
	return it.Name
}

func parseU8(s string) uint8 {
	v, err := strconv.ParseUint(trimNumber(s), 10, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

func parseU16(s string) uint16 {
	v, err := strconv.ParseUint(trimNumber(s), 10, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}

// trimNumber accepts "+20%" style values.
func trimNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	return strings.TrimSuffix(s, "%")
}
