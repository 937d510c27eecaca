package item

import "fmt"

// Rarity orders item rarities by specificity.
type Rarity uint8

const (
	Normal Rarity = iota
	Magic
	Rare
	Unique
	Relic
)

var rarityNames = [...]string{"NORMAL", "MAGIC", "RARE", "UNIQUE", "RELIC"}

// ParseRarity parses the value of a "Rarity:" line.
func ParseRarity(s string) (Rarity, bool) {
	for i, name := range rarityNames {
		if s == name {
			return Rarity(i), true
		}
	}
	return 0, false
}

func (r Rarity) String() string {
	if int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return fmt.Sprintf("Rarity(%d)", r)
}

// MarshalText encodes the rarity as its export name.
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// HasName reports whether items of this rarity carry a name line before
// the base line.
func (r Rarity) HasName() bool {
	return r >= Rare
}

// IsUnique reports whether the rarity is Unique or Relic.
func (r Rarity) IsUnique() bool {
	return r == Unique || r == Relic
}
