package pob

// Keystone is a keystone passive the queries know how to detect.
type Keystone uint8

const (
	ChaosInoculation Keystone = iota
	EldritchBattery
	ElementalOverload
	MindOverMatter
)

// Keystones lists every detectable keystone.
var Keystones = []Keystone{ChaosInoculation, EldritchBattery, ElementalOverload, MindOverMatter}

var keystones = map[Keystone]struct {
	name     string
	node     uint32
	itemStat string
}{
	ChaosInoculation:  {name: "Chaos Inoculation", node: 11455},
	EldritchBattery:   {name: "Eldritch Battery", node: 56075, itemStat: "Eldritch Battery"},
	ElementalOverload: {name: "Elemental Overload", node: 22088},
	MindOverMatter:    {name: "Mind Over Matter", node: 34098, itemStat: "Mind Over Matter"},
}

// String returns the in-game name.
func (k Keystone) String() string {
	return keystones[k].name
}

// Node returns the passive tree node id.
func (k Keystone) Node() uint32 {
	return keystones[k].node
}

// ItemStat returns the item mod line granting the keystone, or "" when no
// item grants it.
func (k Keystone) ItemStat() string {
	return keystones[k].itemStat
}
