package item

// catalysts maps a catalyst to the alternate quality it applies.
var catalysts = map[string]string{
	"Abrasive":     "Attack Modifiers",
	"Accelerating": "Speed Modifiers",
	"Fertile":      "Life and Mana Modifiers",
	"Imbued":       "Caster Modifiers",
	"Intrinsic":    "Attribute Modifiers",
	"Noxious":      "Physical and Chaos Damage Modifiers",
	"Prismatic":    "Resistance Modifiers",
	"Tempering":    "Defence Modifiers",
	"Turbulent":    "Elemental Damage Modifiers",
	"Unstable":     "Critical Modifiers",
}

// CatalystQuality returns the alternate quality a catalyst applies.
func CatalystQuality(catalyst string) (string, bool) {
	q, ok := catalysts[catalyst]
	return q, ok
}
