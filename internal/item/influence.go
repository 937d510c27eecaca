package item

// Influence is an item influence. The zero value means none.
type Influence uint8

const (
	NoInfluence Influence = iota
	Shaper
	Elder
	Crusader
	Hunter
	Redeemer
	Warlord
	SearingExarch
	EaterOfWorlds
	Synthesis
	Fracture
)

var influences = []struct {
	influence Influence
	name      string
	line      string
}{
	{Shaper, "Shaper", "Shaper Item"},
	{Elder, "Elder", "Elder Item"},
	{Crusader, "Crusader", "Crusader Item"},
	{Hunter, "Hunter", "Hunter Item"},
	{Redeemer, "Redeemer", "Redeemer Item"},
	{Warlord, "Warlord", "Warlord Item"},
	{SearingExarch, "SearingExarch", "Searing Exarch Item"},
	{EaterOfWorlds, "EaterOfWorlds", "Eater of Worlds Item"},
	{Synthesis, "Synthesis", "Synthesised Item"},
	{Fracture, "Fracture", "Fractured Item"},
}

// parseInfluenceLine matches an exact influence line such as "Shaper Item".
func parseInfluenceLine(line string) (Influence, bool) {
	for _, inf := range influences {
		if inf.line == line {
			return inf.influence, true
		}
	}
	return NoInfluence, false
}

func (i Influence) String() string {
	for _, inf := range influences {
		if inf.influence == i {
			return inf.name
		}
	}
	return ""
}

// MarshalText encodes the influence by name, empty for none.
func (i Influence) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}
