package pob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
)

func parseFixture(t *testing.T, name string) *Build {
	t.Helper()
	b, err := ParseXML(string(readFixture(t, name)))
	require.NoError(t, err)
	return b
}

func TestParseXML_BuildAttributes(t *testing.T) {
	b := parseFixture(t, "modern.xml")

	assert.Equal(t, uint8(95), b.Level)
	assert.Equal(t, "Witch", b.ClassName)
	assert.Equal(t, "Necromancer", b.AscendancyClassName)
	assert.Equal(t, uint8(0), b.MainSocketGroup)
	assert.Equal(t, "3_0", b.TargetVersion)
	assert.Equal(t, "None", b.Bandit)
	assert.Equal(t, "TheBrineKing", b.PantheonMajorGod)
	assert.Equal(t, "Garukhan", b.PantheonMinorGod)
	assert.Equal(t, "^1Red ^7notes https://pobb.in/abc", b.Notes)
}

func TestParseXML_StatsKeepScopeAndOrder(t *testing.T) {
	b := parseFixture(t, "modern.xml")

	require.Len(t, b.Stats, 14)
	assert.Equal(t, BuildStat{Scope: ScopePlayer, Name: "Life", Value: "4210"}, b.Stats[0])
	assert.Equal(t, BuildStat{Scope: ScopeMinion, Name: "CombinedDPS", Value: "1234567.8"}, b.Stats[11])
	assert.Equal(t, BuildStat{Scope: ScopeFullDPS, Name: "Raise Spectre", Value: "1234567.8"}, b.Stats[13])
}

func TestParseXML_SkillSets(t *testing.T) {
	b := parseFixture(t, "modern.xml")

	assert.Empty(t, b.Skills.Flat)
	require.Len(t, b.Skills.Sets, 2)
	assert.Equal(t, uint32(2), b.Skills.ActiveSkillSet)
	assert.Equal(t, "Mapping", b.Skills.Sets[1].Title)

	skills := b.Skills.Sets[1].Skills
	require.Len(t, skills, 3)
	assert.Equal(t, "Auras", skills[0].Label)
	assert.Equal(t, "Helmet", skills[0].Slot)

	disabled := skills[1].Gems[3]
	assert.Equal(t, "Elemental Army", disabled.Name)
	assert.False(t, disabled.Enabled)
}

func TestParseXML_LenientGemFields(t *testing.T) {
	b := parseFixture(t, "modern.xml")

	skill := b.Skills.Sets[1].Skills[2]
	assert.True(t, skill.Enabled, "unparsable enabled defaults to true")
	assert.Equal(t, uint8(0), skill.MainActiveSkill)

	gem := skill.Gems[0]
	assert.Equal(t, "Icestorm", gem.Name, "empty nameSpec resolves through fallback table")
	assert.Equal(t, uint8(0), gem.Level, "overflowing level reads as 0")
	assert.Equal(t, uint8(0), gem.Quality, "negative quality reads as 0")
	assert.True(t, gem.Enabled)
}

func TestParseXML_LegacySkills(t *testing.T) {
	b := parseFixture(t, "legacy.xml")

	assert.Empty(t, b.Skills.Sets)
	require.Len(t, b.Skills.Flat, 1)
	assert.Equal(t, "Cleave", b.Skills.Flat[0].Gems[0].Name)
	assert.Equal(t, uint8(0), b.Level, "overflowing level reads as 0")
}

func TestParseXML_Tree(t *testing.T) {
	b := parseFixture(t, "modern.xml")

	require.Len(t, b.Tree.Specs, 2)
	assert.Equal(t, uint8(2), b.Tree.ActiveSpec)

	first, second := b.Tree.Specs[0], b.Tree.Specs[1]
	assert.False(t, first.Active)
	assert.True(t, second.Active)
	assert.Equal(t, "https://www.pathofexile.com/passive-skill-tree/AAAA", first.URL)
	assert.Equal(t, []uint32{1, 2, 3, 11455}, first.Nodes)
	assert.Empty(t, first.MasteryEffects)

	assert.Equal(t, "3_20", second.Version)
	assert.Equal(t, uint8(3), second.ClassID)
	assert.Equal(t, uint8(2), second.AscendClassID)
	assert.Equal(t, []uint32{500, 8732, 12382}, second.Nodes)
	assert.Equal(t, []MasteryEffect{{Node: 12382, Effect: 47642}, {Node: 8732, Effect: 12119}}, second.MasteryEffects)
	assert.Equal(t, []TreeSocket{{NodeID: 26725, ItemID: 3}, {NodeID: 36634, ItemID: 0}}, second.Sockets)
}

func TestParseXML_ConfigSetWins(t *testing.T) {
	b := parseFixture(t, "modern.xml")

	assert.Equal(t, []ConfigInput{
		{Name: "enemyIsBoss", Value: StringValue("Pinnacle")},
		{Name: "conditionFocused", Value: BoolValue(true)},
		{Name: "multiplierWitheredStackCount", Value: NumberValue(15)},
		{Name: "usePowerCharges"},
		{Name: "emptyString", Value: StringValue("")},
	}, b.ConfigInputs)
}

func TestParseXML_FlatConfig(t *testing.T) {
	b := parseFixture(t, "legacy.xml")

	assert.Equal(t, []ConfigInput{
		{Name: "enemyIsBoss", Value: BoolValue(true)},
		{Name: "conditionShockEffect", Value: NumberValue(30)},
		{Name: "brokenNumber"},
	}, b.ConfigInputs)
}

func TestParseXML_Items(t *testing.T) {
	b := parseFixture(t, "modern.xml")

	require.Len(t, b.Items.Texts, 3)
	assert.Equal(t, "Rarity: RARE\nDoom Grip\nFingerless Silk Gloves\nImplicits: 0\n+80 to maximum Life", b.Items.Texts[2])

	require.Len(t, b.Items.Sets, 2)
	set := b.Items.Sets[1]
	assert.Equal(t, uint32(2), set.ID)
	assert.Equal(t, "Endgame", set.Title)

	require.NotNil(t, set.Gear.Ring1)
	assert.Equal(t, uint32(1), set.Gear.Ring1.ID)
	require.NotNil(t, set.Gear.Gloves)
	assert.Equal(t, "Gloves", set.Gear.Gloves.Slot)
	assert.Nil(t, set.Gear.Helmet, "itemId 0 is an empty slot")
	assert.Nil(t, set.Gear.Boots, "unknown item ids are skipped")

	require.Len(t, set.Gear.Sockets, 1)
	assert.Equal(t, GearItem{Slot: "Jewel 26725", ID: 3, Text: "Rarity: MAGIC\nLarge Cluster Jewel"}, set.Gear.Sockets[0])

	equipped := set.Gear.Equipped()
	require.Len(t, equipped, 2)
	assert.Equal(t, "Gloves", equipped[0].Slot)
	assert.Equal(t, "Ring 1", equipped[1].Slot)
}

func TestParseXML_LegacyItemSlots(t *testing.T) {
	b := parseFixture(t, "legacy.xml")

	text, ok := b.ItemText(1)
	require.True(t, ok, "items without an id are numbered by position")
	assert.Contains(t, text, "Storm Bane")

	require.Len(t, b.Items.Sets, 1)
	set := b.Items.Sets[0]
	assert.Equal(t, uint32(1), set.ID)
	require.NotNil(t, set.Gear.BodyArmour)
	assert.Nil(t, set.Gear.Weapon1)
}

func TestParseXML_MissingSectionsDefault(t *testing.T) {
	b, err := ParseXML(`<PathOfBuilding><Build level="1" className="Scion"/></PathOfBuilding>`)
	require.NoError(t, err)

	assert.Equal(t, "Scion", b.ClassName)
	assert.Empty(t, b.Stats)
	assert.Empty(t, b.ConfigInputs)
	assert.Empty(t, b.Tree.Specs)
	assert.Empty(t, b.Items.Sets)
	assert.Empty(t, b.Notes)
	assert.Nil(t, b.ActiveSpec())
	assert.Nil(t, b.MainSkill())
}

func TestParseXML_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPath string
	}{
		{"missing build", `<PathOfBuilding><Skills/></PathOfBuilding>`, "PathOfBuilding/Build"},
		{"wrong root", `<Other><Build/></Other>`, "PathOfBuilding"},
		{"syntax error", "<PathOfBuilding>\n<Build>\n</PathOfBuilding>", "line 3"},
		{"empty", "", "PathOfBuilding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseXML(tt.input)
			require.Error(t, err)

			var pe *errors.PobError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, errors.ErrParseXML, pe.Code)
			assert.Equal(t, tt.wantPath, pe.Details["path"])
		})
	}
}
