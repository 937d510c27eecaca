package pob

import "strings"

const (
	supportGemIDPrefix = "Metadata/Items/Gems/Support"
	vaalPrefix         = "Vaal "
)

// grantedActiveSkills lists skills PoB attaches to a gem. They count as
// active skills for mainActiveSkill indexing.
var grantedActiveSkills = map[string][]string{
	"SupportBluntWeapon": {"Shockwave"},
	"ViciousHexSupport":  {"Doom Blast"},
}

// gemNameFallbacks names skills that PoB exports without a nameSpec, mostly
// skills granted by unique items.
var gemNameFallbacks = map[string]string{
	"BirdAspect":            "Aspect of the Avian",
	"CatAspect":             "Aspect of the Cat",
	"CrabAspect":            "Aspect of the Crab",
	"SpiderAspect":          "Aspect of the Spider",
	"Envy":                  "Envy",
	"IcestormUniqueStaff12": "Icestorm",
}

// GrantedActiveSkills returns the skills granted by a gem's skill id.
func GrantedActiveSkills(skillID string) []string {
	return grantedActiveSkills[skillID]
}

func gemNameFallback(skillID string) string {
	return gemNameFallbacks[skillID]
}

// IsSupport reports whether the gem is a support gem.
func (g Gem) IsSupport() bool {
	return strings.HasPrefix(g.GemID, supportGemIDPrefix) ||
		strings.HasPrefix(g.SkillID, "Support") ||
		strings.HasSuffix(g.SkillID, "Support") ||
		strings.Contains(g.Name, "Support")
}

// IsActive reports whether the gem grants an active skill.
func (g Gem) IsActive() bool {
	return !g.IsSupport()
}

// IsVaal reports whether the gem is a Vaal skill gem.
func (g Gem) IsVaal() bool {
	return strings.HasPrefix(g.Name, vaalPrefix)
}

// NonVaalName strips the Vaal prefix from the gem name.
func (g Gem) NonVaalName() string {
	return strings.TrimPrefix(g.Name, vaalPrefix)
}

// ActiveGems returns the non-support gems in order.
func (s *Skill) ActiveGems() []Gem {
	out := make([]Gem, 0, len(s.Gems))
	for _, g := range s.Gems {
		if g.IsActive() {
			out = append(out, g)
		}
	}
	return out
}

// SupportGems returns the support gems in order.
func (s *Skill) SupportGems() []Gem {
	out := make([]Gem, 0, len(s.Gems))
	for _, g := range s.Gems {
		if g.IsSupport() {
			out = append(out, g)
		}
	}
	return out
}

// ActiveSkillNames lists the active skills of the group in PoB's order:
// each active gem's name, then the non-Vaal name of a Vaal gem, then any
// skills granted by the gem.
func (s *Skill) ActiveSkillNames() []string {
	var names []string
	for _, g := range s.Gems {
		if g.IsActive() {
			names = append(names, g.Name)
		}
		if g.IsVaal() {
			names = append(names, g.NonVaalName())
		}
		names = append(names, GrantedActiveSkills(g.SkillID)...)
	}
	return names
}

// MainActiveSkillName resolves MainActiveSkill against ActiveSkillNames.
func (s *Skill) MainActiveSkillName() (string, bool) {
	if s.MainActiveSkill < 1 {
		return "", false
	}
	names := s.ActiveSkillNames()
	i := int(s.MainActiveSkill) - 1
	if i >= len(names) || names[i] == "" {
		return "", false
	}
	return names[i], true
}

// SupportedBy reports whether a support gem with exactly this name is in
// the group.
func (s *Skill) SupportedBy(name string) bool {
	for _, g := range s.Gems {
		if g.IsSupport() && g.Name == name {
			return true
		}
	}
	return false
}
