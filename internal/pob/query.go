package pob

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Number is the set of types ParseStat can produce.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// AscendancyName returns the ascendancy, absent when PoB exported "None".
func (b *Build) AscendancyName() (string, bool) {
	if b.AscendancyClassName == "" || b.AscendancyClassName == "None" {
		return "", false
	}
	return b.AscendancyClassName, true
}

// AscendancyOrClassName returns the ascendancy if there is one, the class otherwise.
func (b *Build) AscendancyOrClassName() string {
	if name, ok := b.AscendancyName(); ok {
		return name
	}
	return b.ClassName
}

// ScopedStat looks up a stat by exact name within one scope.
func (b *Build) ScopedStat(scope StatScope, key Stat) (string, bool) {
	for _, s := range b.Stats {
		if s.Scope == scope && s.Name == string(key) {
			return s.Value, true
		}
	}
	return "", false
}

// Stat looks up a player stat.
func (b *Build) Stat(key Stat) (string, bool) {
	return b.ScopedStat(ScopePlayer, key)
}

// MinionStat looks up a minion stat.
func (b *Build) MinionStat(key Stat) (string, bool) {
	return b.ScopedStat(ScopeMinion, key)
}

// ParseStat looks up a stat and parses it as T. Absent and unparsable stats
// both report false.
func ParseStat[T Number](b *Build, scope StatScope, key Stat) (T, bool) {
	raw, ok := b.ScopedStat(scope, key)
	if !ok {
		return 0, false
	}
	return parseNumber[T](raw)
}

func parseNumber[T Number](s string) (T, bool) {
	s = strings.TrimSpace(s)
	rt := reflect.TypeFor[T]()
	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(s, rt.Bits())
		if err != nil {
			return 0, false
		}
		return T(v), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, rt.Bits())
		if err != nil {
			return 0, false
		}
		return T(v), true
	default:
		v, err := strconv.ParseUint(s, 10, rt.Bits())
		if err != nil {
			return 0, false
		}
		return T(v), true
	}
}

// StatFloat parses a player stat as float64.
func (b *Build) StatFloat(key Stat) (float64, bool) {
	return ParseStat[float64](b, ScopePlayer, key)
}

// StatAtLeast reports whether a player stat is present and >= threshold.
func (b *Build) StatAtLeast(key Stat, threshold float64) bool {
	v, ok := b.StatFloat(key)
	return ok && v >= threshold
}

// StatAtMost reports whether a player stat is present and <= threshold.
func (b *Build) StatAtMost(key Stat, threshold float64) bool {
	v, ok := b.StatFloat(key)
	return ok && v <= threshold
}

// Config looks up a configuration input. Missing inputs are ConfigNone.
func (b *Build) Config(key ConfigKey) ConfigValue {
	for _, in := range b.ConfigInputs {
		if in.Name == string(key) {
			return in.Value
		}
	}
	return ConfigValue{}
}

// ActiveSpec returns the active passive tree spec, or nil.
func (b *Build) ActiveSpec() *Spec {
	i := int(b.Tree.ActiveSpec)
	if i < 1 || i > len(b.Tree.Specs) {
		return nil
	}
	return &b.Tree.Specs[i-1]
}

// HasTreeNode reports whether node is allocated in the active spec.
func (b *Build) HasTreeNode(node uint32) bool {
	spec := b.ActiveSpec()
	if spec == nil {
		return false
	}
	return spec.HasNode(node)
}

// HasNode reports whether node is allocated in the spec.
func (s *Spec) HasNode(node uint32) bool {
	_, found := slices.BinarySearch(s.Nodes, node)
	return found
}

// HasKeystone reports whether the keystone is allocated on the active tree
// or granted by an equipped item. Both sources are checked.
func (b *Build) HasKeystone(k Keystone) bool {
	if b.HasTreeNode(k.Node()) {
		return true
	}

	stat := k.ItemStat()
	if stat == "" {
		return false
	}
	set := b.ActiveItemSet()
	if set == nil {
		return false
	}
	for _, item := range set.Gear.Equipped() {
		if hasModLine(item.Text, stat) {
			return true
		}
	}
	return false
}

// hasModLine reports whether text has a line that, without leading {...}
// attributes, equals line.
func hasModLine(text, line string) bool {
	for l := range strings.Lines(text) {
		l = strings.TrimSpace(l)
		for strings.HasPrefix(l, "{") {
			end := strings.IndexByte(l, '}')
			if end < 0 {
				break
			}
			l = l[end+1:]
		}
		if l == line {
			return true
		}
	}
	return false
}

// ActiveSkillSet returns the selected skill set, or nil for legacy exports.
func (b *Build) ActiveSkillSet() *SkillSet {
	sets := b.Skills.Sets
	if len(sets) == 0 {
		return nil
	}
	for i := range sets {
		if sets[i].ID == b.Skills.ActiveSkillSet {
			return &sets[i]
		}
	}
	return &sets[0]
}

// ActiveSkills returns the socket groups of the active skill set, or the
// flat list of legacy exports.
func (b *Build) ActiveSkills() []Skill {
	if set := b.ActiveSkillSet(); set != nil {
		return set.Skills
	}
	return b.Skills.Flat
}

// ActiveItemSet returns the selected item set, falling back to the first.
func (b *Build) ActiveItemSet() *ItemSet {
	sets := b.Items.Sets
	if len(sets) == 0 {
		return nil
	}
	for i := range sets {
		if sets[i].ID == b.Items.ActiveItemSet {
			return &sets[i]
		}
	}
	return &sets[0]
}

// ItemText returns the raw text of an item by id.
func (b *Build) ItemText(id uint32) (string, bool) {
	text, ok := b.Items.Texts[id]
	return text, ok
}

// MainSkill returns the main socket group.
//
// Without a main socket group, the group with the most gems among those
// with at least four gems and an active skill is used. Ties keep the first.
func (b *Build) MainSkill() *Skill {
	skills := b.ActiveSkills()

	if i := int(b.MainSocketGroup); i >= 1 {
		if i > len(skills) {
			return nil
		}
		return &skills[i-1]
	}

	var best *Skill
	for i := range skills {
		s := &skills[i]
		if len(s.Gems) < 4 || !slices.ContainsFunc(s.ActiveSkillNames(), nonEmpty) {
			continue
		}
		if best == nil || len(s.Gems) > len(best.Gems) {
			best = s
		}
	}
	return best
}

func nonEmpty(s string) bool { return s != "" }

// MainSkillName returns the name of the main active skill.
func (b *Build) MainSkillName() (string, bool) {
	s := b.MainSkill()
	if s == nil {
		return "", false
	}
	return s.MainActiveSkillName()
}

// MainSkillSupportedBy reports whether the main skill has a support gem with
// exactly this name.
func (b *Build) MainSkillSupportedBy(name string) bool {
	s := b.MainSkill()
	return s != nil && s.SupportedBy(name)
}

// MainSkillSupportedByAny reports whether any of names supports the main skill.
func (b *Build) MainSkillSupportedByAny(names ...string) bool {
	s := b.MainSkill()
	if s == nil {
		return false
	}
	for _, name := range names {
		if s.SupportedBy(name) {
			return true
		}
	}
	return false
}
