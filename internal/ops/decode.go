package ops

import (
	"github.com/Dav1dde/pasteofexile-sub000/internal/config"
	"github.com/Dav1dde/pasteofexile-sub000/internal/item"
	"github.com/Dav1dde/pasteofexile-sub000/internal/markup"
	"github.com/Dav1dde/pasteofexile-sub000/internal/pob"
	"github.com/Dav1dde/pasteofexile-sub000/internal/summary"
)

// DecodeInput contains parameters for the Decode operation.
type DecodeInput struct {
	Code string // required
}

// DecodeOutput is the overview of a decoded build.
type DecodeOutput struct {
	Level         uint8            `json:"level"`
	ClassName     string           `json:"class_name"`
	Ascendancy    string           `json:"ascendancy,omitempty"`
	MainSkill     string           `json:"main_skill,omitempty"`
	TargetVersion string           `json:"target_version,omitempty"`
	Bandit        string           `json:"bandit,omitempty"`
	Keystones     []string         `json:"keystones,omitempty"`
	Summary       summary.Overview `json:"summary"`
	Specs         []SpecView       `json:"specs"`
	SkillSets     []SkillSetView   `json:"skill_sets"`
	ItemSets      []ItemSetView    `json:"item_sets"`
	Notes         string           `json:"notes,omitempty"`
}

// SpecView describes one passive tree spec.
type SpecView struct {
	Title   string `json:"title,omitempty"`
	Version string `json:"version,omitempty"`
	Nodes   int    `json:"nodes"`
	Sockets int    `json:"sockets"`
	URL     string `json:"url,omitempty"`
	Active  bool   `json:"active"`
}

// SkillSetView describes one skill set. Legacy exports yield a single
// untitled set.
type SkillSetView struct {
	ID     uint32           `json:"id,omitempty"`
	Title  string           `json:"title,omitempty"`
	Active bool             `json:"active"`
	Groups []SkillGroupView `json:"groups"`
}

// SkillGroupView describes one socket group.
type SkillGroupView struct {
	Label        string   `json:"label,omitempty"`
	Slot         string   `json:"slot,omitempty"`
	Enabled      bool     `json:"enabled"`
	Gems         []string `json:"gems"`
	ActiveSkills []string `json:"active_skills,omitempty"`
	MainSkill    string   `json:"main_skill,omitempty"`
}

// ItemSetView describes one item set with its parsed gear.
type ItemSetView struct {
	ID      uint32     `json:"id"`
	Title   string     `json:"title,omitempty"`
	Active  bool       `json:"active"`
	Gear    []GearView `json:"gear"`
	Sockets []GearView `json:"sockets,omitempty"`
}

// GearView is an equipped item. Items that fail to parse carry Error
// instead of Item.
type GearView struct {
	Slot  string    `json:"slot"`
	ID    uint32    `json:"id"`
	Item  *ItemView `json:"item,omitempty"`
	Error string    `json:"error,omitempty"`
}

// ItemView is a parsed item including its mods.
type ItemView struct {
	*item.Item
	FixedName string     `json:"fixed_name,omitempty"`
	Enchants  []item.Mod `json:"enchants,omitempty"`
	Implicits []item.Mod `json:"implicits,omitempty"`
	Explicits []item.Mod `json:"explicits,omitempty"`
}

func newItemView(it *item.Item) *ItemView {
	v := &ItemView{Item: it}
	if name := it.FixedItemName(); name != it.Name {
		v.FixedName = name
	}
	for m := range it.Enchants() {
		v.Enchants = append(v.Enchants, m)
	}
	for m := range it.Implicits() {
		v.Implicits = append(v.Implicits, m)
	}
	for m := range it.Explicits() {
		v.Explicits = append(v.Explicits, m)
	}
	return v
}

// Decode decodes an export code into a build overview.
func Decode(cfg *config.Config, input DecodeInput) (*DecodeOutput, error) {
	b, err := decodeCode(cfg, input.Code)
	if err != nil {
		return nil, err
	}
	return describe(b), nil
}

// describe builds the overview of a decoded build.
func describe(b *pob.Build) *DecodeOutput {
	out := &DecodeOutput{
		Level:         b.Level,
		ClassName:     b.ClassName,
		TargetVersion: b.TargetVersion,
		Bandit:        b.Bandit,
		Summary:       summary.Summarize(b),
		Notes:         markup.StripColors(b.Notes),
	}
	out.Ascendancy, _ = b.AscendancyName()
	out.MainSkill, _ = b.MainSkillName()

	for _, k := range pob.Keystones {
		if b.HasKeystone(k) {
			out.Keystones = append(out.Keystones, k.String())
		}
	}

	out.Specs = make([]SpecView, 0, len(b.Tree.Specs))
	for i, s := range b.Tree.Specs {
		out.Specs = append(out.Specs, SpecView{
			Title:   s.Title,
			Version: s.Version,
			Nodes:   len(s.Nodes),
			Sockets: len(s.Sockets),
			URL:     s.URL,
			Active:  i+1 == int(b.Tree.ActiveSpec),
		})
	}

	out.SkillSets = describeSkills(b)
	out.ItemSets = describeItems(b)

	return out
}

func describeSkills(b *pob.Build) []SkillSetView {
	if len(b.Skills.Sets) == 0 {
		return []SkillSetView{{Active: true, Groups: describeGroups(b.Skills.Flat)}}
	}

	active := b.ActiveSkillSet()
	views := make([]SkillSetView, 0, len(b.Skills.Sets))
	for i := range b.Skills.Sets {
		set := &b.Skills.Sets[i]
		views = append(views, SkillSetView{
			ID:     set.ID,
			Title:  set.Title,
			Active: set == active,
			Groups: describeGroups(set.Skills),
		})
	}
	return views
}

func describeGroups(skills []pob.Skill) []SkillGroupView {
	groups := make([]SkillGroupView, 0, len(skills))
	for i := range skills {
		s := &skills[i]
		g := SkillGroupView{
			Label:        s.Label,
			Slot:         s.Slot,
			Enabled:      s.Enabled,
			Gems:         make([]string, 0, len(s.Gems)),
			ActiveSkills: s.ActiveSkillNames(),
		}
		for _, gem := range s.Gems {
			g.Gems = append(g.Gems, gem.Name)
		}
		g.MainSkill, _ = s.MainActiveSkillName()
		groups = append(groups, g)
	}
	return groups
}

func describeItems(b *pob.Build) []ItemSetView {
	active := b.ActiveItemSet()
	views := make([]ItemSetView, 0, len(b.Items.Sets))
	for i := range b.Items.Sets {
		set := &b.Items.Sets[i]
		view := ItemSetView{
			ID:     set.ID,
			Title:  set.Title,
			Active: set == active,
		}
		gear := set.Gear.Equipped()
		view.Gear = make([]GearView, 0, len(gear))
		for _, g := range gear {
			view.Gear = append(view.Gear, newGearView(g))
		}
		for _, g := range set.Gear.Sockets {
			view.Sockets = append(view.Sockets, newGearView(g))
		}
		views = append(views, view)
	}
	return views
}

func newGearView(g pob.GearItem) GearView {
	gv := GearView{Slot: g.Slot, ID: g.ID}
	if it, err := item.Parse(g.Text); err != nil {
		gv.Error = err.Error()
	} else {
		gv.Item = newItemView(it)
	}
	return gv
}
