package pob

import (
	"encoding/xml"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
)

// The xml* types mirror the export layout. Every attribute is read as a
// string and converted leniently afterwards, so a malformed number never
// fails the document.

type xmlDocument struct {
	XMLName xml.Name  `xml:"PathOfBuilding"`
	Build   *xmlBuild `xml:"Build"`
	Skills  xmlSkills `xml:"Skills"`
	Tree    xmlTree   `xml:"Tree"`
	Notes   string    `xml:"Notes"`
	Config  xmlConfig `xml:"Config"`
	Items   xmlItems  `xml:"Items"`
}

type xmlBuild struct {
	Level            string    `xml:"level,attr"`
	ClassName        string    `xml:"className,attr"`
	AscendClassName  string    `xml:"ascendClassName,attr"`
	MainSocketGroup  string    `xml:"mainSocketGroup,attr"`
	TargetVersion    string    `xml:"targetVersion,attr"`
	Bandit           string    `xml:"bandit,attr"`
	PantheonMajorGod string    `xml:"pantheonMajorGod,attr"`
	PantheonMinorGod string    `xml:"pantheonMinorGod,attr"`
	PlayerStats      []xmlStat `xml:"PlayerStat"`
	MinionStats      []xmlStat `xml:"MinionStat"`
	FullDPSSkills    []xmlStat `xml:"FullDPSSkill"`
}

type xmlStat struct {
	Stat  string `xml:"stat,attr"`
	Value string `xml:"value,attr"`
}

type xmlSkills struct {
	ActiveSkillSet string        `xml:"activeSkillSet,attr"`
	Skills         []xmlSkill    `xml:"Skill"`
	SkillSets      []xmlSkillSet `xml:"SkillSet"`
}

type xmlSkillSet struct {
	ID     string     `xml:"id,attr"`
	Title  string     `xml:"title,attr"`
	Skills []xmlSkill `xml:"Skill"`
}

type xmlSkill struct {
	MainActiveSkill string   `xml:"mainActiveSkill,attr"`
	Enabled         string   `xml:"enabled,attr"`
	Label           string   `xml:"label,attr"`
	Slot            string   `xml:"slot,attr"`
	Gems            []xmlGem `xml:"Gem"`
}

type xmlGem struct {
	NameSpec  string `xml:"nameSpec,attr"`
	SkillID   string `xml:"skillId,attr"`
	GemID     string `xml:"gemId,attr"`
	QualityID string `xml:"qualityId,attr"`
	Enabled   string `xml:"enabled,attr"`
	Level     string `xml:"level,attr"`
	Quality   string `xml:"quality,attr"`
	Count     string `xml:"count,attr"`
}

type xmlTree struct {
	ActiveSpec string    `xml:"activeSpec,attr"`
	Specs      []xmlSpec `xml:"Spec"`
}

type xmlSpec struct {
	Title          string      `xml:"title,attr"`
	Nodes          string      `xml:"nodes,attr"`
	MasteryEffects string      `xml:"masteryEffects,attr"`
	TreeVersion    string      `xml:"treeVersion,attr"`
	ClassID        string      `xml:"classId,attr"`
	AscendClassID  string      `xml:"ascendClassId,attr"`
	URL            string      `xml:"URL"`
	Sockets        []xmlSocket `xml:"Sockets>Socket"`
}

type xmlSocket struct {
	NodeID string `xml:"nodeId,attr"`
	ItemID string `xml:"itemId,attr"`
}

type xmlConfig struct {
	ActiveConfigSet string         `xml:"activeConfigSet,attr"`
	Inputs          []xmlInput     `xml:"Input"`
	Sets            []xmlConfigSet `xml:"ConfigSet"`
}

type xmlConfigSet struct {
	ID     string     `xml:"id,attr"`
	Inputs []xmlInput `xml:"Input"`
}

// xmlInput keeps raw attributes: an empty string value is still a value.
type xmlInput struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

type xmlItems struct {
	ActiveItemSet string       `xml:"activeItemSet,attr"`
	Items         []xmlItem    `xml:"Item"`
	Slots         []xmlSlot    `xml:"Slot"`
	Sets          []xmlItemSet `xml:"ItemSet"`
}

// xmlItem collects the item body; ModRange children carry no text.
type xmlItem struct {
	ID   string `xml:"id,attr"`
	Text string `xml:",chardata"`
}

type xmlItemSet struct {
	ID    string    `xml:"id,attr"`
	Title string    `xml:"title,attr"`
	Slots []xmlSlot `xml:"Slot"`
}

type xmlSlot struct {
	Name   string `xml:"name,attr"`
	ItemID string `xml:"itemId,attr"`
}

// ParseXML parses decompressed build XML into a Build.
func ParseXML(text string) (*Build, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	// The text is already decoded; the prolog's encoding label is informational.
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var doc xmlDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.NewParseXML(xmlErrorPath(err), err)
	}
	if doc.Build == nil {
		return nil, errors.NewParseXML("PathOfBuilding/Build", fmt.Errorf("missing element"))
	}

	return doc.toBuild(), nil
}

func xmlErrorPath(err error) string {
	var syntaxErr *xml.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return fmt.Sprintf("line %d", syntaxErr.Line)
	}
	return "PathOfBuilding"
}

func (d *xmlDocument) toBuild() *Build {
	b := &Build{
		Level:               parseU8(d.Build.Level),
		ClassName:           d.Build.ClassName,
		AscendancyClassName: d.Build.AscendClassName,
		MainSocketGroup:     parseU8(d.Build.MainSocketGroup),
		TargetVersion:       d.Build.TargetVersion,
		Bandit:              d.Build.Bandit,
		PantheonMajorGod:    d.Build.PantheonMajorGod,
		PantheonMinorGod:    d.Build.PantheonMinorGod,
		Notes:               d.Notes,
	}

	b.Stats = make([]BuildStat, 0, len(d.Build.PlayerStats)+len(d.Build.MinionStats)+len(d.Build.FullDPSSkills))
	b.Stats = appendStats(b.Stats, ScopePlayer, d.Build.PlayerStats)
	b.Stats = appendStats(b.Stats, ScopeMinion, d.Build.MinionStats)
	b.Stats = appendStats(b.Stats, ScopeFullDPS, d.Build.FullDPSSkills)

	b.ConfigInputs = d.Config.inputs()
	b.Skills = d.Skills.toSkills()
	b.Tree = d.Tree.toTree()
	b.Items = d.Items.toItems()

	return b
}

func appendStats(dst []BuildStat, scope StatScope, stats []xmlStat) []BuildStat {
	for _, s := range stats {
		dst = append(dst, BuildStat{Scope: scope, Name: s.Stat, Value: s.Value})
	}
	return dst
}

// inputs returns the active config set's inputs, or the flat inputs of older
// exports.
func (c *xmlConfig) inputs() []ConfigInput {
	raw := c.Inputs
	if len(c.Sets) > 0 {
		raw = c.Sets[0].Inputs
		for _, set := range c.Sets {
			if set.ID == c.ActiveConfigSet {
				raw = set.Inputs
				break
			}
		}
	}

	out := make([]ConfigInput, 0, len(raw))
	for _, in := range raw {
		if ci, ok := in.toConfigInput(); ok {
			out = append(out, ci)
		}
	}
	return out
}

func (in *xmlInput) toConfigInput() (ConfigInput, bool) {
	var (
		name                    string
		str, number, boolean    string
		hasStr, hasNum, hasBool bool
	)
	for _, attr := range in.Attrs {
		switch attr.Name.Local {
		case "name":
			name = attr.Value
		case "string":
			str, hasStr = attr.Value, true
		case "number":
			number, hasNum = attr.Value, true
		case "boolean":
			boolean, hasBool = attr.Value, true
		}
	}
	if name == "" {
		return ConfigInput{}, false
	}

	ci := ConfigInput{Name: name}
	switch {
	case hasStr:
		ci.Value = StringValue(str)
	case hasNum:
		if v, ok := parseFloat(number); ok {
			ci.Value = NumberValue(v)
		}
	case hasBool:
		if v, ok := parseBool(boolean); ok {
			ci.Value = BoolValue(v)
		}
	}
	return ci, true
}

func (s *xmlSkills) toSkills() Skills {
	out := Skills{ActiveSkillSet: parseU32(s.ActiveSkillSet)}
	if len(s.SkillSets) > 0 {
		out.Sets = make([]SkillSet, 0, len(s.SkillSets))
		for _, set := range s.SkillSets {
			out.Sets = append(out.Sets, SkillSet{
				ID:     parseU32(set.ID),
				Title:  set.Title,
				Skills: toSkillList(set.Skills),
			})
		}
		return out
	}
	out.Flat = toSkillList(s.Skills)
	return out
}

func toSkillList(raw []xmlSkill) []Skill {
	out := make([]Skill, 0, len(raw))
	for _, s := range raw {
		skill := Skill{
			MainActiveSkill: parseU8(s.MainActiveSkill),
			Enabled:         parseBoolDefault(s.Enabled, true),
			Label:           s.Label,
			Slot:            s.Slot,
			Gems:            make([]Gem, 0, len(s.Gems)),
		}
		for _, g := range s.Gems {
			skill.Gems = append(skill.Gems, g.toGem())
		}
		out = append(out, skill)
	}
	return out
}

func (g *xmlGem) toGem() Gem {
	name := g.NameSpec
	if name == "" {
		name = gemNameFallback(g.SkillID)
	}
	return Gem{
		Name:      name,
		SkillID:   g.SkillID,
		GemID:     g.GemID,
		QualityID: g.QualityID,
		Enabled:   parseBoolDefault(g.Enabled, true),
		Level:     parseU8(g.Level),
		Quality:   parseU8(g.Quality),
		Count:     parseU8(g.Count),
	}
}

func (t *xmlTree) toTree() Tree {
	out := Tree{
		ActiveSpec: parseU8(t.ActiveSpec),
		Specs:      make([]Spec, 0, len(t.Specs)),
	}
	for i, s := range t.Specs {
		spec := Spec{
			Title:          s.Title,
			Version:        s.TreeVersion,
			ClassID:        parseU8(s.ClassID),
			AscendClassID:  parseU8(s.AscendClassID),
			Nodes:          parseNodeList(s.Nodes),
			MasteryEffects: parseMasteryEffects(s.MasteryEffects),
			URL:            strings.TrimSpace(s.URL),
			Active:         i+1 == int(out.ActiveSpec),
		}
		for _, sock := range s.Sockets {
			spec.Sockets = append(spec.Sockets, TreeSocket{
				NodeID: parseU32(sock.NodeID),
				ItemID: parseU32(sock.ItemID),
			})
		}
		out.Specs = append(out.Specs, spec)
	}
	return out
}

func (it *xmlItems) toItems() Items {
	out := Items{
		ActiveItemSet: parseU32(it.ActiveItemSet),
		Texts:         make(map[uint32]string, len(it.Items)),
	}
	for i, item := range it.Items {
		id := parseU32(item.ID)
		if id == 0 {
			id = uint32(i + 1)
		}
		out.Texts[id] = strings.TrimSpace(item.Text)
	}

	sets := it.Sets
	if len(sets) == 0 && len(it.Slots) > 0 {
		sets = []xmlItemSet{{ID: it.ActiveItemSet, Slots: it.Slots}}
	}

	out.Sets = make([]ItemSet, 0, len(sets))
	for _, set := range sets {
		itemSet := ItemSet{
			ID:    parseU32(set.ID),
			Title: set.Title,
		}
		for _, slot := range set.Slots {
			id := parseU32(slot.ItemID)
			if id == 0 {
				continue
			}
			text, ok := out.Texts[id]
			if !ok {
				continue
			}
			gi := GearItem{Slot: slot.Name, ID: id, Text: text}
			if field := itemSet.Gear.slot(slot.Name); field != nil {
				*field = &gi
			} else {
				itemSet.Gear.Sockets = append(itemSet.Gear.Sockets, gi)
			}
		}
		out.Sets = append(out.Sets, itemSet)
	}
	return out
}
