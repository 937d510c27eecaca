package pob

// Build is a decoded Path of Building document. It is created once per
// parse and never mutated by this package.
type Build struct {
	Level               uint8  `json:"level"`
	ClassName           string `json:"class_name"`
	AscendancyClassName string `json:"ascendancy_class_name"`
	MainSocketGroup     uint8  `json:"main_socket_group"`
	TargetVersion       string `json:"target_version,omitempty"`
	Bandit              string `json:"bandit,omitempty"`
	PantheonMajorGod    string `json:"pantheon_major_god,omitempty"`
	PantheonMinorGod    string `json:"pantheon_minor_god,omitempty"`

	// Stats keeps export order within each scope.
	Stats []BuildStat `json:"stats"`

	// Notes is raw and may contain color markup and links.
	Notes string `json:"notes"`

	ConfigInputs []ConfigInput `json:"config_inputs"`
	Skills       Skills        `json:"skills"`
	Tree         Tree          `json:"tree"`
	Items        Items         `json:"items"`
}

// StatScope selects which stat list a lookup searches.
type StatScope string

const (
	ScopePlayer  StatScope = "player"
	ScopeMinion  StatScope = "minion"
	ScopeFullDPS StatScope = "full_dps"
)

// BuildStat is one exported stat. Values stay strings until queried.
type BuildStat struct {
	Scope StatScope `json:"scope"`
	Name  string    `json:"name"`
	Value string    `json:"value"`
}

// ConfigInput is one entry of the build's configuration tab.
type ConfigInput struct {
	Name  string      `json:"name"`
	Value ConfigValue `json:"value"`
}

// Skills holds either the legacy flat skill list or skill sets, never both.
type Skills struct {
	ActiveSkillSet uint32     `json:"active_skill_set,omitempty"`
	Flat           []Skill    `json:"flat,omitempty"`
	Sets           []SkillSet `json:"sets,omitempty"`
}

// SkillSet is a named group of socket groups.
type SkillSet struct {
	ID     uint32  `json:"id"`
	Title  string  `json:"title,omitempty"`
	Skills []Skill `json:"skills"`
}

// Skill is one socket group.
type Skill struct {
	// MainActiveSkill is 1-based into ActiveSkillNames; 0 means unset.
	MainActiveSkill uint8  `json:"main_active_skill"`
	Enabled         bool   `json:"enabled"`
	Label           string `json:"label,omitempty"`
	Slot            string `json:"slot,omitempty"`
	Gems            []Gem  `json:"gems"`
}

// Gem is one gem inside a socket group. Empty optional strings mean absent.
type Gem struct {
	Name      string `json:"name"`
	SkillID   string `json:"skill_id,omitempty"`
	GemID     string `json:"gem_id,omitempty"`
	QualityID string `json:"quality_id,omitempty"`
	Enabled   bool   `json:"enabled"`
	Level     uint8  `json:"level"`
	Quality   uint8  `json:"quality"`
	Count     uint8  `json:"count,omitempty"`
}

// Tree holds the passive tree specs.
type Tree struct {
	// ActiveSpec is 1-based; 0 means no active spec.
	ActiveSpec uint8  `json:"active_spec"`
	Specs      []Spec `json:"specs"`
}

// Spec is one saved passive tree allocation.
type Spec struct {
	Title          string          `json:"title,omitempty"`
	Version        string          `json:"version,omitempty"`
	ClassID        uint8           `json:"class_id"`
	AscendClassID  uint8           `json:"ascend_class_id"`
	Nodes          []uint32        `json:"nodes"`
	MasteryEffects []MasteryEffect `json:"mastery_effects,omitempty"`
	URL            string          `json:"url,omitempty"`
	Sockets        []TreeSocket    `json:"sockets,omitempty"`
	Active         bool            `json:"active"`
}

// MasteryEffect is a selected mastery bonus on an allocated mastery node.
type MasteryEffect struct {
	Node   uint32 `json:"node"`
	Effect uint32 `json:"effect"`
}

// TreeSocket is a jewel socket on the tree and the item placed in it.
type TreeSocket struct {
	NodeID uint32 `json:"node_id"`
	ItemID uint32 `json:"item_id"`
}

// Items holds raw item texts and the item sets referencing them.
type Items struct {
	ActiveItemSet uint32            `json:"active_item_set"`
	Texts         map[uint32]string `json:"texts"`
	Sets          []ItemSet         `json:"sets"`
}

// ItemSet is one gear loadout.
type ItemSet struct {
	ID    uint32 `json:"id"`
	Title string `json:"title,omitempty"`
	Gear  Gear   `json:"gear"`
}

// GearItem is an item slotted somewhere in an item set.
type GearItem struct {
	Slot string `json:"slot"`
	ID   uint32 `json:"id"`
	Text string `json:"text"`
}

// Gear holds the named equipment slots of an item set. Nil means empty.
type Gear struct {
	Weapon1    *GearItem  `json:"weapon1,omitempty"`
	Weapon2    *GearItem  `json:"weapon2,omitempty"`
	Helmet     *GearItem  `json:"helmet,omitempty"`
	BodyArmour *GearItem  `json:"body_armour,omitempty"`
	Gloves     *GearItem  `json:"gloves,omitempty"`
	Boots      *GearItem  `json:"boots,omitempty"`
	Amulet     *GearItem  `json:"amulet,omitempty"`
	Ring1      *GearItem  `json:"ring1,omitempty"`
	Ring2      *GearItem  `json:"ring2,omitempty"`
	Belt       *GearItem  `json:"belt,omitempty"`
	Flask1     *GearItem  `json:"flask1,omitempty"`
	Flask2     *GearItem  `json:"flask2,omitempty"`
	Flask3     *GearItem  `json:"flask3,omitempty"`
	Flask4     *GearItem  `json:"flask4,omitempty"`
	Flask5     *GearItem  `json:"flask5,omitempty"`
	Sockets    []GearItem `json:"sockets,omitempty"`
}

// slot returns the field a PoB slot name maps to, or nil for slots that
// belong in Sockets.
func (g *Gear) slot(name string) **GearItem {
	switch name {
	case "Weapon 1":
		return &g.Weapon1
	case "Weapon 2":
		return &g.Weapon2
	case "Helmet":
		return &g.Helmet
	case "Body Armour":
		return &g.BodyArmour
	case "Gloves":
		return &g.Gloves
	case "Boots":
		return &g.Boots
	case "Amulet":
		return &g.Amulet
	case "Ring 1":
		return &g.Ring1
	case "Ring 2":
		return &g.Ring2
	case "Belt":
		return &g.Belt
	case "Flask 1":
		return &g.Flask1
	case "Flask 2":
		return &g.Flask2
	case "Flask 3":
		return &g.Flask3
	case "Flask 4":
		return &g.Flask4
	case "Flask 5":
		return &g.Flask5
	}
	return nil
}

// Equipped returns the filled named slots in display order. Sockets are not
// included.
func (g *Gear) Equipped() []GearItem {
	slots := []*GearItem{
		g.Weapon1, g.Weapon2, g.Helmet, g.BodyArmour, g.Gloves, g.Boots,
		g.Amulet, g.Ring1, g.Ring2, g.Belt,
		g.Flask1, g.Flask2, g.Flask3, g.Flask4, g.Flask5,
	}
	out := make([]GearItem, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}
