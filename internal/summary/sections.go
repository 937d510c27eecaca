package summary

import (
	"fmt"
	"strings"

	"github.com/Dav1dde/pasteofexile-sub000/internal/pob"
)

// defaultResistance is shown for resistances missing from the export.
const defaultResistance = "-60"

// Overview groups every element list of a build.
type Overview struct {
	Title   string    `json:"title"`
	Core    []Element `json:"core"`
	Defense []Element `json:"defense"`
	Offense []Element `json:"offense"`
	Config  []Element `json:"config"`
}

// Summarize builds the full overview of a build.
func Summarize(b *pob.Build) Overview {
	return Overview{
		Title:   Title(b),
		Core:    CoreStats(b),
		Defense: Defense(b),
		Offense: Offense(b),
		Config:  Configs(b),
	}
}

// CoreStats returns life, energy shield, mana and the total pool.
func CoreStats(b *pob.Build) []Element {
	elements := make([]Element, 0, 4)

	life := newElement("Life").statInt(b.StatFloat(pob.StatLifeUnreserved))
	if !b.HasKeystone(pob.ChaosInoculation) {
		life.percent(b.Stat(pob.StatLifeInc))
	}
	elements = add(elements, life)

	if b.StatAtLeast(pob.StatEnergyShield, 10) {
		es := newElement("ES").
			withTitle("Energy Shield").
			statInt(b.StatFloat(pob.StatEnergyShield))
		if IsHybrid(b) {
			es.percent(b.Stat(pob.StatEnergyShieldInc))
		}
		elements = add(elements, es)
	}

	mana := newElement("Mana").statInt(b.StatFloat(pob.StatManaUnreserved))
	if b.HasKeystone(pob.MindOverMatter) {
		mana.percent(b.Stat(pob.StatManaInc))
	}
	elements = add(elements, mana)

	elements = add(elements, newElement("Pool").
		withTitle("Total Health Pool").
		statInt(float64(HPPool(b)), true))

	return elements
}

// threshold is a defensive stat shown only above a minimum.
type threshold struct {
	name  string
	title string
	stat  pob.Stat
	min   float64
}

var percentDefenses = []threshold{
	{name: "Evade", stat: pob.StatMeleeEvadeChance, min: 20},
	{name: "PDR", title: "Physical Damage Reduction", stat: pob.StatPhysicalDamageReduction, min: 10},
	{name: "Supp", title: "Spell Suppression", stat: pob.StatSpellSuppressionChance, min: 30},
	{name: "Dodge", stat: pob.StatAttackDodgeChance, min: 20},
	{name: "Spell Dodge", stat: pob.StatSpellDodgeChance, min: 10},
	{name: "Block", stat: pob.StatBlockChance, min: 30},
	{name: "Spell Block", stat: pob.StatSpellBlockChance, min: 10},
}

var ratingDefenses = []threshold{
	{name: "Armour", stat: pob.StatArmour, min: 5000},
	{name: "Evasion", stat: pob.StatEvasion, min: 5000},
}

// Defense returns resistances and the notable defensive layers.
func Defense(b *pob.Build) []Element {
	elements := make([]Element, 0, 5)

	res := newElement("Resistances")
	for _, key := range []pob.Stat{
		pob.StatFireResistance,
		pob.StatColdResistance,
		pob.StatLightningResistance,
		pob.StatChaosResistance,
	} {
		v, ok := b.Stat(key)
		if !ok {
			v = defaultResistance
		}
		res.pushPercent(v)
	}
	elements = add(elements, res)

	for _, d := range percentDefenses {
		if !b.StatAtLeast(d.stat, d.min) {
			continue
		}
		// PDR only means something against a configured enemy hit.
		if d.stat == pob.StatPhysicalDamageReduction && !b.Config(pob.ConfigEnemyHit).IsSome() {
			continue
		}
		elements = add(elements, newElement(d.name).withTitle(d.title).percent(b.Stat(d.stat)))
	}

	for _, d := range ratingDefenses {
		if b.StatAtLeast(d.stat, d.min) {
			elements = add(elements, newElement(d.name).statInt(b.StatFloat(d.stat)))
		}
	}

	return elements
}

// Offense returns damage, speed and hit stats. Minion stats take over when
// the export has minion DPS.
func Offense(b *pob.Build) []Element {
	elements := make([]Element, 0, 6)

	scope := pob.ScopePlayer
	if _, ok := b.MinionStat(pob.StatCombinedDPS); ok {
		scope = pob.ScopeMinion
	}

	elements = add(elements, newElement("DPS").
		statInt(pob.ParseStat[float64](b, scope, pob.StatCombinedDPS)))
	elements = add(elements, newElement("Speed").
		statFloat(pob.ParseStat[float64](b, scope, pob.StatSpeed)))
	elements = add(elements, newElement("Hit Rate").
		statFloat(b.StatFloat(pob.StatHitRate)))
	elements = add(elements, newElement("Hit Chance").
		percent(b.Stat(pob.StatHitChance)))

	if IsCrit(b) {
		elements = add(elements, newElement("Crit Chance").
			percentFloat(b.StatFloat(pob.StatCritChance)))

		if b.StatAtLeast(pob.StatCritMultiplier, 1) {
			multi, ok := b.StatFloat(pob.StatCritMultiplier)
			elements = add(elements, newElement("Crit Multi").percentInt(multi*100, ok))
		}
	}

	return elements
}

// ConfigNames lists the notable configuration options of a build.
func ConfigNames(b *pob.Build) []string {
	configs := make([]string, 0, 5)

	boss := b.Config(pob.ConfigBoss)
	if boss.IsTrue() {
		configs = append(configs, "Boss")
	} else if name, ok := boss.Str(); ok {
		configs = append(configs, name)
	}

	if b.Config(pob.ConfigFocused).IsTrue() {
		configs = append(configs, "Focused")
	}

	if b.Config(pob.ConfigEnemyShocked).IsTrue() {
		effect, ok := b.Config(pob.ConfigShockEffect).Num()
		if !ok {
			effect = 15
		}
		configs = append(configs, fmt.Sprintf("%d%% Shock", truncate(effect)))
	}

	if b.Config(pob.ConfigCoveredInAsh).IsTrue() {
		configs = append(configs, "Covered in Ash")
	}

	configs = appendCharges(configs, b, pob.ConfigFrenzyCharges, pob.ConfigFrenzyChargesCount, "Frenzy")
	configs = appendCharges(configs, b, pob.ConfigPowerCharges, pob.ConfigPowerChargesCount, "Power")

	if n, ok := b.Config(pob.ConfigWitherStacks).Num(); ok && n > 0 {
		configs = append(configs, fmt.Sprintf("%dx Wither", truncate(n)))
	}

	if len(configs) == 0 {
		configs = append(configs, "None")
	}
	return configs
}

func appendCharges(configs []string, b *pob.Build, use, count pob.ConfigKey, name string) []string {
	if !b.Config(use).IsTrue() {
		return configs
	}
	if n, ok := b.Config(count).Num(); ok {
		return append(configs, fmt.Sprintf("%dx %s", truncate(n), name))
	}
	return append(configs, name)
}

// Configs returns the single "Config" element.
func Configs(b *pob.Build) []Element {
	e := newElement("Config").statStr(strings.Join(ConfigNames(b), ", "), true)
	return []Element{*e}
}
