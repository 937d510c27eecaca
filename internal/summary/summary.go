// Package summary derives the short descriptions shown for a build: its
// title and the stat lines of the overview.
package summary

import (
	"fmt"
	"math"
	"strings"

	"github.com/Dav1dde/pasteofexile-sub000/internal/pob"
)

// momPercent is the share of damage Mind Over Matter takes from mana.
const momPercent = 0.35

// IsCrit reports whether the build relies on critical strikes.
func IsCrit(b *pob.Build) bool {
	return !b.HasKeystone(pob.ElementalOverload) && b.StatAtLeast(pob.StatCritChance, 20)
}

// IsLowLife reports whether at most half of the build's life is unreserved.
func IsLowLife(b *pob.Build) bool {
	return b.StatAtMost(pob.StatLifeUnreservedPercent, 50)
}

// IsHybrid reports whether energy shield is a significant part of a life
// build's pool.
func IsHybrid(b *pob.Build) bool {
	if b.HasKeystone(pob.ChaosInoculation) || b.HasKeystone(pob.EldritchBattery) || IsLowLife(b) {
		return false
	}
	life, _ := b.StatFloat(pob.StatLifeUnreserved)
	return b.StatAtLeast(pob.StatEnergyShield, life*0.25)
}

// HPPool estimates the total health pool: life plus energy shield, with
// mana added up to the Mind Over Matter cap.
func HPPool(b *pob.Build) uint32 {
	es := statU32(b, pob.StatEnergyShield, 0)
	if b.HasKeystone(pob.ChaosInoculation) {
		return 1 + es
	}

	pool := statU32(b, pob.StatLifeUnreserved, 1)
	eb := b.HasKeystone(pob.EldritchBattery)
	if !eb {
		pool += es
	}

	if b.HasKeystone(pob.MindOverMatter) {
		mana := statU32(b, pob.StatManaUnreserved, 0)
		if eb {
			mana += es
		}
		soak := uint32(float32(pool) * float32(momPercent/(1-momPercent)))
		pool += min(mana, soak)
	}

	return pool
}

func statU32(b *pob.Build, key pob.Stat, def uint32) uint32 {
	if v, ok := pob.ParseStat[uint32](b, pob.ScopePlayer, key); ok {
		return v
	}
	return def
}

// TitleConfig adjusts Title.
type TitleConfig struct {
	// NoTitle omits the leading "Level N".
	NoTitle bool
}

// Title describes a build in one line, e.g. "Level 95 CI Crit Cyclone Slayer".
func Title(b *pob.Build) string {
	return TitleWithConfig(b, TitleConfig{})
}

// TitleWithConfig is Title with options.
func TitleWithConfig(b *pob.Build, cfg TitleConfig) string {
	items := make([]string, 0, 8)
	if !cfg.NoTitle {
		items = append(items, fmt.Sprintf("Level %d", b.Level))
	}

	if IsLowLife(b) {
		items = append(items, "LL")
	}
	if IsHybrid(b) {
		items = append(items, "Hybrid")
	}
	if b.HasKeystone(pob.ChaosInoculation) {
		items = append(items, "CI")
	}
	if b.HasKeystone(pob.MindOverMatter) {
		items = append(items, "MoM")
	}
	if IsCrit(b) {
		items = append(items, "Crit")
	}
	if b.MainSkillSupportedByAny("Cast On Critical Strike", "Awakened Cast On Critical Strike") {
		items = append(items, "CoC")
	}

	if name, ok := b.MainSkillName(); ok {
		items = append(items, name)
	}

	switch {
	case b.MainSkillSupportedByAny("Spell Totem", "Ballista Totem"):
		items = append(items, "Totem")
	case b.MainSkillSupportedByAny("Blastchain Mine", "High-Impact Mine"):
		items = append(items, "Mine")
	case b.MainSkillSupportedBy("Trap"):
		items = append(items, "Trap")
	}

	items = append(items, b.AscendancyOrClassName())

	return strings.Join(items, " ")
}

// truncate converts like a float to integer cast, saturating at the int
// bounds.
func truncate(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}
