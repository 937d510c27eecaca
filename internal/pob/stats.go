package pob

// Stat is a PoB stat name as it appears in PlayerStat/MinionStat elements.
// Any exported name can be used directly as Stat("Name").
type Stat string

const (
	StatAverageDamage           Stat = "AverageDamage"
	StatCritChance              Stat = "CritChance"
	StatCritMultiplier          Stat = "CritMultiplier"
	StatEnduranceChargesMax     Stat = "EnduranceChargesMax"
	StatEnergyShield            Stat = "EnergyShield"
	StatEnergyShieldInc         Stat = "Spec:EnergyShieldInc"
	StatLifeUnreserved          Stat = "LifeUnreserved"
	StatLifeUnreservedPercent   Stat = "LifeUnreservedPercent"
	StatLifeInc                 Stat = "Spec:LifeInc"
	StatManaUnreserved          Stat = "ManaUnreserved"
	StatManaInc                 Stat = "Spec:ManaInc"
	StatFireResistance          Stat = "FireResist"
	StatColdResistance          Stat = "ColdResist"
	StatLightningResistance     Stat = "LightningResist"
	StatChaosResistance         Stat = "ChaosResist"
	StatMeleeEvadeChance        Stat = "MeleeEvadeChance"
	StatPhysicalDamageReduction Stat = "PhysicalDamageReduction"
	StatSpellSuppressionChance  Stat = "SpellSuppressionChance"
	StatAttackDodgeChance       Stat = "AttackDodgeChance"
	StatSpellDodgeChance        Stat = "SpellDodgeChance"
	StatBlockChance             Stat = "BlockChance"
	StatSpellBlockChance        Stat = "SpellBlockChance"
	StatArmour                  Stat = "Armour"
	StatEvasion                 Stat = "Evasion"
	StatCombinedDPS             Stat = "CombinedDPS"
	StatSpeed                   Stat = "Speed"
	StatHitRate                 Stat = "HitRate"
	StatHitChance               Stat = "HitChance"
)
