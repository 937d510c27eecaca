package pob

import "encoding/json"

// ConfigKey is the name of a PoB configuration input.
type ConfigKey string

const (
	ConfigBoss               ConfigKey = "enemyIsBoss"
	ConfigEnemyShocked       ConfigKey = "conditionEnemyShocked"
	ConfigFocused            ConfigKey = "conditionFocused"
	ConfigShockEffect        ConfigKey = "conditionShockEffect"
	ConfigEnemyHit           ConfigKey = "enemyPhysicalHit"
	ConfigCoveredInAsh       ConfigKey = "conditionEnemyCoveredInAsh"
	ConfigFrenzyCharges      ConfigKey = "useFrenzyCharges"
	ConfigFrenzyChargesCount ConfigKey = "overrideFrenzyCharges"
	ConfigPowerCharges       ConfigKey = "usePowerCharges"
	ConfigPowerChargesCount  ConfigKey = "overridePowerCharges"
	ConfigWitherStacks       ConfigKey = "multiplierWitheredStackCount"
)

// ConfigKind tags the populated field of a ConfigValue.
type ConfigKind uint8

const (
	ConfigNone ConfigKind = iota
	ConfigString
	ConfigNumber
	ConfigBool
)

// ConfigValue is a configuration input value. The zero value is ConfigNone.
type ConfigValue struct {
	Kind   ConfigKind
	String string
	Number float64
	Bool   bool
}

func StringValue(s string) ConfigValue  { return ConfigValue{Kind: ConfigString, String: s} }
func NumberValue(n float64) ConfigValue { return ConfigValue{Kind: ConfigNumber, Number: n} }
func BoolValue(b bool) ConfigValue      { return ConfigValue{Kind: ConfigBool, Bool: b} }

// IsSome reports whether the value is populated.
func (v ConfigValue) IsSome() bool {
	return v.Kind != ConfigNone
}

// IsTrue reports whether the value is the boolean true.
func (v ConfigValue) IsTrue() bool {
	return v.Kind == ConfigBool && v.Bool
}

// Str returns the string value, if the value is a string.
func (v ConfigValue) Str() (string, bool) {
	return v.String, v.Kind == ConfigString
}

// Num returns the numeric value, if the value is a number.
func (v ConfigValue) Num() (float64, bool) {
	return v.Number, v.Kind == ConfigNumber
}

// MarshalJSON encodes the value as a bare JSON string, number, bool or null.
func (v ConfigValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ConfigString:
		return json.Marshal(v.String)
	case ConfigNumber:
		return json.Marshal(v.Number)
	case ConfigBool:
		return json.Marshal(v.Bool)
	}
	return []byte("null"), nil
}
