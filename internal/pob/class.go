package pob

import (
	"fmt"
	"strings"

	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
)

// Class is one of the seven base character classes.
type Class uint8

const (
	Duelist Class = iota
	Marauder
	Ranger
	Scion
	Shadow
	Templar
	Witch
)

// Classes lists every class in ClassSet bit order.
var Classes = []Class{Duelist, Marauder, Ranger, Scion, Shadow, Templar, Witch}

var classNames = [...]string{"Duelist", "Marauder", "Ranger", "Scion", "Shadow", "Templar", "Witch"}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", c)
}

// ParseClass accepts a class name or the attribute name PoB uses for the
// class in tree data (e.g. "StrDex" for Duelist).
func ParseClass(s string) (Class, error) {
	switch s {
	case "Dex", "Ranger":
		return Ranger, nil
	case "DexInt", "Shadow":
		return Shadow, nil
	case "Int", "Witch":
		return Witch, nil
	case "Str", "Marauder":
		return Marauder, nil
	case "StrDex", "Duelist":
		return Duelist, nil
	case "StrDexInt", "Scion":
		return Scion, nil
	case "StrInt", "Templar":
		return Templar, nil
	}
	return 0, errors.NewInvalidRequest(fmt.Sprintf("invalid class: %q", s))
}

// ascendancies maps every ascendancy to its base class.
var ascendancies = map[string]Class{
	"Ascendant":    Scion,
	"Assassin":     Shadow,
	"Berserker":    Marauder,
	"Champion":     Duelist,
	"Chieftain":    Marauder,
	"Deadeye":      Ranger,
	"Elementalist": Witch,
	"Gladiator":    Duelist,
	"Guardian":     Templar,
	"Hierophant":   Templar,
	"Inquisitor":   Templar,
	"Juggernaut":   Marauder,
	"Necromancer":  Witch,
	"Occultist":    Witch,
	"Pathfinder":   Ranger,
	"Raider":       Ranger,
	"Saboteur":     Shadow,
	"Slayer":       Duelist,
	"Trickster":    Shadow,
}

// AscendancyClass returns the base class of an ascendancy.
func AscendancyClass(ascendancy string) (Class, bool) {
	c, ok := ascendancies[ascendancy]
	return c, ok
}

// ClassSet is a bitset of classes.
type ClassSet uint8

const classSetMask = 1<<len(classNames) - 1

// NewClassSet returns a set holding classes.
func NewClassSet(classes ...Class) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// ClassSetFromUint8 masks off bits that do not name a class.
func ClassSetFromUint8(v uint8) ClassSet {
	return ClassSet(v & classSetMask)
}

// With returns the set with c added.
func (s ClassSet) With(c Class) ClassSet {
	return s | 1<<c
}

// Contains reports whether c is in the set.
func (s ClassSet) Contains(c Class) bool {
	return s&(1<<c) != 0
}

func (s ClassSet) String() string {
	var names []string
	for _, c := range Classes {
		if s.Contains(c) {
			names = append(names, c.String())
		}
	}
	return "ClassSet(" + strings.Join(names, " | ") + ")"
}
