package battle

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Ability is what a player slot holds. Abilities are learned on plots.
type Ability int

const (
	Blank Ability = iota
	MeleeAttack
	Armor
	RangeAttack
	Vision
	Build
	Repair
	ButtonPress
	Heal
	abilityCount // sentinel
)

var abilityNames = [abilityCount]string{
	Blank:       "blank",
	MeleeAttack: "melee_attack",
	Armor:       "armor",
	RangeAttack: "range_attack",
	Vision:      "vision",
	Build:       "build",
	Repair:      "repair",
	ButtonPress: "button_press",
	Heal:        "heal",
}

// Name is the config spelling of the ability.
func (a Ability) Name() string {
	if a < 0 || a >= abilityCount {
		return "unknown"
	}
	return abilityNames[a]
}

// String is the HUD label. Blank renders as nothing.
func (a Ability) String() string {
	switch a {
	case Blank:
		return ""
	case MeleeAttack:
		return "Melee Attack"
	case Armor:
		return "Armor"
	case RangeAttack:
		return "Range Attack"
	case Vision:
		return "Vision"
	case Build:
		return "Build"
	case Repair:
		return "Repair"
	case ButtonPress:
		return "Press Button"
	case Heal:
		return "Heal"
	default:
		return "?"
	}
}

// ParseAbility maps a config name to an Ability.
func ParseAbility(name string) (Ability, error) {
	for i, n := range abilityNames {
		if n == name {
			return Ability(i), nil
		}
	}
	return Blank, fmt.Errorf("unknown ability %q", name)
}

// UnmarshalYAML reads an ability by name.
func (a *Ability) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseAbility(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*a = parsed
	return nil
}

// MarshalYAML writes the ability by name.
func (a Ability) MarshalYAML() (interface{}, error) {
	return a.Name(), nil
}

// ActionButton identifies one of the two action buttons and the ability slot
// it drives.
type ActionButton int

const (
	Primary ActionButton = iota
	Secondary
)

func (b ActionButton) String() string {
	if b == Secondary {
		return "secondary"
	}
	return "primary"
}
