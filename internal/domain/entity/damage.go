package entity

import "fmt"

// DamageSource classifies what hit an entity, decoupled from collider tags
type DamageSource int

const (
	DamageLight DamageSource = iota
	DamageSkill
	DamageHeavy
)

// String returns the string representation of the damage source
func (d DamageSource) String() string {
	switch d {
	case DamageLight:
		return "light"
	case DamageSkill:
		return "skill"
	case DamageHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// ParseDamageSource converts a config name into a DamageSource
func ParseDamageSource(name string) (DamageSource, error) {
	switch name {
	case "light":
		return DamageLight, nil
	case "skill":
		return DamageSkill, nil
	case "heavy":
		return DamageHeavy, nil
	default:
		return 0, fmt.Errorf("unknown damage source %q", name)
	}
}

// DamageTable maps a damage source to the amount it deals
type DamageTable map[DamageSource]int

// DefaultDamageTable returns the stock weapon damage values
func DefaultDamageTable() DamageTable {
	return DamageTable{
		DamageLight: 2,
		DamageSkill: 5,
		DamageHeavy: 8,
	}
}

// Amount returns the damage for a source, 0 if it is not listed
func (t DamageTable) Amount(src DamageSource) int {
	return t[src]
}

// OverlapKind is the classification of a collider overlap
type OverlapKind int

const (
	OverlapIgnored OverlapKind = iota
	OverlapDamage
	OverlapPlayerContact
)

// TagTable maps collider tags to damage sources
type TagTable struct {
	Sources   map[string]DamageSource
	PlayerTag string
}

// DefaultTagTable returns the stock tag vocabulary
func DefaultTagTable() TagTable {
	return TagTable{
		Sources: map[string]DamageSource{
			"Sword":   DamageLight,
			"Skill Q": DamageSkill,
			"Skill E": DamageSkill,
			"Hammer":  DamageHeavy,
		},
		PlayerTag: "Player",
	}
}

// Classify resolves a collider tag into an overlap kind and damage source
func (t TagTable) Classify(tag string) (OverlapKind, DamageSource) {
	if tag != "" && tag == t.PlayerTag {
		return OverlapPlayerContact, 0
	}
	if src, ok := t.Sources[tag]; ok {
		return OverlapDamage, src
	}
	return OverlapIgnored, 0
}
