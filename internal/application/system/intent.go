package system

import "github.com/younwookim/soulwave/internal/domain/entity"

// Intent represents an action that the player wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents a movement intention
type MoveIntent struct {
	Dir entity.Vec2 // unit vector
}

func (MoveIntent) isIntent() {}

// StrikeIntent represents a weapon swing hitting every enemy within Radius
type StrikeIntent struct {
	Tag    string // collider tag the hit is reported with
	Radius float64
}

func (StrikeIntent) isIntent() {}

// SkillIntent represents a skill cast
type SkillIntent struct {
	Tag    string
	Radius float64
}

func (SkillIntent) isIntent() {}

// CollectIntent represents an attempt to collect the soul point
type CollectIntent struct{}

func (CollectIntent) isIntent() {}

// PlayerActions configures what each player action does
type PlayerActions struct {
	SwordTag      string
	SkillTag      string
	SkillRadius   float64
	SkillCooldown float64
}

// DefaultPlayerActions returns the stock sword and Q skill
func DefaultPlayerActions() PlayerActions {
	return PlayerActions{
		SwordTag:      "Sword",
		SkillTag:      "Skill Q",
		SkillRadius:   3,
		SkillCooldown: 3,
	}
}

// IntentsFromInput translates one tick of input into intents
func IntentsFromInput(in InputState, p *entity.Player, actions PlayerActions) []Intent {
	var intents []Intent
	if dir := in.Direction(); dir != (entity.Vec2{}) {
		intents = append(intents, MoveIntent{Dir: dir})
	}
	if in.Strike {
		intents = append(intents, StrikeIntent{Tag: actions.SwordTag, Radius: p.StrikeRadius})
	}
	if in.Skill {
		intents = append(intents, SkillIntent{Tag: actions.SkillTag, Radius: actions.SkillRadius})
	}
	if in.Collect {
		intents = append(intents, CollectIntent{})
	}
	return intents
}
