package system

import (
	"github.com/younwookim/soulwave/internal/domain/entity"
)

const taskSkillCooldown = "skill-cooldown"

// ActionReport summarizes what the player's intents did this tick
type ActionReport struct {
	Hits      int
	Collected bool
}

// PlayerSystem applies player intents to the player and the simulation
type PlayerSystem struct {
	actions PlayerActions
	bounds  *entity.Arena
	tasks   TaskList
}

// NewPlayerSystem creates a player system. bounds may be nil.
func NewPlayerSystem(actions PlayerActions, bounds *entity.Arena) *PlayerSystem {
	if bounds != nil && (bounds.Width <= 0 || bounds.Height <= 0) {
		bounds = nil
	}
	return &PlayerSystem{actions: actions, bounds: bounds}
}

// Actions returns the action configuration
func (s *PlayerSystem) Actions() PlayerActions {
	return s.actions
}

// SkillReady returns true if the skill is off cooldown
func (s *PlayerSystem) SkillReady() bool {
	return !s.tasks.Active(taskSkillCooldown)
}

// Update advances cooldowns, then applies input for dt seconds
func (s *PlayerSystem) Update(p *entity.Player, sim *Simulation, in InputState, dt float64) ActionReport {
	p.UpdateTimers(dt)
	s.tasks.Update(dt)
	return s.Apply(p, sim, IntentsFromInput(in, p, s.actions), dt)
}

// Apply executes intents in order
func (s *PlayerSystem) Apply(p *entity.Player, sim *Simulation, intents []Intent, dt float64) ActionReport {
	var report ActionReport
	for _, intent := range intents {
		switch it := intent.(type) {
		case MoveIntent:
			p.Move(it.Dir, dt)
			if s.bounds != nil {
				p.Pos = s.bounds.Clamp(p.Pos)
			}
		case StrikeIntent:
			if p.Strike() {
				report.Hits += sim.StrikeArea(p.Pos, it.Radius, it.Tag)
			}
		case SkillIntent:
			if s.SkillReady() {
				s.tasks.Schedule(taskSkillCooldown, s.actions.SkillCooldown, nil)
				report.Hits += sim.StrikeArea(p.Pos, it.Radius, it.Tag)
			}
		case CollectIntent:
			if sim.Director().TryCollectSoul(p.Pos) {
				report.Collected = true
			}
		}
	}
	return report
}
