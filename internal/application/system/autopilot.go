package system

import (
	"github.com/younwookim/soulwave/internal/domain/entity"
)

// Autopilot plays the arena headlessly: it heads for the soul point when one
// is up, otherwise for the nearest enemy it can damage, and swings in reach.
type Autopilot struct {
	sim     *Simulation
	player  *entity.Player
	actions PlayerActions
}

// NewAutopilot creates an autopilot driving player in sim
func NewAutopilot(sim *Simulation, player *entity.Player, actions PlayerActions) *Autopilot {
	return &Autopilot{sim: sim, player: player, actions: actions}
}

// Decide returns this tick's input
func (a *Autopilot) Decide() InputState {
	var in InputState
	pos := a.player.Pos

	if soul, ok := a.sim.Director().SoulPoint(); ok {
		if soul.CanCollect(pos) {
			in.Collect = true
			return in
		}
		in.MoveX, in.MoveY = direction(pos, soul.Pos)
		return in
	}

	target := a.nearestTarget()
	if target == nil {
		return in
	}
	tp := target.Position()
	if a.player.InReach(tp) {
		in.Strike = a.player.CanStrike()
		in.Skill = tp.Dist(pos) <= a.actions.SkillRadius
		return in
	}
	in.MoveX, in.MoveY = direction(pos, tp)
	return in
}

// nearestTarget picks the closest live enemy that accepts damage, ties to the lower ID
func (a *Autopilot) nearestTarget() *Enemy {
	var best *Enemy
	bestDist := 0.0
	for _, e := range a.sim.Enemies() {
		if e.IsDead() || e.DamageGated() {
			continue
		}
		d := e.Position().Dist(a.player.Pos)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func direction(from, to entity.Vec2) (float64, float64) {
	d := to.Sub(from).Normalize()
	return d.X, d.Y
}
