package system

import (
	"github.com/younwookim/soulwave/internal/domain/entity"
	"github.com/younwookim/soulwave/internal/domain/event"
)

// DamageResult reports what ApplyDamage did
type DamageResult int

const (
	DamageApplied DamageResult = iota
	DamageLethal
	DamageRejectedDead
	DamageRejectedGated
)

// String returns the string representation of the damage result
func (r DamageResult) String() string {
	switch r {
	case DamageApplied:
		return "applied"
	case DamageLethal:
		return "lethal"
	case DamageRejectedDead:
		return "rejected_dead"
	case DamageRejectedGated:
		return "rejected_gated"
	default:
		return "unknown"
	}
}

// Accepted returns true if the damage changed health
func (r DamageResult) Accepted() bool {
	return r == DamageApplied || r == DamageLethal
}

const taskWarning = "boss-warning"

// Resolver applies damage to one enemy and reports its death to the owner
type Resolver struct {
	handle   EnemyHandle
	health   *entity.Health
	movement *Movement
	behavior *Behavior
	tasks    *TaskList
	owner    KillListener
	events   *event.Dispatcher

	warningCooldown float64
	gated           bool
	killed          bool
}

// ApplyDamage lowers health by amount, staggers the enemy away from source
// and kills it when health reaches 0. Dead or gated enemies reject damage.
func (r *Resolver) ApplyDamage(amount int, source entity.Vec2) DamageResult {
	if r.killed || r.behavior.State() == entity.StateDead {
		return DamageRejectedDead
	}
	if r.gated {
		r.events.Dispatch(event.Event{
			Type:   event.DamageRejected,
			Entity: r.handle.ID(),
			Pos:    r.movement.Pos,
			Reason: "gated",
		})
		return DamageRejectedGated
	}

	depleted := r.health.TakeDamage(amount)
	r.events.Dispatch(event.Event{
		Type:    event.HealthChanged,
		Entity:  r.handle.ID(),
		Pos:     r.movement.Pos,
		Current: r.health.Current,
		Max:     r.health.Max,
	})

	if !depleted {
		r.behavior.Stagger(source)
		return DamageApplied
	}

	r.kill()
	return DamageLethal
}

// kill moves the enemy to Dead and reports it to the owner exactly once
func (r *Resolver) kill() {
	if r.killed {
		return
	}
	r.killed = true
	r.movement.Stop()
	r.behavior.Die()
	if r.owner != nil {
		r.owner.OnEnemyKilled(r.handle)
	}
}

// Contact handles the player touching this enemy. A gated enemy warns the
// player once, then stays quiet until the warning cooldown has elapsed.
func (r *Resolver) Contact() bool {
	if !r.gated || r.killed || r.tasks.Active(taskWarning) {
		return false
	}
	r.events.Dispatch(event.Event{
		Type:   event.BossWarning,
		Entity: r.handle.ID(),
		Pos:    r.movement.Pos,
	})
	r.tasks.Schedule(taskWarning, r.warningCooldown, nil)
	return true
}

// SetGated toggles damage gating
func (r *Resolver) SetGated(gated bool) {
	r.gated = gated
}

// Gated returns true while damage is rejected
func (r *Resolver) Gated() bool {
	return r.gated
}
