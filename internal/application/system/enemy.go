package system

import (
	"math/rand"

	"github.com/younwookim/soulwave/internal/domain/entity"
	"github.com/younwookim/soulwave/internal/domain/event"
)

// Enemy bundles one enemy's health, movement, behavior and combat resolver.
// It is the EnemyHandle the Director tracks.
type Enemy struct {
	id     entity.EntityID
	kind   entity.EnemyKind
	stats  entity.EnemyStats
	health entity.Health

	movement *Movement
	tasks    *TaskList
	behavior *Behavior
	resolver *Resolver
}

// EnemyParams groups the collaborators an enemy is built with
type EnemyParams struct {
	ID     entity.EntityID
	Kind   entity.EnemyKind
	Stats  entity.EnemyStats
	Pos    entity.Vec2
	Owner  KillListener
	Events *event.Dispatcher
	RNG    *rand.Rand
	Bounds *entity.Arena
}

// NewEnemy creates a live enemy in the Roaming state
func NewEnemy(p EnemyParams) *Enemy {
	e := &Enemy{
		id:       p.ID,
		kind:     p.Kind,
		stats:    p.Stats,
		health:   entity.NewHealth(p.Stats.MaxHealth),
		movement: NewMovement(p.Pos, p.Stats.MoveSpeed, p.Bounds),
		tasks:    &TaskList{},
	}
	e.behavior = &Behavior{
		id:       p.ID,
		stats:    p.Stats,
		state:    entity.StateRoaming,
		origin:   p.Pos,
		movement: e.movement,
		tasks:    e.tasks,
		events:   p.Events,
		rng:      p.RNG,
	}
	e.resolver = &Resolver{
		handle:          e,
		health:          &e.health,
		movement:        e.movement,
		behavior:        e.behavior,
		tasks:           e.tasks,
		owner:           p.Owner,
		events:          p.Events,
		warningCooldown: p.Stats.WarningCooldown,
	}
	e.behavior.onDeath = e.resolver.kill
	return e
}

// ID returns the enemy's entity ID
func (e *Enemy) ID() entity.EntityID { return e.id }

// Kind returns the enemy kind
func (e *Enemy) Kind() entity.EnemyKind { return e.kind }

// Stats returns the enemy's tuning values
func (e *Enemy) Stats() entity.EnemyStats { return e.stats }

// IsBoss returns true for boss kinds
func (e *Enemy) IsBoss() bool { return e.stats.Boss }

// IsDead returns true once the enemy has entered the Dead state
func (e *Enemy) IsDead() bool { return e.behavior.State() == entity.StateDead }

// SetDamageGated toggles whether the player may damage this enemy
func (e *Enemy) SetDamageGated(gated bool) { e.resolver.SetGated(gated) }

// DamageGated returns true while damage is rejected
func (e *Enemy) DamageGated() bool { return e.resolver.Gated() }

// Position returns the current position
func (e *Enemy) Position() entity.Vec2 { return e.movement.Pos }

// Health returns a copy of the health pool
func (e *Enemy) Health() entity.Health { return e.health }

// State returns the behavior state
func (e *Enemy) State() entity.BehaviorState { return e.behavior.State() }

// Movement exposes the movement controller
func (e *Enemy) Movement() *Movement { return e.movement }

// ReadyForRemoval returns true once the enemy is dead and its exit delay elapsed
func (e *Enemy) ReadyForRemoval() bool { return e.IsDead() && e.behavior.Exited() }

// ApplyDamage routes damage through the combat resolver
func (e *Enemy) ApplyDamage(amount int, source entity.Vec2) DamageResult {
	return e.resolver.ApplyDamage(amount, source)
}

// Contact notifies the enemy that the player touched it
func (e *Enemy) Contact() bool {
	return e.resolver.Contact()
}

// Update advances timed tasks, evaluates the FSM and integrates movement
func (e *Enemy) Update(dt float64, player entity.Vec2) {
	e.tasks.Update(dt)
	e.behavior.Update(player, e.health)
	e.movement.Update(dt)
}
