package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/soulwave/internal/domain/entity"
	"github.com/younwookim/soulwave/internal/domain/event"
)

// Task names
const (
	taskDash           = "attack-dash"
	taskAttackCooldown = "attack-cooldown"
	taskStagger        = "stagger"
	taskRoam           = "roam"
	taskExit           = "exit-delay"
)

// Behavior is an enemy's finite-state controller. Dead is absorbing.
type Behavior struct {
	id       entity.EntityID
	stats    entity.EnemyStats
	state    entity.BehaviorState
	origin   entity.Vec2
	movement *Movement
	tasks    *TaskList
	events   *event.Dispatcher
	rng      *rand.Rand

	// onDeath replaces Die when health runs out outside of combat
	onDeath func()

	exited bool
}

// State returns the current behavior state
func (b *Behavior) State() entity.BehaviorState {
	return b.state
}

// Exited returns true once the post-death exit delay has elapsed
func (b *Behavior) Exited() bool {
	return b.exited
}

// Update evaluates the transition rules in priority order
func (b *Behavior) Update(player entity.Vec2, health entity.Health) {
	if b.state == entity.StateDead {
		return
	}

	if !health.IsAlive() {
		if b.onDeath != nil {
			b.onDeath()
		} else {
			b.Die()
		}
		return
	}

	if b.state == entity.StateStaggered && b.tasks.Active(taskStagger) {
		return
	}
	if b.state == entity.StateAttacking && b.tasks.Active(taskDash) {
		return
	}

	dist := b.movement.Pos.Dist(player)
	switch {
	case dist <= b.stats.AttackRadius && !b.tasks.Active(taskAttackCooldown):
		b.startAttack(player)
	case dist <= b.stats.DetectionRadius:
		b.setState(entity.StateChasing)
		b.movement.MoveTo(player)
	default:
		b.roam()
	}
}

// Stagger interrupts whatever the enemy is doing and knocks it away from source
func (b *Behavior) Stagger(source entity.Vec2) {
	if b.state == entity.StateDead {
		return
	}

	if b.tasks.Active(taskDash) {
		b.endDash()
	}

	b.movement.Stop()
	away := b.movement.Pos.Sub(source).Normalize()
	b.movement.Push(away.Scale(b.stats.KnockbackSpeed), b.stats.StaggerDuration)

	b.setState(entity.StateStaggered)
	b.emit(event.StaggerStarted)
	b.tasks.Schedule(taskStagger, b.stats.StaggerDuration, func() {
		b.emit(event.StaggerEnded)
	})
}

// Die enters the terminal state, cancels every pending task and starts the exit delay
func (b *Behavior) Die() {
	if b.state == entity.StateDead {
		return
	}
	b.state = entity.StateDead
	b.tasks.Clear()
	b.movement.Stop()
	b.emit(event.EnemyDied)
	b.tasks.Schedule(taskExit, b.stats.ExitDelay, func() {
		b.exited = true
	})
}

func (b *Behavior) startAttack(player entity.Vec2) {
	b.setState(entity.StateAttacking)
	b.movement.MoveToAt(player, b.stats.DashSpeed)
	b.emit(event.AttackStarted)
	b.tasks.Schedule(taskDash, b.stats.DashDuration, b.endDash)
}

// endDash finishes or interrupts a dash. The cooldown starts either way.
func (b *Behavior) endDash() {
	b.tasks.Cancel(taskDash)
	b.movement.Stop()
	b.emit(event.AttackEnded)
	b.tasks.Schedule(taskAttackCooldown, b.stats.AttackCooldown, nil)
}

func (b *Behavior) roam() {
	b.setState(entity.StateRoaming)
	if b.tasks.Active(taskRoam) {
		return
	}
	b.movement.MoveTo(b.roamPoint())
	b.tasks.Schedule(taskRoam, b.stats.RoamInterval, nil)
}

// roamPoint picks a uniform random point within RoamingRadius of the origin
func (b *Behavior) roamPoint() entity.Vec2 {
	angle := b.rng.Float64() * 2 * math.Pi
	r := b.stats.RoamingRadius * math.Sqrt(b.rng.Float64())
	return b.origin.Add(entity.Vec2{X: math.Cos(angle) * r, Y: math.Sin(angle) * r})
}

func (b *Behavior) setState(s entity.BehaviorState) {
	if s != entity.StateRoaming {
		b.tasks.Cancel(taskRoam)
	}
	b.state = s
}

func (b *Behavior) emit(t event.Type) {
	b.events.Dispatch(event.Event{
		Type:   t,
		Entity: b.id,
		Pos:    b.movement.Pos,
	})
}
