package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/soulwave/internal/domain/entity"
	"github.com/younwookim/soulwave/internal/domain/event"
)

var farAway = entity.Vec2{X: 100, Y: 100}

func TestBehavior_RoamsNearOrigin(t *testing.T) {
	origin := entity.Vec2{X: 3, Y: 4}
	e := newTestEnemy(testStats(), origin, nil, nil)

	e.Update(0.5, farAway)
	require.Equal(t, entity.StateRoaming, e.State())
	first, _ := e.Movement().Target()
	assert.LessOrEqual(t, first.Dist(origin), 5.0)

	for i := 0; i < 3; i++ {
		e.Update(0.5, farAway)
		target, _ := e.Movement().Target()
		assert.Equal(t, first, target, "roam target holds for the roam interval")
	}

	e.Update(0.5, farAway)
	second, _ := e.Movement().Target()
	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, second.Dist(origin), 5.0)
}

func TestBehavior_ChasesInsideDetectionRadius(t *testing.T) {
	e := newTestEnemy(testStats(), entity.Vec2{}, nil, nil)
	player := entity.Vec2{X: 5}

	e.Update(0.1, player)

	assert.Equal(t, entity.StateChasing, e.State())
	target, ok := e.Movement().Target()
	assert.True(t, ok)
	assert.Equal(t, player, target)
	assert.InDelta(t, 0.2, e.Position().X, 1e-9)
}

func TestBehavior_DashCapturesPlayerPosition(t *testing.T) {
	events := event.NewDispatcher()
	rec := event.NewRecorder(events)
	e := newTestEnemy(testStats(), entity.Vec2{}, nil, events)

	e.Update(0.1, entity.Vec2{X: 1})
	require.Equal(t, entity.StateAttacking, e.State())
	assert.Equal(t, 1, rec.Count(event.AttackStarted))
	assert.InDelta(t, 0.8, e.Position().X, 1e-9)

	// The player moves away but the dash keeps its original target
	moved := entity.Vec2{X: 3}
	e.Update(0.1, moved)
	assert.Equal(t, entity.StateAttacking, e.State())
	target, _ := e.Movement().Target()
	assert.Equal(t, entity.Vec2{X: 1}, target)

	e.Update(0.1, moved)
	assert.Equal(t, 0, rec.Count(event.AttackEnded))

	e.Update(0.1, moved)
	assert.Equal(t, 1, rec.Count(event.AttackEnded))
	assert.True(t, e.tasks.Active(taskAttackCooldown))
	assert.Equal(t, entity.StateChasing, e.State())
}

func TestBehavior_CooldownBlocksNextAttack(t *testing.T) {
	events := event.NewDispatcher()
	rec := event.NewRecorder(events)
	e := newTestEnemy(testStats(), entity.Vec2{}, nil, events)

	for i := 0; i < 4; i++ {
		e.Update(0.1, entity.Vec2{X: 1})
	}
	require.Equal(t, 1, rec.Count(event.AttackEnded))

	e.Update(0.1, e.Position())
	assert.Equal(t, entity.StateChasing, e.State())
	assert.Equal(t, 1, rec.Count(event.AttackStarted))

	// 2s cooldown, 0.1s already spent
	for i := 0; i < 19; i++ {
		e.Update(0.1, e.Position())
	}
	assert.Equal(t, 2, rec.Count(event.AttackStarted))
}

func TestBehavior_StaggerInterruptsDash(t *testing.T) {
	events := event.NewDispatcher()
	rec := event.NewRecorder(events)
	player := entity.Vec2{X: 1}
	e := newTestEnemy(testStats(), entity.Vec2{}, nil, events)

	e.Update(0.1, player)
	require.Equal(t, entity.StateAttacking, e.State())

	require.Equal(t, DamageApplied, e.ApplyDamage(2, player))
	assert.Equal(t, entity.StateStaggered, e.State())
	assert.Equal(t, 1, rec.Count(event.AttackEnded), "interrupted dash still ends")
	assert.False(t, e.tasks.Active(taskDash))
	assert.True(t, e.tasks.Active(taskAttackCooldown))

	before := e.Position().X
	e.Update(0.1, player)
	assert.Equal(t, entity.StateStaggered, e.State())
	assert.Less(t, e.Position().X, before, "knocked away from the hit")

	e.Update(0.1, player)
	assert.Equal(t, 0, rec.Count(event.StaggerEnded))

	e.Update(0.1, player)
	assert.Equal(t, 1, rec.Count(event.StaggerEnded))
	assert.Equal(t, entity.StateChasing, e.State())
}

func TestBehavior_SecondHitRestartsStagger(t *testing.T) {
	events := event.NewDispatcher()
	rec := event.NewRecorder(events)
	e := newTestEnemy(testStats(), entity.Vec2{}, nil, events)

	e.ApplyDamage(1, entity.Vec2{X: -1})
	e.Update(0.2, farAway)
	e.ApplyDamage(1, entity.Vec2{X: -1})
	e.Update(0.2, farAway)

	assert.Equal(t, entity.StateStaggered, e.State())
	assert.Equal(t, 2, rec.Count(event.StaggerStarted))
	assert.Equal(t, 0, rec.Count(event.StaggerEnded))

	e.Update(0.1, farAway)
	assert.Equal(t, 1, rec.Count(event.StaggerEnded))
	assert.Equal(t, entity.StateRoaming, e.State())
}

func TestBehavior_DeathCancelsPendingTasks(t *testing.T) {
	events := event.NewDispatcher()
	rec := event.NewRecorder(events)
	stats := testStats()
	stats.MaxHealth = 2
	player := entity.Vec2{X: 1}
	e := newTestEnemy(stats, entity.Vec2{}, nil, events)

	e.Update(0.1, player)
	require.Equal(t, entity.StateAttacking, e.State())

	require.Equal(t, DamageLethal, e.ApplyDamage(5, player))
	assert.Equal(t, 1, e.tasks.Len())
	assert.True(t, e.tasks.Active(taskExit))
	assert.False(t, e.ReadyForRemoval())

	pos := e.Position()
	for i := 0; i < 10; i++ {
		e.Update(0.1, player)
	}

	assert.Equal(t, entity.StateDead, e.State())
	assert.Equal(t, 0, rec.Count(event.AttackEnded), "cancelled dash never resumes")
	assert.Equal(t, pos, e.Position())
	assert.True(t, e.ReadyForRemoval())
}

func TestBehavior_ExitDelay(t *testing.T) {
	stats := testStats()
	stats.MaxHealth = 1
	e := newTestEnemy(stats, entity.Vec2{}, nil, nil)
	e.ApplyDamage(1, entity.Vec2{})

	for i := 0; i < 4; i++ {
		e.Update(0.1, farAway)
		assert.False(t, e.ReadyForRemoval())
	}
	e.Update(0.1, farAway)
	assert.True(t, e.ReadyForRemoval())
}
