package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/soulwave/internal/domain/entity"
	"github.com/younwookim/soulwave/internal/domain/event"
)

func TestAutopilot_HeadsForSoul(t *testing.T) {
	sim, player, _ := newPlayerSimulation(t, testDirectorConfig(), testCatalog())
	for _, e := range sim.Enemies()[:5] {
		sim.NotifyOverlap(e.ID(), "Sword", player.Pos)
	}
	sim.Tick(0.1)
	soul, ok := sim.Director().SoulPoint()
	require.True(t, ok)

	pilot := NewAutopilot(sim, player, DefaultPlayerActions())

	player.Pos = soul.Pos.Add(entity.Vec2{X: 10})
	in := pilot.Decide()
	assert.False(t, in.Collect)
	assert.InDelta(t, -1.0, in.MoveX, 1e-9)
	assert.InDelta(t, 0.0, in.MoveY, 1e-9)

	player.Pos = soul.Pos.Add(entity.Vec2{Y: 1})
	in = pilot.Decide()
	assert.Equal(t, InputState{Collect: true}, in)
}

func TestAutopilot_StrikesInReach(t *testing.T) {
	sim, player, _ := newPlayerSimulation(t, testDirectorConfig(), testCatalog())
	pilot := NewAutopilot(sim, player, DefaultPlayerActions())

	target := sim.Enemies()[0]
	player.Pos = target.Position().Add(entity.Vec2{X: 1})

	in := pilot.Decide()
	assert.True(t, in.Strike)
	assert.True(t, in.Skill)
	assert.Zero(t, in.MoveX)
	assert.Zero(t, in.MoveY)

	player.Strike()
	in = pilot.Decide()
	assert.False(t, in.Strike, "waits for the sword cooldown")
}

func TestAutopilot_SkipsGatedBosses(t *testing.T) {
	cfg := testDirectorConfig()
	cfg.MaxWaves = 2
	cfg.BossGated = true
	cfg.BossUnlockWave = 2
	sim, player, _ := newPlayerSimulation(t, cfg, testCatalog())
	pilot := NewAutopilot(sim, player, DefaultPlayerActions())

	var boss *Enemy
	for _, e := range sim.Enemies() {
		if e.IsBoss() {
			boss = e
		}
	}
	require.NotNil(t, boss)
	player.Pos = boss.Position()

	in := pilot.Decide()
	assert.False(t, in.Strike)
	assert.False(t, in.Idle(), "walks to an enemy it can damage")
}

func TestAutopilot_IdleWithoutTargets(t *testing.T) {
	quietLogs(t)
	cfg := testDirectorConfig()
	cfg.RegularKinds = []entity.EnemyKind{"bat"}
	catalog := testCatalog()
	sim, player, _ := newPlayerSimulation(t, cfg, catalog)
	for _, e := range sim.Enemies() {
		sim.NotifyOverlap(e.ID(), "Hammer", player.Pos)
	}
	sim.Tick(0.1)
	soul, _ := sim.Director().SoulPoint()
	player.Pos = soul.Pos
	sim.TryCollectSoul()

	pilot := NewAutopilot(sim, player, DefaultPlayerActions())
	assert.True(t, pilot.Decide().Idle())
}

func TestAutopilot_CompletesStagedRun(t *testing.T) {
	quietLogs(t)
	sim, player, rec := newPlayerSimulation(t, testDirectorConfig(), testCatalog())
	ps := NewPlayerSystem(DefaultPlayerActions(), testArena())
	pilot := NewAutopilot(sim, player, DefaultPlayerActions())
	gate := NewExitGate(entity.Vec2{X: 38, Y: 15}, 1.5, 3, 3, sim.Director(), nil)

	const dt = 1.0 / 60.0
	const limit = 60 * 60 * 10
	for i := 0; i < limit && !sim.Director().Completed(); i++ {
		ps.Update(player, sim, pilot.Decide(), dt)
		sim.Tick(dt)
	}

	require.True(t, sim.Director().Completed(), "run did not finish after %d ticks", sim.TickCount())
	assert.Equal(t, 4, sim.Director().CurrentWave())
	assert.Equal(t, 3, sim.Director().SoulTally())
	assert.Equal(t, 1, rec.Count(event.GameCompleted))
	assert.Equal(t, 3, rec.Count(event.SoulPointCollected))
	assert.True(t, gate.CanExit())

	// Tally is non-decreasing across the whole event log
	last := 0
	for _, e := range rec.Of(event.SoulPointCollected) {
		assert.Equal(t, last+1, e.Tally)
		last = e.Tally
	}
}
