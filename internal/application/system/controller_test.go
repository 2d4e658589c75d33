package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/soulwave/internal/domain/entity"
	"github.com/younwookim/soulwave/internal/domain/event"
)

func newPlayerSimulation(t *testing.T, cfg DirectorConfig, catalog map[entity.EnemyKind]entity.EnemyStats) (*Simulation, *entity.Player, *event.Recorder) {
	t.Helper()
	events := event.NewDispatcher()
	rec := event.NewRecorder(events)
	arena := testArena()
	player := entity.NewPlayer(arena.PlayerSpawn, 5, 1.5, 0.35)

	sim, err := NewSimulation(SimulationParams{
		Director:      cfg,
		Catalog:       catalog,
		Arena:         arena,
		Player:        player,
		RNG:           testRNG(),
		Events:        events,
		ContactRadius: 0.8,
	})
	require.NoError(t, err)
	require.NoError(t, sim.Start())
	return sim, player, rec
}

func TestPlayerSystem_Move(t *testing.T) {
	sim, player, _ := newPlayerSimulation(t, testDirectorConfig(), testCatalog())
	ps := NewPlayerSystem(DefaultPlayerActions(), testArena())

	ps.Update(player, sim, InputState{MoveX: 1}, 0.1)
	assert.InDelta(t, 20.5, player.Pos.X, 1e-9)
	assert.InDelta(t, 15.0, player.Pos.Y, 1e-9)

	ps.Update(player, sim, InputState{MoveX: 1, MoveY: 1}, 0.1)
	assert.InDelta(t, 0.5, player.Pos.Dist(entity.Vec2{X: 20.5, Y: 15}), 1e-9, "diagonal moves at full speed, not faster")

	player.Pos = entity.Vec2{X: 39.9, Y: 15}
	ps.Update(player, sim, InputState{MoveX: 1}, 0.1)
	assert.Equal(t, 40.0, player.Pos.X)
}

func TestPlayerSystem_StrikeCooldown(t *testing.T) {
	sim, player, _ := newPlayerSimulation(t, testDirectorConfig(), toughCatalog())
	ps := NewPlayerSystem(DefaultPlayerActions(), testArena())
	target := sim.Enemies()[0]
	player.Pos = target.Position()

	report := ps.Update(player, sim, InputState{Strike: true}, 1.0/60.0)
	assert.GreaterOrEqual(t, report.Hits, 1)
	assert.Equal(t, report.Hits, sim.PendingOverlaps())
	assert.False(t, player.CanStrike())

	report = ps.Update(player, sim, InputState{Strike: true}, 0.1)
	assert.Equal(t, 0, report.Hits, "still cooling down")

	sim.Tick(1.0 / 60.0)
	assert.Equal(t, 8, target.Health().Current)

	report = ps.Update(player, sim, InputState{Strike: true}, 0.3)
	assert.GreaterOrEqual(t, report.Hits, 1)
}

func TestPlayerSystem_SkillCooldown(t *testing.T) {
	sim, player, _ := newPlayerSimulation(t, testDirectorConfig(), toughCatalog())
	ps := NewPlayerSystem(DefaultPlayerActions(), testArena())
	player.Pos = sim.Enemies()[0].Position()

	report := ps.Update(player, sim, InputState{Skill: true}, 0.1)
	assert.GreaterOrEqual(t, report.Hits, 1)
	assert.False(t, ps.SkillReady())

	ps.Update(player, sim, InputState{}, 2.8)
	assert.False(t, ps.SkillReady())

	report = ps.Update(player, sim, InputState{Skill: true}, 0.2)
	assert.GreaterOrEqual(t, report.Hits, 1)
	assert.False(t, ps.SkillReady(), "cooldown restarted")
}

func TestPlayerSystem_Collect(t *testing.T) {
	sim, player, rec := newPlayerSimulation(t, testDirectorConfig(), testCatalog())
	ps := NewPlayerSystem(DefaultPlayerActions(), testArena())

	report := ps.Update(player, sim, InputState{Collect: true}, 0.1)
	assert.False(t, report.Collected, "no soul yet")

	for _, e := range sim.Enemies()[:5] {
		sim.NotifyOverlap(e.ID(), "Sword", player.Pos)
	}
	sim.Tick(0.1)
	soul, ok := sim.Director().SoulPoint()
	require.True(t, ok)

	player.Pos = soul.Pos
	report = ps.Update(player, sim, InputState{Collect: true}, 0.1)
	assert.True(t, report.Collected)
	assert.Equal(t, 1, sim.Director().SoulTally())
	assert.Equal(t, 1, rec.Count(event.SoulPointCollected))
}
