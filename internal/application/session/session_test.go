package session

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/soulwave/internal/application/replay"
	"github.com/younwookim/soulwave/internal/application/state"
	"github.com/younwookim/soulwave/internal/application/system"
	"github.com/younwookim/soulwave/internal/domain/event"
	"github.com/younwookim/soulwave/internal/infrastructure/config"
)

const maxTestTicks = 60 * 60 * 10

func loadConfigs(t *testing.T) (*config.GameConfig, *config.StageConfig) {
	t.Helper()
	loader := config.NewLoader("../../../cmd/game/configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	stage, err := loader.LoadStage("arena")
	require.NoError(t, err)
	return cfg, stage
}

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	prev := log.Writer()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(prev) })

	cfg, stage := loadConfigs(t)
	s, err := New(cfg, stage, opts)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	return s
}

func TestNew_UsesDefaultVariant(t *testing.T) {
	s := newTestSession(t, Options{Seed: 1})

	assert.Equal(t, "staged", s.Variant())
	assert.Equal(t, "arena", s.Stage())
	assert.Equal(t, int64(1), s.Seed())
	assert.InDelta(t, 1.0/60.0, s.Dt(), 1e-12)
	require.NotNil(t, s.Exit())
	assert.Equal(t, 3, s.Exit().RequiredSouls)

	sp, ok := s.Sprite("golem")
	require.True(t, ok)
	assert.Equal(t, 1.0, sp.Radius)

	sum := s.Summary()
	assert.Equal(t, 1, sum.Wave)
	assert.Equal(t, 4, sum.MaxWaves)
	assert.Equal(t, state.PhaseWaveActive, sum.Phase)
	assert.Equal(t, "wave_active", sum.PhaseName)
	assert.Equal(t, 6, sum.Alive)
}

func TestNew_Errors(t *testing.T) {
	cfg, stage := loadConfigs(t)

	_, err := New(cfg, stage, Options{Variant: "boss-rush"})
	assert.Error(t, err)

	broken := *stage
	broken.SpawnPoints = []config.SpawnPointConfig{{X: 1, Y: 1, Kind: "elite"}}
	_, err = New(cfg, &broken, Options{})
	assert.Error(t, err)

	noBoss := *stage
	noBoss.SpawnPoints = []config.SpawnPointConfig{{X: 1, Y: 1, Kind: "regular"}}
	_, err = New(cfg, &noBoss, Options{})
	assert.ErrorIs(t, err, system.ErrInvalidConfig)
}

func TestSession_StepMovesPlayer(t *testing.T) {
	s := newTestSession(t, Options{Seed: 1})
	start := s.Player().Pos

	s.Step(system.InputState{MoveX: 1})

	assert.InDelta(t, start.X+5.0/60.0, s.Player().Pos.X, 1e-9)
	assert.Equal(t, uint64(1), s.Summary().Ticks)
}

func TestSession_AutopilotCompletesStaged(t *testing.T) {
	s := newTestSession(t, Options{Seed: 3})
	rec := event.NewRecorder(s.Events())
	pilot := s.Autopilot()

	for i := 0; i < maxTestTicks && !s.Done(); i++ {
		s.Step(pilot.Decide())
	}

	sum := s.Summary()
	require.True(t, sum.Completed, "not finished: %s", sum)
	assert.Equal(t, 4, sum.Wave)
	assert.Equal(t, 3, sum.Souls)
	assert.True(t, sum.CanExit)
	assert.Equal(t, rec.Count(event.EnemyDied), sum.Kills)
	assert.GreaterOrEqual(t, sum.Kills, 6+8+9+2-3, "every wave was fought down to the soul threshold")
	assert.Equal(t, 1, rec.Count(event.GameCompleted))
}

func TestSession_EndlessKeepsGoing(t *testing.T) {
	s := newTestSession(t, Options{Seed: 5, Variant: "endless"})
	pilot := s.Autopilot()

	for i := 0; i < 60*90; i++ {
		s.Step(pilot.Decide())
	}

	sum := s.Summary()
	assert.False(t, sum.Completed)
	assert.GreaterOrEqual(t, sum.Wave, 2)
	assert.Equal(t, 0, sum.Souls, "endless waves have no soul")
}

func TestSession_ReplayIsDeterministic(t *testing.T) {
	original := newTestSession(t, Options{Seed: 11})
	recorder := replay.NewRecorder(original.Seed(), original.Variant(), original.Stage())
	pilot := original.Autopilot()

	for i := 0; i < 60*40 && !original.Done(); i++ {
		in := pilot.Decide()
		recorder.RecordFrame(in)
		original.Step(in)
	}

	data := recorder.Data()
	replayed := newTestSession(t, Options{Seed: data.Seed, Variant: data.Variant})
	player := replay.NewReplayer(data)
	for {
		in, ok := player.GetInput()
		if !ok {
			break
		}
		replayed.Step(in)
	}

	assert.Equal(t, original.Summary(), replayed.Summary())
	assert.Equal(t, original.Player().Pos, replayed.Player().Pos)
}

func TestSession_ExitGate(t *testing.T) {
	s := newTestSession(t, Options{Seed: 1})
	rec := event.NewRecorder(s.Events())
	s.Player().Pos = s.Exit().Pos

	s.Step(system.InputState{})

	assert.False(t, s.Exited())
	assert.Equal(t, 1, rec.Count(event.ExitBlocked))
}
