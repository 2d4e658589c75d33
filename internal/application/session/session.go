// Package session assembles one arena run from loaded configuration and
// steps it one tick at a time. The ebiten scene, the headless runner and the
// replay player all drive the simulation through a Session.
package session

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/soulwave/internal/application/state"
	"github.com/younwookim/soulwave/internal/application/system"
	"github.com/younwookim/soulwave/internal/domain/entity"
	"github.com/younwookim/soulwave/internal/domain/event"
	"github.com/younwookim/soulwave/internal/infrastructure/config"
)

// Options selects the run
type Options struct {
	Seed    int64
	Variant string // waves.yaml variant, empty for the file default
}

// Session is one arena run: simulation, player, exit gate and event bus
type Session struct {
	sim     *system.Simulation
	player  *entity.Player
	players *system.PlayerSystem
	exit    *system.ExitGate
	events  *event.Dispatcher
	arena   *entity.Arena
	sprites map[entity.EnemyKind]config.SpriteConfig

	seed    int64
	variant string
	stage   string
	dt      float64

	kills  int
	exited bool
}

// New builds a session from loaded configuration
func New(cfg *config.GameConfig, stage *config.StageConfig, opts Options) (*Session, error) {
	arena, err := system.LoadArena(stage)
	if err != nil {
		return nil, err
	}

	variantName := opts.Variant
	if variantName == "" {
		variantName = cfg.Waves.Default
	}
	variant, err := cfg.Waves.Variant(variantName)
	if err != nil {
		return nil, err
	}
	director, err := system.LoadDirectorConfig(variant, arena)
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", variantName, err)
	}

	tags, damage, err := system.LoadCombatTables(cfg.Simulation.Combat)
	if err != nil {
		return nil, fmt.Errorf("combat config: %w", err)
	}

	player, actions := system.LoadPlayer(cfg.Simulation.Player, arena)
	events := event.NewDispatcher()

	sim, err := system.NewSimulation(system.SimulationParams{
		Director:      director,
		Catalog:       system.LoadCatalog(cfg.Entities),
		Arena:         arena,
		Player:        player,
		RNG:           rand.New(rand.NewSource(opts.Seed)),
		Events:        events,
		Tags:          tags,
		Damage:        damage,
		ContactRadius: cfg.Simulation.Simulation.ContactRadius,
	})
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", stage.ID, err)
	}

	sprites := make(map[entity.EnemyKind]config.SpriteConfig, len(cfg.Entities.Enemies))
	for name, e := range cfg.Entities.Enemies {
		sprites[entity.EnemyKind(name)] = e.Sprite
	}

	s := &Session{
		sim:     sim,
		player:  player,
		players: system.NewPlayerSystem(actions, arena),
		exit:    system.LoadExitGate(stage, sim.Director(), events),
		events:  events,
		arena:   arena,
		sprites: sprites,
		seed:    opts.Seed,
		variant: variantName,
		stage:   stage.ID,
		dt:      cfg.Simulation.Simulation.Dt(),
	}
	events.Subscribe(event.EnemyDied, event.ListenerFunc(func(event.Event) { s.kills++ }))
	return s, nil
}

// Start spawns the first wave
func (s *Session) Start() error {
	return s.sim.Start()
}

// Step applies one tick of player input, then advances the simulation
func (s *Session) Step(in system.InputState) system.ActionReport {
	report := s.players.Update(s.player, s.sim, in, s.dt)
	s.sim.Tick(s.dt)

	if s.exit != nil {
		s.exit.Update(s.dt)
		if s.exit.TryExit(s.player.Pos) {
			s.exited = true
		}
	}
	return report
}

// Done returns true once every wave is finished
func (s *Session) Done() bool {
	return s.sim.Director().Completed()
}

// Exited returns true once the player walked through an open exit gate
func (s *Session) Exited() bool { return s.exited }

// Simulation returns the simulation
func (s *Session) Simulation() *system.Simulation { return s.sim }

// Player returns the player
func (s *Session) Player() *entity.Player { return s.player }

// PlayerSystem returns the player's action system
func (s *Session) PlayerSystem() *system.PlayerSystem { return s.players }

// Exit returns the exit gate, nil if the stage has none
func (s *Session) Exit() *system.ExitGate { return s.exit }

// Events returns the session's event bus
func (s *Session) Events() *event.Dispatcher { return s.events }

// Arena returns the arena bounds and spawn points
func (s *Session) Arena() *entity.Arena { return s.arena }

// Sprite returns the draw settings for an enemy kind
func (s *Session) Sprite(kind entity.EnemyKind) (config.SpriteConfig, bool) {
	sp, ok := s.sprites[kind]
	return sp, ok
}

// Dt returns the fixed tick length in seconds
func (s *Session) Dt() float64 { return s.dt }

// Seed returns the seed the session was built with
func (s *Session) Seed() int64 { return s.seed }

// Variant returns the wave variant name
func (s *Session) Variant() string { return s.variant }

// Stage returns the stage ID
func (s *Session) Stage() string { return s.stage }

// Autopilot returns an autopilot driving this session's player
func (s *Session) Autopilot() *system.Autopilot {
	return system.NewAutopilot(s.sim, s.player, s.players.Actions())
}

// Summary describes the run so far
type Summary struct {
	Seed        int64       `json:"seed"`
	Variant     string      `json:"variant"`
	Stage       string      `json:"stage"`
	Ticks       uint64      `json:"ticks"`
	Elapsed     float64     `json:"elapsed"`
	Phase       state.Phase `json:"-"`
	PhaseName   string      `json:"phase"`
	Wave        int         `json:"wave"`
	MaxWaves    int         `json:"maxWaves"`
	Souls       int         `json:"souls"`
	Kills       int         `json:"kills"`
	Alive       int         `json:"alive"`
	SpawnErrors int         `json:"spawnErrors"`
	Completed   bool        `json:"completed"`
	CanExit     bool        `json:"canExit"`
	Exited      bool        `json:"exited"`
}

// Summary returns the current run summary
func (s *Session) Summary() Summary {
	d := s.sim.Director()
	sum := Summary{
		Seed:        s.seed,
		Variant:     s.variant,
		Stage:       s.stage,
		Ticks:       s.sim.TickCount(),
		Elapsed:     s.sim.Elapsed(),
		Phase:       d.Phase(),
		PhaseName:   d.Phase().String(),
		Wave:        d.CurrentWave(),
		MaxWaves:    d.Config().MaxWaves,
		Souls:       d.SoulTally(),
		Kills:       s.kills,
		Alive:       s.sim.World().CountLiveEnemies(),
		SpawnErrors: d.SpawnErrors(),
		Completed:   d.Completed(),
		Exited:      s.exited,
	}
	if s.exit != nil {
		sum.CanExit = s.exit.CanExit()
	}
	return sum
}

// String formats the summary for logs
func (sum Summary) String() string {
	return fmt.Sprintf("seed=%d variant=%s stage=%s ticks=%d time=%.1fs phase=%s wave=%d/%d souls=%d kills=%d alive=%d completed=%t",
		sum.Seed, sum.Variant, sum.Stage, sum.Ticks, sum.Elapsed, sum.PhaseName,
		sum.Wave, sum.MaxWaves, sum.Souls, sum.Kills, sum.Alive, sum.Completed)
}
