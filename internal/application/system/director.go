package system

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"

	"github.com/looplab/fsm"

	"github.com/younwookim/soulwave/internal/application/state"
	"github.com/younwookim/soulwave/internal/domain/entity"
	"github.com/younwookim/soulwave/internal/domain/event"
)

var (
	// ErrInvalidConfig wraps every director configuration error
	ErrInvalidConfig = errors.New("invalid director config")
	// ErrAlreadyStarted is returned by a second StartFirstWave call
	ErrAlreadyStarted = errors.New("director already started")
)

// Mode selects how waves are composed and how a wave ends
type Mode int

const (
	// ModeStaged runs a fixed wave table gated by soul collection
	ModeStaged Mode = iota
	// ModeEndless spawns a random batch every time the arena is cleared
	ModeEndless
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeStaged:
		return "staged"
	case ModeEndless:
		return "endless"
	default:
		return "unknown"
	}
}

// ParseMode converts a config name into a Mode
func ParseMode(name string) (Mode, error) {
	switch name {
	case "staged", "":
		return ModeStaged, nil
	case "endless":
		return ModeEndless, nil
	default:
		return 0, fmt.Errorf("unknown director mode %q", name)
	}
}

// DirectorConfig parameterizes the single wave state machine for every variant
type DirectorConfig struct {
	Mode     Mode
	MaxWaves int // 0 means unbounded (endless only)

	// Staged composition
	FirstWaveCount int
	RegularCount   int

	// Endless composition
	InitialCount int
	ExtraMin     int
	ExtraMax     int

	SoulThreshold int
	SoulRadius    float64
	WaveDelay     float64 // seconds between a wave ending and the next starting

	RegularKinds  []entity.EnemyKind
	BossKind      entity.EnemyKind
	RegularPoints []entity.Vec2
	BossPoints    []entity.Vec2

	BossGated      bool
	BossUnlockWave int
}

// DefaultDirectorConfig returns the staged four-wave setup without spawn data
func DefaultDirectorConfig() DirectorConfig {
	return DirectorConfig{
		Mode:           ModeStaged,
		MaxWaves:       4,
		FirstWaveCount: 6,
		RegularCount:   8,
		InitialCount:   6,
		ExtraMin:       7,
		ExtraMax:       12,
		SoulThreshold:  1,
		SoulRadius:     2,
		WaveDelay:      4,
		BossUnlockWave: 1,
	}
}

// StagedComposition returns how many regular enemies and bosses a staged wave spawns
func StagedComposition(cfg DirectorConfig, wave int) (regular, bosses int) {
	if wave < 1 || wave > cfg.MaxWaves {
		return 0, 0
	}
	if wave == cfg.MaxWaves {
		return 0, len(cfg.BossPoints)
	}
	regular = cfg.RegularCount
	if wave == 1 {
		regular = cfg.FirstWaveCount
	}
	if wave == cfg.MaxWaves-1 {
		bosses = 1
	}
	return regular, bosses
}

func (c DirectorConfig) requiresBoss() bool {
	return c.Mode == ModeStaged || c.BossKind != ""
}

// Validate reports the first configuration error, wrapped in ErrInvalidConfig
func (c DirectorConfig) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if len(c.RegularPoints) == 0 {
		return fail("no regular spawn points")
	}
	if len(c.RegularKinds) == 0 {
		return fail("no regular enemy kinds")
	}
	for i, k := range c.RegularKinds {
		if k == "" {
			return fail("regular kind %d is empty", i)
		}
	}
	if c.requiresBoss() {
		if c.BossKind == "" {
			return fail("boss kind is required in %s mode", c.Mode)
		}
		if len(c.BossPoints) == 0 {
			return fail("no boss spawn points")
		}
	}
	if c.SoulRadius < 0 {
		return fail("soul radius %.2f is negative", c.SoulRadius)
	}
	if c.WaveDelay < 0 {
		return fail("wave delay %.2f is negative", c.WaveDelay)
	}
	if c.BossGated && c.BossUnlockWave < 1 {
		return fail("boss unlock wave %d must be at least 1", c.BossUnlockWave)
	}

	switch c.Mode {
	case ModeStaged:
		if c.MaxWaves < 1 {
			return fail("staged mode needs at least one wave, got %d", c.MaxWaves)
		}
		if c.FirstWaveCount < 1 || c.RegularCount < 1 {
			return fail("wave counts must be positive (first=%d, regular=%d)", c.FirstWaveCount, c.RegularCount)
		}
		if c.SoulThreshold < 0 {
			return fail("soul threshold %d is negative", c.SoulThreshold)
		}
		// every wave before the last one must start above the threshold
		for wave := 1; wave < c.MaxWaves; wave++ {
			regular, bosses := StagedComposition(c, wave)
			if c.SoulThreshold >= regular+bosses {
				return fail("soul threshold %d must be below wave %d size %d", c.SoulThreshold, wave, regular+bosses)
			}
		}
	case ModeEndless:
		if c.MaxWaves < 0 {
			return fail("max waves %d is negative", c.MaxWaves)
		}
		if c.InitialCount < 1 {
			return fail("initial count must be positive, got %d", c.InitialCount)
		}
		if c.ExtraMin < 0 || c.ExtraMax < c.ExtraMin {
			return fail("extra range [%d, %d] is invalid", c.ExtraMin, c.ExtraMax)
		}
	default:
		return fail("unknown mode %d", int(c.Mode))
	}
	return nil
}

// Director state machine events
const (
	evStart     = "start"
	evThreshold = "threshold"
	evCollect   = "collect"
	evClear     = "clear"
	evAdvance   = "advance"
	evFinish    = "finish"
)

const taskNextWave = "next-wave"

// Director schedules waves, owns the live census and runs the soul reward loop.
// It is the only holder of cross-enemy state and the only mutator of the census.
type Director struct {
	cfg     DirectorConfig
	factory SpawnFactory
	rng     *rand.Rand
	events  *event.Dispatcher
	machine *fsm.FSM
	tasks   TaskList

	currentWave int
	live        map[entity.EntityID]EnemyHandle
	gated       map[entity.EntityID]EnemyHandle
	soul        *entity.SoulPoint
	tally       int

	started     bool
	completed   bool
	bossSpawned bool
	spawnErrors int
}

// NewDirector validates cfg and creates an idle director
func NewDirector(cfg DirectorConfig, factory SpawnFactory, rng *rand.Rand, events *event.Dispatcher) (*Director, error) {
	if factory == nil {
		return nil, fmt.Errorf("%w: nil spawn factory", ErrInvalidConfig)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	active := []string{
		state.PhaseIdle.String(),
		state.PhaseWaveActive.String(),
		state.PhaseSoulPending.String(),
		state.PhaseWaveDelay.String(),
	}
	d := &Director{
		cfg:     cfg,
		factory: factory,
		rng:     rng,
		events:  events,
		live:    make(map[entity.EntityID]EnemyHandle),
		gated:   make(map[entity.EntityID]EnemyHandle),
	}
	d.machine = fsm.NewFSM(
		state.PhaseIdle.String(),
		fsm.Events{
			{Name: evStart, Src: []string{state.PhaseIdle.String()}, Dst: state.PhaseWaveActive.String()},
			{Name: evThreshold, Src: []string{state.PhaseWaveActive.String()}, Dst: state.PhaseSoulPending.String()},
			{Name: evCollect, Src: []string{state.PhaseSoulPending.String()}, Dst: state.PhaseWaveDelay.String()},
			{Name: evClear, Src: []string{state.PhaseWaveActive.String()}, Dst: state.PhaseWaveDelay.String()},
			{Name: evAdvance, Src: active, Dst: state.PhaseWaveActive.String()},
			{Name: evFinish, Src: active, Dst: state.PhaseComplete.String()},
		},
		fsm.Callbacks{},
	)
	return d, nil
}

// StartFirstWave resets the wave count and tally and starts wave 1
func (d *Director) StartFirstWave() error {
	if d.started {
		return ErrAlreadyStarted
	}
	d.started = true
	d.currentWave = 0
	d.tally = 0
	d.nextWave(evStart)
	return nil
}

// AdvanceWave starts the next wave immediately, or completes the game after
// the last one. It is a no-op before the first wave and after completion.
func (d *Director) AdvanceWave() {
	if !d.started || d.completed {
		return
	}
	d.nextWave(evAdvance)
}

// OnEnemyKilled removes h from the census. Unknown or repeated handles are ignored.
func (d *Director) OnEnemyKilled(h EnemyHandle) {
	if h == nil {
		return
	}
	id := h.ID()
	delete(d.gated, id)
	if _, ok := d.live[id]; !ok {
		return
	}
	delete(d.live, id)
	d.evaluateCensus()
}

// TryCollectSoul collects the active soul point if player stands within its
// radius. On success the tally grows by one and the next wave is scheduled.
func (d *Director) TryCollectSoul(player entity.Vec2) bool {
	if d.completed || !d.soul.CanCollect(player) {
		return false
	}

	pos := d.soul.Pos
	d.soul.Deactivate()
	d.soul = nil
	d.tally++

	d.transition(evCollect)
	d.events.Dispatch(event.Event{
		Type:  event.SoulPointCollected,
		Wave:  d.currentWave,
		Pos:   pos,
		Tally: d.tally,
	})
	d.scheduleNextWave()
	return true
}

// Update advances the director's own timers
func (d *Director) Update(dt float64) {
	d.tasks.Update(dt)
}

// Phase returns the current director phase
func (d *Director) Phase() state.Phase {
	p, _ := state.ParsePhase(d.machine.Current())
	return p
}

// CurrentWave returns the 1-based wave number, 0 before the first wave
func (d *Director) CurrentWave() int { return d.currentWave }

// SoulTally returns the number of souls collected. It never decreases.
func (d *Director) SoulTally() int { return d.tally }

// LiveCount returns the size of the current wave's census
func (d *Director) LiveCount() int { return len(d.live) }

// Tracks returns true if h is in the current census
func (d *Director) Tracks(h EnemyHandle) bool {
	_, ok := d.live[h.ID()]
	return ok
}

// LiveIDs returns the census in ascending ID order
func (d *Director) LiveIDs() []entity.EntityID {
	ids := make([]entity.EntityID, 0, len(d.live))
	for id := range d.live {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SoulPoint returns a copy of the active soul point
func (d *Director) SoulPoint() (entity.SoulPoint, bool) {
	if d.soul == nil {
		return entity.SoulPoint{}, false
	}
	return *d.soul, true
}

// WaveInProgress returns true while a wave is being fought
func (d *Director) WaveInProgress() bool {
	p := d.Phase()
	return p == state.PhaseWaveActive || p == state.PhaseSoulPending
}

// Completed returns true once the game is complete
func (d *Director) Completed() bool { return d.completed }

// NextWaveIn returns the seconds until the pending next wave, false if none is pending
func (d *Director) NextWaveIn() (float64, bool) {
	t := d.tasks.Get(taskNextWave)
	if t == nil {
		return 0, false
	}
	return t.Remaining(), true
}

// SpawnErrors returns how many spawn requests the factory refused
func (d *Director) SpawnErrors() int { return d.spawnErrors }

// Config returns the director configuration
func (d *Director) Config() DirectorConfig { return d.cfg }

func (d *Director) bounded() bool { return d.cfg.MaxWaves > 0 }

func (d *Director) finalWave() bool {
	return d.bounded() && d.currentWave == d.cfg.MaxWaves
}

func (d *Director) nextWave(ev string) {
	d.tasks.Cancel(taskNextWave)
	d.clearSoul()

	if d.bounded() && d.currentWave >= d.cfg.MaxWaves {
		d.complete()
		return
	}

	d.currentWave++
	// Leftovers from the previous wave stay in the world but are no longer counted
	d.live = make(map[entity.EntityID]EnemyHandle)
	d.transition(ev)
	d.unlockBosses()
	d.spawnWave()

	d.events.Dispatch(event.Event{
		Type:    event.WaveStarted,
		Wave:    d.currentWave,
		Current: len(d.live),
		Max:     d.cfg.MaxWaves,
	})
	d.evaluateCensus()
}

func (d *Director) spawnWave() {
	var regular, bosses int
	switch d.cfg.Mode {
	case ModeStaged:
		regular, bosses = StagedComposition(d.cfg, d.currentWave)
	case ModeEndless:
		regular = d.cfg.InitialCount
		if d.currentWave > 1 {
			regular = d.cfg.ExtraMin + d.rng.Intn(d.cfg.ExtraMax-d.cfg.ExtraMin+1)
			if !d.bossSpawned && d.cfg.BossKind != "" {
				bosses = 1
			}
		}
	}

	for i := 0; i < regular; i++ {
		kind := d.cfg.RegularKinds[d.rng.Intn(len(d.cfg.RegularKinds))]
		d.spawn(kind, d.randomPoint(d.cfg.RegularPoints), false)
	}

	if bosses == 0 {
		return
	}
	d.bossSpawned = true
	if d.finalWave() && d.cfg.Mode == ModeStaged {
		for _, p := range d.cfg.BossPoints {
			d.spawn(d.cfg.BossKind, p, true)
		}
		return
	}
	for i := 0; i < bosses; i++ {
		d.spawn(d.cfg.BossKind, d.randomPoint(d.cfg.BossPoints), true)
	}
}

func (d *Director) spawn(kind entity.EnemyKind, pos entity.Vec2, boss bool) {
	h, err := d.factory.Spawn(kind, pos, d)
	if err != nil {
		d.spawnErrors++
		log.Printf("[Director] wave %d: spawn %s at (%.1f, %.1f) failed: %v", d.currentWave, kind, pos.X, pos.Y, err)
		return
	}
	if boss {
		gated := d.cfg.BossGated && d.currentWave < d.cfg.BossUnlockWave
		h.SetDamageGated(gated)
		if gated {
			d.gated[h.ID()] = h
		}
		// The endless boss roams across waves and never holds a wave open
		if d.cfg.Mode == ModeEndless {
			return
		}
	}
	d.live[h.ID()] = h
}

func (d *Director) unlockBosses() {
	if !d.cfg.BossGated || d.currentWave < d.cfg.BossUnlockWave || len(d.gated) == 0 {
		return
	}
	ids := make([]entity.EntityID, 0, len(d.gated))
	for id := range d.gated {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		h := d.gated[id]
		delete(d.gated, id)
		if h.IsDead() {
			continue
		}
		h.SetDamageGated(false)
		d.events.Dispatch(event.Event{
			Type:   event.BossUnlocked,
			Entity: id,
			Wave:   d.currentWave,
		})
	}
}

// evaluateCensus detects the end of a wave after the census shrank or a wave spawned
func (d *Director) evaluateCensus() {
	if d.Phase() != state.PhaseWaveActive {
		return
	}
	n := len(d.live)

	if d.finalWave() {
		if n == 0 {
			d.complete()
		}
		return
	}

	switch d.cfg.Mode {
	case ModeStaged:
		if n <= d.cfg.SoulThreshold && d.soul == nil {
			d.createSoul()
		}
	case ModeEndless:
		if n == 0 {
			d.transition(evClear)
			d.scheduleNextWave()
		}
	}
}

func (d *Director) createSoul() {
	d.soul = entity.NewSoulPoint(d.randomPoint(d.cfg.RegularPoints), d.cfg.SoulRadius)
	d.transition(evThreshold)
	d.events.Dispatch(event.Event{
		Type:    event.SoulPointCreated,
		Wave:    d.currentWave,
		Pos:     d.soul.Pos,
		Current: len(d.live),
	})
}

func (d *Director) clearSoul() {
	if d.soul != nil {
		d.soul.Deactivate()
		d.soul = nil
	}
}

func (d *Director) scheduleNextWave() {
	d.tasks.Schedule(taskNextWave, d.cfg.WaveDelay, func() {
		d.nextWave(evAdvance)
	})
}

func (d *Director) complete() {
	if d.completed {
		return
	}
	d.completed = true
	d.tasks.Clear()
	d.clearSoul()
	d.transition(evFinish)

	log.Printf("[Director] all waves completed (wave %d, souls %d)", d.currentWave, d.tally)
	d.events.Dispatch(event.Event{
		Type:  event.GameCompleted,
		Wave:  d.currentWave,
		Tally: d.tally,
	})
}

func (d *Director) randomPoint(points []entity.Vec2) entity.Vec2 {
	return points[d.rng.Intn(len(points))]
}

// transition fires a state machine event. Self-transitions are expected and ignored.
func (d *Director) transition(name string) {
	err := d.machine.Event(context.Background(), name)
	if err == nil {
		return
	}
	var same fsm.NoTransitionError
	if errors.As(err, &same) {
		return
	}
	log.Printf("[Director] %s from %s: %v", name, d.machine.Current(), err)
}
