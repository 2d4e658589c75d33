package system

import (
	"io"
	"log"
	"math/rand"
	"testing"

	"github.com/younwookim/soulwave/internal/domain/entity"
	"github.com/younwookim/soulwave/internal/domain/event"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// quietLogs silences the standard logger for the rest of the test
func quietLogs(t *testing.T) {
	t.Helper()
	prev := log.Writer()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(prev) })
}

func testStats() entity.EnemyStats {
	return entity.EnemyStats{
		MaxHealth:       10,
		MoveSpeed:       2,
		DashSpeed:       8,
		DashDuration:    0.25,
		AttackRadius:    1.5,
		AttackCooldown:  2,
		DetectionRadius: 10,
		RoamingRadius:   5,
		RoamInterval:    2,
		StaggerDuration: 0.3,
		KnockbackSpeed:  6,
		WarningCooldown: 1.5,
		ExitDelay:       0.5,
	}
}

func testBossStats() entity.EnemyStats {
	s := testStats()
	s.MaxHealth = 100
	s.Boss = true
	s.KnockbackSpeed = 2
	s.ExitDelay = 1
	return s
}

func testCatalog() map[entity.EnemyKind]entity.EnemyStats {
	slime := testStats()
	slime.MaxHealth = 2
	bat := testStats()
	bat.MaxHealth = 2
	bat.MoveSpeed = 3
	return map[entity.EnemyKind]entity.EnemyStats{
		"slime": slime,
		"bat":   bat,
		"golem": testBossStats(),
	}
}

func testArena() *entity.Arena {
	return &entity.Arena{
		Width:       40,
		Height:      30,
		PlayerSpawn: entity.Vec2{X: 20, Y: 15},
		SpawnPoints: []entity.SpawnPoint{
			{Pos: entity.Vec2{X: 4, Y: 4}, Kind: entity.SpawnRegular},
			{Pos: entity.Vec2{X: 36, Y: 4}, Kind: entity.SpawnRegular},
			{Pos: entity.Vec2{X: 4, Y: 26}, Kind: entity.SpawnRegular},
			{Pos: entity.Vec2{X: 36, Y: 26}, Kind: entity.SpawnRegular},
			{Pos: entity.Vec2{X: 12, Y: 15}, Kind: entity.SpawnBoss},
			{Pos: entity.Vec2{X: 28, Y: 15}, Kind: entity.SpawnBoss},
		},
	}
}

func testDirectorConfig() DirectorConfig {
	arena := testArena()
	cfg := DefaultDirectorConfig()
	cfg.RegularKinds = []entity.EnemyKind{"slime", "bat"}
	cfg.BossKind = "golem"
	cfg.RegularPoints = arena.Points(entity.SpawnRegular)
	cfg.BossPoints = arena.Points(entity.SpawnBoss)
	return cfg
}

func testEndlessConfig() DirectorConfig {
	cfg := testDirectorConfig()
	cfg.Mode = ModeEndless
	cfg.MaxWaves = 0
	cfg.SoulThreshold = 0
	return cfg
}

// fakeHandle is an EnemyHandle the test kills by hand
type fakeHandle struct {
	id    entity.EntityID
	kind  entity.EnemyKind
	pos   entity.Vec2
	dead  bool
	gated bool
}

func (h *fakeHandle) ID() entity.EntityID       { return h.id }
func (h *fakeHandle) IsDead() bool              { return h.dead }
func (h *fakeHandle) SetDamageGated(gated bool) { h.gated = gated }

// fakeFactory records every spawn request
type fakeFactory struct {
	nextID  entity.EntityID
	spawned []*fakeHandle
	fail    map[entity.EnemyKind]bool
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{fail: make(map[entity.EnemyKind]bool)}
}

func (f *fakeFactory) Spawn(kind entity.EnemyKind, pos entity.Vec2, _ KillListener) (EnemyHandle, error) {
	if f.fail[kind] {
		return nil, ErrUnknownKind
	}
	f.nextID++
	h := &fakeHandle{id: f.nextID, kind: kind, pos: pos}
	f.spawned = append(f.spawned, h)
	return h, nil
}

// since returns the handles spawned after the first n
func (f *fakeFactory) since(n int) []*fakeHandle {
	return f.spawned[n:]
}

func countKind(hs []*fakeHandle, kind entity.EnemyKind) int {
	n := 0
	for _, h := range hs {
		if h.kind == kind {
			n++
		}
	}
	return n
}

// kill marks h dead and reports it to the director
func kill(d *Director, h *fakeHandle) {
	h.dead = true
	d.OnEnemyKilled(h)
}

// killTracked kills n handles that are in the director's census
func killTracked(d *Director, f *fakeFactory, n int) {
	for _, h := range f.spawned {
		if n == 0 {
			return
		}
		if !h.dead && d.Tracks(h) {
			kill(d, h)
			n--
		}
	}
}

func newTestDirector(t *testing.T, cfg DirectorConfig) (*Director, *fakeFactory, *event.Recorder) {
	t.Helper()
	events := event.NewDispatcher()
	rec := event.NewRecorder(events)
	f := newFakeFactory()
	d, err := NewDirector(cfg, f, testRNG(), events)
	if err != nil {
		t.Fatalf("NewDirector: %v", err)
	}
	return d, f, rec
}

// staticPlayer is a PlayerLocator the test moves by hand
type staticPlayer struct {
	pos entity.Vec2
}

func (p *staticPlayer) PlayerPosition() entity.Vec2 { return p.pos }

// killSpy counts kill notifications
type killSpy struct {
	calls []EnemyHandle
}

func (s *killSpy) OnEnemyKilled(h EnemyHandle) {
	s.calls = append(s.calls, h)
}

func newTestEnemy(stats entity.EnemyStats, pos entity.Vec2, owner KillListener, events *event.Dispatcher) *Enemy {
	return NewEnemy(EnemyParams{
		ID:     1,
		Kind:   "slime",
		Stats:  stats,
		Pos:    pos,
		Owner:  owner,
		Events: events,
		RNG:    testRNG(),
	})
}
