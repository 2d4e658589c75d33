package system

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/soulwave/internal/domain/entity"
	"github.com/younwookim/soulwave/internal/domain/event"
	"github.com/younwookim/soulwave/internal/ecs"
)

// Overlap is a queued "enemy hitbox overlaps a tagged collider" notification
type Overlap struct {
	Target entity.EntityID
	Tag    string
	Source entity.Vec2
}

// SimulationParams holds everything a simulation is built from
type SimulationParams struct {
	Director DirectorConfig
	Catalog  map[entity.EnemyKind]entity.EnemyStats
	Arena    *entity.Arena // optional movement bounds
	Player   PlayerLocator
	RNG      *rand.Rand
	Events   *event.Dispatcher // optional

	Tags   entity.TagTable
	Damage entity.DamageTable

	// ContactRadius is how close an enemy must be to count as touching the player; 0 disables
	ContactRadius float64
}

// Simulation drives one arena: overlaps, enemies, the director and the read model
type Simulation struct {
	director *Director
	factory  *EnemyFactory
	world    *ecs.World
	player   PlayerLocator
	events   *event.Dispatcher

	tags          entity.TagTable
	damage        entity.DamageTable
	contactRadius float64

	overlaps []Overlap
	tick     uint64
	elapsed  float64
}

// NewSimulation wires the factory and director and checks the catalog covers every configured kind
func NewSimulation(p SimulationParams) (*Simulation, error) {
	if p.Player == nil {
		return nil, fmt.Errorf("%w: nil player locator", ErrInvalidConfig)
	}
	if p.RNG == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	for _, k := range p.Director.RegularKinds {
		stats, ok := p.Catalog[k]
		if !ok {
			return nil, fmt.Errorf("%w: regular kind %q not in catalog", ErrInvalidConfig, k)
		}
		if stats.MaxHealth < 1 {
			return nil, fmt.Errorf("%w: kind %q has max health %d", ErrInvalidConfig, k, stats.MaxHealth)
		}
	}
	if p.Director.BossKind != "" {
		stats, ok := p.Catalog[p.Director.BossKind]
		if !ok {
			return nil, fmt.Errorf("%w: boss kind %q not in catalog", ErrInvalidConfig, p.Director.BossKind)
		}
		if !stats.Boss {
			return nil, fmt.Errorf("%w: kind %q is not a boss", ErrInvalidConfig, p.Director.BossKind)
		}
		if stats.MaxHealth < 1 {
			return nil, fmt.Errorf("%w: kind %q has max health %d", ErrInvalidConfig, p.Director.BossKind, stats.MaxHealth)
		}
	}
	if p.Tags.Sources == nil {
		p.Tags = entity.DefaultTagTable()
	}
	if p.Damage == nil {
		p.Damage = entity.DefaultDamageTable()
	}

	world := ecs.NewWorld()
	bounds := p.Arena
	if bounds != nil && (bounds.Width <= 0 || bounds.Height <= 0) {
		bounds = nil
	}
	factory := NewEnemyFactory(p.Catalog, world, p.RNG, p.Events, bounds)
	director, err := NewDirector(p.Director, factory, p.RNG, p.Events)
	if err != nil {
		return nil, err
	}
	world.CreatePlayer(p.Player.PlayerPosition())

	return &Simulation{
		director:      director,
		factory:       factory,
		world:         world,
		player:        p.Player,
		events:        p.Events,
		tags:          p.Tags,
		damage:        p.Damage,
		contactRadius: p.ContactRadius,
	}, nil
}

// Start spawns the first wave
func (s *Simulation) Start() error {
	return s.director.StartFirstWave()
}

// NotifyOverlap queues an overlap for the next tick
func (s *Simulation) NotifyOverlap(target entity.EntityID, tag string, source entity.Vec2) {
	s.overlaps = append(s.overlaps, Overlap{Target: target, Tag: tag, Source: source})
}

// StrikeArea queues a tagged overlap for every live enemy within radius of
// center, returns how many were queued
func (s *Simulation) StrikeArea(center entity.Vec2, radius float64, tag string) int {
	n := 0
	for _, e := range s.factory.Enemies() {
		if e.IsDead() || e.Position().Dist(center) > radius {
			continue
		}
		s.NotifyOverlap(e.ID(), tag, center)
		n++
	}
	return n
}

// Tick advances the simulation by dt seconds
func (s *Simulation) Tick(dt float64) {
	s.tick++
	s.elapsed += dt
	s.events.SetTick(s.tick)

	s.drainOverlaps()

	player := s.player.PlayerPosition()
	s.world.SetPlayerPosition(player)
	enemies := s.factory.Enemies()
	for _, e := range enemies {
		e.Update(dt, player)
	}

	s.director.Update(dt)

	for _, e := range enemies {
		if e.ReadyForRemoval() {
			s.factory.Remove(e.ID())
			s.events.Dispatch(event.Event{Type: event.EnemyRemoved, Entity: e.ID(), Pos: e.Position()})
			continue
		}
		s.factory.Sync(e)
		if s.contactRadius > 0 && !e.IsDead() && e.Position().Dist(player) <= s.contactRadius {
			s.NotifyOverlap(e.ID(), s.tags.PlayerTag, player)
		}
	}
}

func (s *Simulation) drainOverlaps() {
	pending := s.overlaps
	s.overlaps = nil
	for _, o := range pending {
		e, ok := s.factory.Enemy(o.Target)
		if !ok {
			continue
		}
		kind, src := s.tags.Classify(o.Tag)
		switch kind {
		case entity.OverlapDamage:
			e.ApplyDamage(s.damage.Amount(src), o.Source)
		case entity.OverlapPlayerContact:
			e.Contact()
		}
	}
}

// TryCollectSoul attempts a soul collection at the player's position
func (s *Simulation) TryCollectSoul() bool {
	return s.director.TryCollectSoul(s.player.PlayerPosition())
}

// Director returns the wave director
func (s *Simulation) Director() *Director { return s.director }

// Factory returns the enemy factory
func (s *Simulation) Factory() *EnemyFactory { return s.factory }

// World returns the read model
func (s *Simulation) World() *ecs.World { return s.world }

// Enemies returns every enemy still in the world in ascending ID order
func (s *Simulation) Enemies() []*Enemy { return s.factory.Enemies() }

// TickCount returns the number of ticks run
func (s *Simulation) TickCount() uint64 { return s.tick }

// Elapsed returns the simulated seconds
func (s *Simulation) Elapsed() float64 { return s.elapsed }

// PendingOverlaps returns the number of queued overlaps
func (s *Simulation) PendingOverlaps() int { return len(s.overlaps) }
