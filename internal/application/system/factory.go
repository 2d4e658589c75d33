package system

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/younwookim/soulwave/internal/domain/entity"
	"github.com/younwookim/soulwave/internal/domain/event"
	"github.com/younwookim/soulwave/internal/ecs"
)

// ErrUnknownKind is returned when spawning a kind missing from the catalog
var ErrUnknownKind = errors.New("unknown enemy kind")

// EnemyFactory builds enemies from a stats catalog and keeps the registry of
// every enemy still in the world, dead ones included until they are removed.
type EnemyFactory struct {
	catalog map[entity.EnemyKind]entity.EnemyStats
	world   *ecs.World
	rng     *rand.Rand
	events  *event.Dispatcher
	bounds  *entity.Arena

	enemies map[entity.EntityID]*Enemy
}

// NewEnemyFactory creates a factory. IDs come from world; bounds may be nil.
func NewEnemyFactory(catalog map[entity.EnemyKind]entity.EnemyStats, world *ecs.World, rng *rand.Rand, events *event.Dispatcher, bounds *entity.Arena) *EnemyFactory {
	return &EnemyFactory{
		catalog: catalog,
		world:   world,
		rng:     rng,
		events:  events,
		bounds:  bounds,
		enemies: make(map[entity.EntityID]*Enemy),
	}
}

// Spawn creates an enemy of kind at pos and registers it in the world
func (f *EnemyFactory) Spawn(kind entity.EnemyKind, pos entity.Vec2, owner KillListener) (EnemyHandle, error) {
	stats, ok := f.catalog[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	id := f.world.NewEntity()
	e := NewEnemy(EnemyParams{
		ID:     id,
		Kind:   kind,
		Stats:  stats,
		Pos:    pos,
		Owner:  owner,
		Events: f.events,
		RNG:    f.rng,
		Bounds: f.bounds,
	})
	f.enemies[id] = e
	f.world.SyncEnemy(id, viewOf(e))
	return e, nil
}

// Has returns true if kind is in the catalog
func (f *EnemyFactory) Has(kind entity.EnemyKind) bool {
	_, ok := f.catalog[kind]
	return ok
}

// Enemy looks up a registered enemy
func (f *EnemyFactory) Enemy(id entity.EntityID) (*Enemy, bool) {
	e, ok := f.enemies[id]
	return e, ok
}

// Enemies returns every registered enemy in ascending ID order
func (f *EnemyFactory) Enemies() []*Enemy {
	out := make([]*Enemy, 0, len(f.enemies))
	for _, e := range f.enemies {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Count returns the number of registered enemies
func (f *EnemyFactory) Count() int {
	return len(f.enemies)
}

// Remove drops an enemy from the registry and the world
func (f *EnemyFactory) Remove(id entity.EntityID) {
	delete(f.enemies, id)
	f.world.DestroyEntity(id)
}

// Sync copies an enemy's state into the world
func (f *EnemyFactory) Sync(e *Enemy) {
	f.world.SyncEnemy(e.ID(), viewOf(e))
}

func viewOf(e *Enemy) ecs.EnemyView {
	return ecs.EnemyView{
		Pos:    e.Position(),
		Health: e.Health(),
		State:  e.State(),
		Kind:   e.Kind(),
		Boss:   e.IsBoss(),
		Gated:  e.DamageGated(),
	}
}
