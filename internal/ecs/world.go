package ecs

import (
	"sort"

	"github.com/younwookim/soulwave/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID = entity.EntityID

// World is the component read model of the arena. The simulation writes it
// once per tick; renderers and the spectator snapshot only read it.
type World struct {
	nextID EntityID

	// Components
	Position map[EntityID]Position
	Health   map[EntityID]Health
	Behavior map[EntityID]Behavior
	Kind     map[EntityID]Kind
	Gate     map[EntityID]Gate

	// Tags
	IsPlayer map[EntityID]struct{}
	IsEnemy  map[EntityID]struct{}
	IsBoss   map[EntityID]struct{}
	IsDead   map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:   1, // 0 is "nil"
		Position: make(map[EntityID]Position),
		Health:   make(map[EntityID]Health),
		Behavior: make(map[EntityID]Behavior),
		Kind:     make(map[EntityID]Kind),
		Gate:     make(map[EntityID]Gate),
		IsPlayer: make(map[EntityID]struct{}),
		IsEnemy:  make(map[EntityID]struct{}),
		IsBoss:   make(map[EntityID]struct{}),
		IsDead:   make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Health, id)
	delete(w.Behavior, id)
	delete(w.Kind, id)
	delete(w.Gate, id)
	delete(w.IsPlayer, id)
	delete(w.IsEnemy, id)
	delete(w.IsBoss, id)
	delete(w.IsDead, id)
}

// Exists checks if an entity has Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// CreatePlayer creates the player entity
func (w *World) CreatePlayer(pos entity.Vec2) EntityID {
	id := w.NewEntity()
	w.Position[id] = pos
	w.IsPlayer[id] = struct{}{}
	w.PlayerID = id
	return id
}

// SetPlayerPosition updates the player's position
func (w *World) SetPlayerPosition(pos entity.Vec2) {
	w.Position[w.PlayerID] = pos
}

// GetPlayerPosition returns the player's position
func (w *World) GetPlayerPosition() Position {
	return w.Position[w.PlayerID]
}

// SyncEnemy writes an enemy's components, creating them on first sight
func (w *World) SyncEnemy(id EntityID, v EnemyView) {
	w.Position[id] = v.Pos
	w.Health[id] = Health{Current: v.Health.Current, Max: v.Health.Max}
	w.Behavior[id] = Behavior{State: v.State}
	w.Kind[id] = Kind{Name: v.Kind}
	w.IsEnemy[id] = struct{}{}

	if v.Boss {
		w.IsBoss[id] = struct{}{}
		w.Gate[id] = Gate{Gated: v.Gated}
	}
	if v.State == entity.StateDead {
		w.IsDead[id] = struct{}{}
	} else {
		delete(w.IsDead, id)
	}
}

// CountEnemies returns the number of enemies in the world, dead ones included
func (w *World) CountEnemies() int {
	return len(w.IsEnemy)
}

// CountLiveEnemies returns the number of enemies not yet dead
func (w *World) CountLiveEnemies() int {
	return len(w.IsEnemy) - len(w.IsDead)
}

// EnemyIDs returns every enemy ID in ascending order
func (w *World) EnemyIDs() []EntityID {
	ids := make([]EntityID, 0, len(w.IsEnemy))
	for id := range w.IsEnemy {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
