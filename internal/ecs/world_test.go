package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/soulwave/internal/domain/entity"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Position)
	assert.NotNil(t, w.Health)
	assert.NotNil(t, w.IsEnemy)
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	w.Position[id1] = Position{X: 1, Y: 2}

	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld()
	id := w.NewEntity()
	w.SyncEnemy(id, EnemyView{
		Pos:    entity.Vec2{X: 3, Y: 4},
		Health: entity.NewHealth(10),
		Kind:   "golem",
		Boss:   true,
		Gated:  true,
	})

	require.True(t, w.Exists(id))

	w.DestroyEntity(id)

	assert.False(t, w.Exists(id))
	_, hasHealth := w.Health[id]
	assert.False(t, hasHealth)
	_, isEnemy := w.IsEnemy[id]
	assert.False(t, isEnemy)
	_, isBoss := w.IsBoss[id]
	assert.False(t, isBoss)
	_, hasGate := w.Gate[id]
	assert.False(t, hasGate)
}

func TestExists(t *testing.T) {
	w := NewWorld()
	id := w.NewEntity()

	assert.False(t, w.Exists(id), "Entity without Position should not exist")

	w.Position[id] = Position{}
	assert.True(t, w.Exists(id), "Entity with Position should exist")
}

func TestPlayer(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(entity.Vec2{X: 5, Y: 5})

	assert.Equal(t, id, w.PlayerID)
	assert.Equal(t, Position{X: 5, Y: 5}, w.GetPlayerPosition())

	w.SetPlayerPosition(entity.Vec2{X: 6, Y: 7})
	assert.Equal(t, Position{X: 6, Y: 7}, w.GetPlayerPosition())
	assert.Equal(t, 0, w.CountEnemies())
}

func TestSyncEnemy(t *testing.T) {
	w := NewWorld()
	a := w.NewEntity()
	b := w.NewEntity()

	w.SyncEnemy(b, EnemyView{Health: entity.NewHealth(4), Kind: "slime"})
	w.SyncEnemy(a, EnemyView{Health: entity.NewHealth(4), Kind: "slime"})
	assert.Equal(t, []EntityID{a, b}, w.EnemyIDs())
	assert.Equal(t, 2, w.CountLiveEnemies())

	w.SyncEnemy(a, EnemyView{Health: entity.Health{Current: 0, Max: 4}, State: entity.StateDead, Kind: "slime"})
	assert.Equal(t, 2, w.CountEnemies())
	assert.Equal(t, 1, w.CountLiveEnemies())
	assert.Equal(t, entity.StateDead, w.Behavior[a].State)

	_, isBoss := w.IsBoss[a]
	assert.False(t, isBoss)
}

func TestHealth(t *testing.T) {
	t.Run("Fraction", func(t *testing.T) {
		assert.InDelta(t, 0.25, Health{Current: 1, Max: 4}.Fraction(), 1e-9)
		assert.Equal(t, 0.0, Health{}.Fraction())
	})

	t.Run("IsAlive", func(t *testing.T) {
		assert.True(t, Health{Current: 1, Max: 100}.IsAlive())
		assert.False(t, Health{Current: 0, Max: 100}.IsAlive())
	})
}
