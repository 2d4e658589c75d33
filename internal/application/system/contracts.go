package system

import "github.com/younwookim/soulwave/internal/domain/entity"

// EnemyHandle is the Director's view of a spawned enemy
type EnemyHandle interface {
	ID() entity.EntityID
	IsDead() bool
	SetDamageGated(gated bool)
}

// KillListener is notified exactly once when an enemy it owns dies
type KillListener interface {
	OnEnemyKilled(h EnemyHandle)
}

// SpawnFactory instantiates an enemy of kind at pos, owned by owner
type SpawnFactory interface {
	Spawn(kind entity.EnemyKind, pos entity.Vec2, owner KillListener) (EnemyHandle, error)
}

// PlayerLocator supplies the player position once per tick
type PlayerLocator interface {
	PlayerPosition() entity.Vec2
}
