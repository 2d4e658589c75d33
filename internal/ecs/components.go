package ecs

import "github.com/younwookim/soulwave/internal/domain/entity"

// Position is an entity's world position in arena units
type Position = entity.Vec2

// Health mirrors an entity's health pool
type Health struct {
	Current int
	Max     int
}

// Fraction returns Current/Max in [0, 1], or 0 for an empty pool
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// IsAlive returns true if health > 0
func (h Health) IsAlive() bool {
	return h.Current > 0
}

// Behavior mirrors an enemy's FSM state
type Behavior struct {
	State entity.BehaviorState
}

// Kind is the prefab an enemy was spawned from
type Kind struct {
	Name entity.EnemyKind
}

// Gate mirrors a boss's damage gating flag
type Gate struct {
	Gated bool
}

// EnemyView is one enemy's state as copied into the world after a tick
type EnemyView struct {
	Pos    entity.Vec2
	Health entity.Health
	State  entity.BehaviorState
	Kind   entity.EnemyKind
	Boss   bool
	Gated  bool
}
