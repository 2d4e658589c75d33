package entity

// EnemyKind identifies an enemy prefab from entities.json
type EnemyKind string

// BehaviorState is the state of an enemy's behavior FSM
type BehaviorState int

const (
	StateRoaming BehaviorState = iota
	StateChasing
	StateAttacking
	StateStaggered
	StateDead
)

// String returns the string representation of the behavior state
func (s BehaviorState) String() string {
	switch s {
	case StateRoaming:
		return "Roaming"
	case StateChasing:
		return "Chasing"
	case StateAttacking:
		return "Attacking"
	case StateStaggered:
		return "Staggered"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Health is an entity's health pool. Current stays within [0, Max].
type Health struct {
	Current int
	Max     int
}

// NewHealth creates a full health pool
func NewHealth(max int) Health {
	if max < 0 {
		max = 0
	}
	return Health{Current: max, Max: max}
}

// TakeDamage lowers Current by amount with a floor of 0, returns true if depleted
func (h *Health) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

// IsAlive returns true if health > 0
func (h Health) IsAlive() bool {
	return h.Current > 0
}

// EnemyStats holds per-kind tuning values. Times are in seconds,
// distances in world units, speeds in units per second.
type EnemyStats struct {
	MaxHealth       int
	Boss            bool
	MoveSpeed       float64
	DashSpeed       float64
	DashDuration    float64
	AttackRadius    float64
	AttackCooldown  float64
	DetectionRadius float64
	RoamingRadius   float64
	RoamInterval    float64
	StaggerDuration float64
	KnockbackSpeed  float64
	WarningCooldown float64
	ExitDelay       float64
}
