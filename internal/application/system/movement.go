package system

import (
	"math"

	"github.com/younwookim/soulwave/internal/domain/entity"
)

// ArrivalEpsilon is the distance below which a seek target counts as reached
const ArrivalEpsilon = 0.1

// Movement is a straight-line seek controller with a decaying knockback channel
type Movement struct {
	Pos   entity.Vec2
	Speed float64 // default seek speed, units per second

	target      entity.Vec2
	targetSpeed float64
	hasTarget   bool
	velocity    entity.Vec2

	// Knockback
	push         entity.Vec2
	pushElapsed  float64
	pushDuration float64

	bounds *entity.Arena
}

// NewMovement creates a movement controller at pos. bounds may be nil.
func NewMovement(pos entity.Vec2, speed float64, bounds *entity.Arena) *Movement {
	return &Movement{
		Pos:    pos,
		Speed:  speed,
		bounds: bounds,
	}
}

// MoveTo seeks target at the default speed
func (m *Movement) MoveTo(target entity.Vec2) {
	m.MoveToAt(target, m.Speed)
}

// MoveToAt seeks target at the given speed
func (m *Movement) MoveToAt(target entity.Vec2, speed float64) {
	m.target = target
	m.targetSpeed = speed
	m.hasTarget = true
}

// Stop zeroes the target, velocity and knockback. Safe to call repeatedly.
func (m *Movement) Stop() {
	m.hasTarget = false
	m.target = entity.Vec2{}
	m.velocity = entity.Vec2{}
	m.push = entity.Vec2{}
	m.pushElapsed = 0
	m.pushDuration = 0
}

// Push applies a knockback impulse that decays linearly to zero over duration
func (m *Movement) Push(impulse entity.Vec2, duration float64) {
	if duration <= 0 {
		return
	}
	m.push = impulse
	m.pushElapsed = 0
	m.pushDuration = duration
}

// Moving returns true while a seek target is set
func (m *Movement) Moving() bool {
	return m.hasTarget
}

// Target returns the current seek target
func (m *Movement) Target() (entity.Vec2, bool) {
	return m.target, m.hasTarget
}

// Velocity returns the seek velocity of the last update
func (m *Movement) Velocity() entity.Vec2 {
	return m.velocity
}

// KnockedBack returns true while a knockback impulse is decaying
func (m *Movement) KnockedBack() bool {
	return m.pushElapsed < m.pushDuration
}

// Update integrates seek and knockback motion for dt seconds
func (m *Movement) Update(dt float64) {
	if dt <= 0 {
		return
	}

	m.velocity = entity.Vec2{}
	if m.hasTarget {
		delta := m.target.Sub(m.Pos)
		remaining := delta.Len()
		if remaining < ArrivalEpsilon {
			m.hasTarget = false
		} else {
			speed := math.Min(m.targetSpeed, remaining/dt)
			m.velocity = delta.Normalize().Scale(speed)
			m.Pos = m.Pos.Add(m.velocity.Scale(dt))
			if m.Pos.Dist(m.target) < ArrivalEpsilon {
				m.hasTarget = false
			}
		}
	}

	if m.KnockedBack() {
		factor := 1 - m.pushElapsed/m.pushDuration
		m.Pos = m.Pos.Add(m.push.Scale(factor * dt))
		m.pushElapsed += dt
		if !m.KnockedBack() {
			m.push = entity.Vec2{}
		}
	}

	if m.bounds != nil {
		m.Pos = m.bounds.Clamp(m.Pos)
	}
}
