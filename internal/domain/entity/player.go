package entity

// Player is the top-down player avatar driven by input, a replay or the autopilot.
// The simulation core only ever reads its position.
type Player struct {
	Pos   Vec2
	Speed float64 // units per second

	// Weapon reach used to turn strikes into overlap events
	StrikeRadius   float64
	StrikeCooldown float64

	// Timers (seconds)
	StrikeTimer float64
}

// NewPlayer creates a player at pos
func NewPlayer(pos Vec2, speed, strikeRadius, strikeCooldown float64) *Player {
	return &Player{
		Pos:            pos,
		Speed:          speed,
		StrikeRadius:   strikeRadius,
		StrikeCooldown: strikeCooldown,
	}
}

// PlayerPosition returns the current player position
func (p *Player) PlayerPosition() Vec2 {
	return p.Pos
}

// Move walks the player along dir (normalized here) for dt seconds
func (p *Player) Move(dir Vec2, dt float64) {
	p.Pos = p.Pos.Add(dir.Normalize().Scale(p.Speed * dt))
}

// MoveToward walks toward target without overshooting, returns true on arrival
func (p *Player) MoveToward(target Vec2, dt float64) bool {
	delta := target.Sub(p.Pos)
	dist := delta.Len()
	step := p.Speed * dt
	if dist <= step {
		p.Pos = target
		return true
	}
	p.Pos = p.Pos.Add(delta.Scale(step / dist))
	return false
}

// UpdateTimers decrements the player's timers
func (p *Player) UpdateTimers(dt float64) {
	if p.StrikeTimer > 0 {
		p.StrikeTimer -= dt
		if p.StrikeTimer < 0 {
			p.StrikeTimer = 0
		}
	}
}

// CanStrike returns true if the weapon is off cooldown
func (p *Player) CanStrike() bool {
	return p.StrikeTimer <= 0
}

// Strike starts the weapon cooldown, returns false if still cooling down
func (p *Player) Strike() bool {
	if !p.CanStrike() {
		return false
	}
	p.StrikeTimer = p.StrikeCooldown
	return true
}

// InReach returns true if target is within the player's weapon reach
func (p *Player) InReach(target Vec2) bool {
	return p.Pos.Dist(target) <= p.StrikeRadius
}
