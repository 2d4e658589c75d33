package entity

// SoulPoint is the reward pickup that appears when a wave is nearly cleared
type SoulPoint struct {
	Pos          Vec2
	Radius       float64
	Active       bool
	Interactable bool
}

// NewSoulPoint creates an active, interactable soul point
func NewSoulPoint(pos Vec2, radius float64) *SoulPoint {
	return &SoulPoint{
		Pos:          pos,
		Radius:       radius,
		Active:       true,
		Interactable: true,
	}
}

// CanCollect returns true if a player standing at p may collect the soul
func (s *SoulPoint) CanCollect(p Vec2) bool {
	if s == nil || !s.Active || !s.Interactable {
		return false
	}
	return s.Pos.Dist(p) <= s.Radius
}

// Deactivate removes the soul point from play
func (s *SoulPoint) Deactivate() {
	s.Active = false
	s.Interactable = false
}
