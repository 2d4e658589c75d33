package entity

import "math"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Vec2 is a point or direction in world units
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the euclidean length of v
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Normalize returns v scaled to unit length, or the zero vector for zero input
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// SpawnKind tags a spawn point as usable for regular enemies or bosses
type SpawnKind int

const (
	SpawnRegular SpawnKind = iota
	SpawnBoss
)

// String returns the string representation of the spawn kind
func (k SpawnKind) String() string {
	switch k {
	case SpawnRegular:
		return "regular"
	case SpawnBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// SpawnPoint is an immutable spawn position
type SpawnPoint struct {
	Pos  Vec2
	Kind SpawnKind
}

// Arena holds the playfield bounds and its spawn points
type Arena struct {
	Width       float64
	Height      float64
	PlayerSpawn Vec2
	SpawnPoints []SpawnPoint
}

// Points returns the positions of all spawn points of the given kind
func (a *Arena) Points(kind SpawnKind) []Vec2 {
	out := make([]Vec2, 0, len(a.SpawnPoints))
	for _, sp := range a.SpawnPoints {
		if sp.Kind == kind {
			out = append(out, sp.Pos)
		}
	}
	return out
}

// Clamp keeps p inside the arena bounds
func (a *Arena) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: math.Max(0, math.Min(a.Width, p.X)),
		Y: math.Max(0, math.Min(a.Height, p.Y)),
	}
}
