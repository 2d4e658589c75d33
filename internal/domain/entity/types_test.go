package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: 1}

	assert.Equal(t, Vec2{X: 4, Y: 5}, a.Add(b))
	assert.Equal(t, Vec2{X: 2, Y: 3}, a.Sub(b))
	assert.Equal(t, Vec2{X: 6, Y: 8}, a.Scale(2))
	assert.InDelta(t, 5.0, a.Len(), 1e-9)
	assert.InDelta(t, 5.0, Vec2{}.Dist(a), 1e-9)
}

func TestVec2_Normalize(t *testing.T) {
	n := Vec2{X: 0, Y: -10}.Normalize()
	assert.InDelta(t, 0.0, n.X, 1e-9)
	assert.InDelta(t, -1.0, n.Y, 1e-9)

	// Zero vector stays zero instead of producing NaN
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
}

func TestSpawnKind_String(t *testing.T) {
	tests := []struct {
		kind     SpawnKind
		expected string
	}{
		{SpawnRegular, "regular"},
		{SpawnBoss, "boss"},
		{SpawnKind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestArena_Points(t *testing.T) {
	arena := &Arena{
		Width:  20,
		Height: 10,
		SpawnPoints: []SpawnPoint{
			{Pos: Vec2{X: 1, Y: 1}, Kind: SpawnRegular},
			{Pos: Vec2{X: 2, Y: 2}, Kind: SpawnBoss},
			{Pos: Vec2{X: 3, Y: 3}, Kind: SpawnRegular},
		},
	}

	assert.Equal(t, []Vec2{{X: 1, Y: 1}, {X: 3, Y: 3}}, arena.Points(SpawnRegular))
	assert.Equal(t, []Vec2{{X: 2, Y: 2}}, arena.Points(SpawnBoss))
}

func TestArena_Clamp(t *testing.T) {
	arena := &Arena{Width: 20, Height: 10}

	assert.Equal(t, Vec2{X: 0, Y: 10}, arena.Clamp(Vec2{X: -5, Y: 30}))
	assert.Equal(t, Vec2{X: 7, Y: 3}, arena.Clamp(Vec2{X: 7, Y: 3}))
}
