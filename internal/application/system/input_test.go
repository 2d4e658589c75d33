package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputSystem_Compose(t *testing.T) {
	s := NewInputSystem(DefaultKeyBindings())

	tests := []struct {
		name                   string
		up, down, left, right  bool
		strike, skill, collect bool
		expected               InputState
	}{
		{name: "nothing pressed", expected: InputState{}},
		{name: "left", left: true, expected: InputState{MoveX: -1}},
		{name: "opposite keys cancel", left: true, right: true, expected: InputState{}},
		{name: "up right", up: true, right: true, expected: InputState{MoveX: 1, MoveY: -1}},
		{name: "down", down: true, expected: InputState{MoveY: 1}},
		{name: "actions", strike: true, skill: true, collect: true, expected: InputState{Strike: true, Skill: true, Collect: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.compose(tt.up, tt.down, tt.left, tt.right, tt.strike, tt.skill, tt.collect)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInputState_Direction(t *testing.T) {
	in := InputState{MoveX: 1, MoveY: -1}
	dir := in.Direction()

	assert.InDelta(t, 1/math.Sqrt2, dir.X, 1e-9)
	assert.InDelta(t, -1/math.Sqrt2, dir.Y, 1e-9)
	assert.InDelta(t, 1.0, dir.Len(), 1e-9)

	assert.True(t, InputState{}.Idle())
	assert.False(t, in.Idle())
	assert.False(t, InputState{Collect: true}.Idle())
}
