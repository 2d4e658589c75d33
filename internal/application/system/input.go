package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/soulwave/internal/domain/entity"
)

// InputState is one tick of player input, from the keyboard, a replay or the autopilot
type InputState struct {
	MoveX   float64 `json:"mx,omitempty"`
	MoveY   float64 `json:"my,omitempty"`
	Strike  bool    `json:"strike,omitempty"`
	Skill   bool    `json:"skill,omitempty"`
	Collect bool    `json:"collect,omitempty"`
}

// Direction returns the movement direction, normalized
func (in InputState) Direction() entity.Vec2 {
	return entity.Vec2{X: in.MoveX, Y: in.MoveY}.Normalize()
}

// Idle returns true if the input does nothing
func (in InputState) Idle() bool {
	return in == InputState{}
}

// KeyBindings maps actions to keys
type KeyBindings struct {
	Up, Down, Left, Right ebiten.Key
	Strike                ebiten.Key
	Skill                 ebiten.Key
	Collect               ebiten.Key
}

// DefaultKeyBindings returns WASD movement, Space sword, Q skill and R collect
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:      ebiten.KeyW,
		Down:    ebiten.KeyS,
		Left:    ebiten.KeyA,
		Right:   ebiten.KeyD,
		Strike:  ebiten.KeySpace,
		Skill:   ebiten.KeyQ,
		Collect: ebiten.KeyR,
	}
}

// InputSystem reads player input from the keyboard
type InputSystem struct {
	keys KeyBindings
}

// NewInputSystem creates a new input system
func NewInputSystem(keys KeyBindings) *InputSystem {
	return &InputSystem{keys: keys}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return s.compose(
		ebiten.IsKeyPressed(s.keys.Up),
		ebiten.IsKeyPressed(s.keys.Down),
		ebiten.IsKeyPressed(s.keys.Left),
		ebiten.IsKeyPressed(s.keys.Right),
		inpututil.IsKeyJustPressed(s.keys.Strike),
		inpututil.IsKeyJustPressed(s.keys.Skill),
		inpututil.IsKeyJustPressed(s.keys.Collect),
	)
}

// compose turns raw key states into an InputState. Opposite keys cancel out.
func (s *InputSystem) compose(up, down, left, right, strike, skill, collect bool) InputState {
	var in InputState
	if left {
		in.MoveX--
	}
	if right {
		in.MoveX++
	}
	if up {
		in.MoveY--
	}
	if down {
		in.MoveY++
	}
	in.Strike = strike
	in.Skill = skill
	in.Collect = collect
	return in
}
