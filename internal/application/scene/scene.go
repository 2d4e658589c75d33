// Package scene defines the Scene interface for game screens.
//
// Each screen (the arena, a replay viewer) implements Scene to handle its
// own update logic and rendering.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the game normally
var ErrQuit = errors.New("quit")

// Scene represents a game screen
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (one tick).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns ErrQuit to close the window, any other error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, and before the game closes.
	// Use this for cleanup such as saving a recording.
	OnExit()
}
