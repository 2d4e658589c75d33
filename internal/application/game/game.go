// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/soulwave/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	closed  bool
}

// New creates a new Game with the given initial scene, stepping tps ticks per second.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A scene returning scene.ErrQuit gets OnExit and ends the run with ebiten.Termination.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if errors.Is(err, scene.ErrQuit) {
		g.Close()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Close calls the current scene's OnExit once, for when the window closes underneath the game
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// DT returns the tick length in seconds
func (g *Game) DT() float64 {
	return g.dt
}
