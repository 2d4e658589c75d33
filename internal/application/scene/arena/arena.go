// Package arena provides the interactive arena scene: keyboard or autopilot
// input, optional replay recording, and the vector-drawn playfield and HUD.
package arena

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/soulwave/internal/application/replay"
	"github.com/younwookim/soulwave/internal/application/scene"
	"github.com/younwookim/soulwave/internal/application/session"
	"github.com/younwookim/soulwave/internal/application/state"
	"github.com/younwookim/soulwave/internal/application/system"
	"github.com/younwookim/soulwave/internal/infrastructure/config"
)

const (
	feedLines = 5
	feedTTL   = 4.0 // seconds
)

// Options configures the arena scene
type Options struct {
	RecordPath string // empty disables recording
	Autopilot  bool   // start with the autopilot driving
}

// Arena is the main gameplay scene
type Arena struct {
	session   *session.Session
	input     *system.InputSystem
	autopilot *system.Autopilot
	piloted   bool
	renderer  *Renderer
	feed      *Feed
	state     state.GameState

	// Input recording
	recorder   *replay.Recorder
	recordPath string
}

// New starts s and wraps it in a scene
func New(s *session.Session, display config.DisplayConfig, opts Options) (*Arena, error) {
	a := &Arena{
		session:    s,
		input:      system.NewInputSystem(system.DefaultKeyBindings()),
		autopilot:  s.Autopilot(),
		piloted:    opts.Autopilot,
		renderer:   NewRenderer(display.ScreenWidth, display.ScreenHeight, display.PixelsPerUnit),
		feed:       NewFeed(feedLines, feedTTL),
		state:      state.StatePlaying,
		recordPath: opts.RecordPath,
	}
	s.Events().SubscribeAll(a.feed)
	if err := s.Start(); err != nil {
		return nil, err
	}

	if opts.RecordPath != "" {
		a.recorder = replay.NewRecorder(s.Seed(), s.Variant(), s.Stage())
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, s.Seed())
	}
	return a, nil
}

// Update proceeds the game state (implements scene.Scene)
func (a *Arena) Update(_ float64) (scene.Scene, error) {
	switch a.state {
	case state.StatePlaying:
		a.updatePlaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			a.state = state.StatePlaying
		}
	case state.StateComplete:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return nil, scene.ErrQuit
		}
	}
	return nil, nil
}

func (a *Arena) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.state = state.StatePaused
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		a.piloted = !a.piloted
	}

	var in system.InputState
	if a.piloted {
		in = a.autopilot.Decide()
	} else {
		in = a.input.GetInput()
	}
	a.Step(in)
}

// Step plays one tick of input: record, simulate, age the feed, check for the end
func (a *Arena) Step(in system.InputState) {
	if a.recorder != nil {
		a.recorder.RecordFrame(in)
	}

	a.session.Step(in)
	a.feed.Update(a.session.Dt())

	if a.finished() {
		a.state = state.StateComplete
		log.Printf("Arena finished: %s", a.session.Summary())
		a.saveRecording()
	}
}

// finished is true once the player leaves through the gate, or the waves end on a stage without one
func (a *Arena) finished() bool {
	if a.session.Exit() == nil {
		return a.session.Done()
	}
	return a.session.Exited()
}

// saveRecording saves the current recording to file
func (a *Arena) saveRecording() {
	if a.recorder == nil {
		return
	}

	filename := a.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := a.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, a.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (a *Arena) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.session)
	drawHUD(screen, a.session, a.feed, a.state, a.piloted)
}

// OnEnter is called when entering this scene
func (a *Arena) OnEnter() {}

// OnExit stops and saves the recording
func (a *Arena) OnExit() {
	a.saveRecording()
	if a.recorder != nil {
		a.recorder.Stop()
	}
}

// State returns the scene's front-end state
func (a *Arena) State() state.GameState { return a.state }

// Session returns the running session
func (a *Arena) Session() *session.Session { return a.session }

// Feed returns the HUD event feed
func (a *Arena) Feed() *Feed { return a.feed }

// Recorder returns the input recorder, nil when not recording
func (a *Arena) Recorder() *replay.Recorder { return a.recorder }
