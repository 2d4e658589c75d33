package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/younwookim/soulwave/internal/application/replay"
	"github.com/younwookim/soulwave/internal/application/session"
	"github.com/younwookim/soulwave/internal/application/system"
	"github.com/younwookim/soulwave/internal/infrastructure/config"
	"github.com/younwookim/soulwave/internal/infrastructure/server"
)

// runOptions selects one headless run
type runOptions struct {
	Seed       int64
	Variant    string
	Stage      string
	MaxTicks   int
	RecordPath string
	ReplayPath string // replays take seed, variant and stage from the file
	Listen     string // spectator server address, empty disables it
	Realtime   bool   // pace ticks at the configured tick rate
}

// inputSource feeds one tick of input, false when it has nothing left
type inputSource interface {
	Next() (system.InputState, bool)
}

// pilot plays with the autopilot, then walks to the exit once the gate opens
type pilot struct {
	s    *session.Session
	auto *system.Autopilot
}

func (p *pilot) Next() (system.InputState, bool) {
	if gate := p.s.Exit(); gate != nil && p.s.Done() && gate.CanExit() {
		d := gate.Pos.Sub(p.s.Player().Pos)
		return system.InputState{MoveX: d.X, MoveY: d.Y}, true
	}
	return p.auto.Decide(), true
}

// replaySource plays recorded frames
type replaySource struct {
	r *replay.Replayer
}

func (rs replaySource) Next() (system.InputState, bool) {
	return rs.r.GetInput()
}

// run plays one session to its end and returns the final summary
func run(ctx context.Context, loader *config.Loader, cfg *config.GameConfig, opts runOptions) (session.Summary, error) {
	var replayer *replay.Replayer
	if opts.ReplayPath != "" {
		data, err := replay.LoadReplay(opts.ReplayPath)
		if err != nil {
			return session.Summary{}, err
		}
		opts.Seed, opts.Variant, opts.Stage = data.Seed, data.Variant, data.Stage
		replayer = replay.NewReplayer(*data)
		log.Printf("[Sim] replaying %s (%d frames)", opts.ReplayPath, replayer.TotalFrames())
	}

	stage, err := loader.LoadStage(opts.Stage)
	if err != nil {
		return session.Summary{}, err
	}
	s, err := session.New(cfg, stage, session.Options{Seed: opts.Seed, Variant: opts.Variant})
	if err != nil {
		return session.Summary{}, err
	}

	var src inputSource = &pilot{s: s, auto: s.Autopilot()}
	if replayer != nil {
		src = replaySource{r: replayer}
	}

	var recorder *replay.Recorder
	if opts.RecordPath != "" {
		recorder = replay.NewRecorder(s.Seed(), s.Variant(), s.Stage())
	}

	spectate, err := startSpectator(ctx, cfg.Simulation, s, opts.Listen)
	if err != nil {
		return session.Summary{}, err
	}
	defer spectate.stop()

	if err := s.Start(); err != nil {
		return session.Summary{}, err
	}
	log.Printf("[Sim] stage=%s variant=%s seed=%d", s.Stage(), s.Variant(), s.Seed())

	var pace <-chan time.Time
	if opts.Realtime {
		ticker := time.NewTicker(time.Duration(s.Dt() * float64(time.Second)))
		defer ticker.Stop()
		pace = ticker.C
	}

	for ticks := 0; opts.MaxTicks <= 0 || ticks < opts.MaxTicks; ticks++ {
		if finished(s) {
			break
		}
		if pace != nil {
			select {
			case <-ctx.Done():
			case <-pace:
			}
		}
		if ctx.Err() != nil {
			log.Printf("[Sim] interrupted")
			break
		}

		in, ok := src.Next()
		if !ok {
			break
		}
		if recorder != nil {
			recorder.RecordFrame(in)
		}
		s.Step(in)
		spectate.publish(s)
	}

	if recorder != nil {
		if err := recorder.Save(opts.RecordPath); err != nil {
			return s.Summary(), fmt.Errorf("failed to save recording: %w", err)
		}
		log.Printf("[Sim] recording saved: %s (%d frames)", opts.RecordPath, recorder.FrameCount())
	}
	return s.Summary(), nil
}

// finished is true once the player left, or the waves ended with no way out
func finished(s *session.Session) bool {
	if s.Exited() {
		return true
	}
	if !s.Done() {
		return false
	}
	gate := s.Exit()
	return gate == nil || !gate.CanExit()
}

// spectator owns the optional fiber server and its hub
type spectator struct {
	store  *server.SnapshotStore
	stopFn func()
	every  uint64
}

func startSpectator(ctx context.Context, cfg *config.SimulationConfig, s *session.Session, listen string) (*spectator, error) {
	if listen == "" {
		return &spectator{}, nil
	}

	rate := cfg.Server.SnapshotRate
	if rate <= 0 {
		rate = 10
	}
	every := uint64(cfg.Simulation.TickRate / rate)
	if every == 0 {
		every = 1
	}

	store := &server.SnapshotStore{}
	hub := server.NewHub(256)
	s.Events().SubscribeAll(hub)

	hubCtx, cancel := context.WithCancel(ctx)
	go hub.Run(hubCtx)

	app := server.New(server.Config{AccessLog: true}, store, hub)
	errc := make(chan error, 1)
	go func() { errc <- app.Listen(listen) }()

	// Listen errors surface immediately (bad address, port in use)
	select {
	case err := <-errc:
		cancel()
		return nil, fmt.Errorf("spectator server: %w", err)
	case <-time.After(100 * time.Millisecond):
	}
	log.Printf("[Sim] spectator server on %s", listen)

	return &spectator{
		store: store,
		every: every,
		stopFn: func() {
			if err := app.Shutdown(); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("[Sim] spectator shutdown: %v", err)
			}
			cancel()
		},
	}, nil
}

func (sp *spectator) publish(s *session.Session) {
	if sp.store == nil {
		return
	}
	if tick := s.Simulation().TickCount(); tick%sp.every == 0 || s.Done() {
		sp.store.Publish(server.Capture(s.Simulation()))
	}
}

func (sp *spectator) stop() {
	if sp.stopFn != nil {
		sp.stopFn()
	}
}
