package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/soulwave/internal/application/game"
	"github.com/younwookim/soulwave/internal/application/scene/arena"
	"github.com/younwookim/soulwave/internal/application/session"
	"github.com/younwookim/soulwave/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	seedFlag := flag.Int64("seed", 0, "Random seed (0 uses SOULWAVE_SEED, the config, then the clock)")
	variantFlag := flag.String("variant", "", "Wave variant from waves.yaml (e.g., endless)")
	autopilotFlag := flag.Bool("autopilot", false, "Start with the autopilot playing (F2 toggles)")
	envFlag := flag.String("env", ".env", "Optional .env file with SOULWAVE_* overrides")
	flag.Parse()

	env, err := config.LoadEnv(*envFlag)
	if err != nil {
		log.Fatalf("Failed to load env: %v", err)
	}

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	env.Apply(cfg.Simulation)

	tick := cfg.Simulation.Simulation
	if *seedFlag != 0 {
		tick.Seed = *seedFlag
	}
	if *variantFlag != "" {
		tick.Variant = *variantFlag
	}
	if tick.Seed == 0 {
		tick.Seed = time.Now().UnixNano()
	}
	if tick.Stage == "" {
		tick.Stage = "arena"
	}

	stageCfg, err := loader.LoadStage(tick.Stage)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	s, err := session.New(cfg, stageCfg, session.Options{Seed: tick.Seed, Variant: tick.Variant})
	if err != nil {
		log.Fatalf("Failed to build session: %v", err)
	}

	display := cfg.Simulation.Display
	sc, err := arena.New(s, display, arena.Options{RecordPath: *recordFlag, Autopilot: *autopilotFlag})
	if err != nil {
		log.Fatalf("Failed to start arena: %v", err)
	}
	log.Printf("Arena %s, variant %s, seed %d", s.Stage(), s.Variant(), s.Seed())

	g := game.New(sc, display.ScreenWidth, display.ScreenHeight, tick.TickRate)

	// Set up ebiten
	scale := display.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(display.ScreenWidth*scale, display.ScreenHeight*scale)
	ebiten.SetWindowTitle("Soulwave")
	ebiten.SetTPS(tick.TickRate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	g.Close()
	log.Printf("Session ended: %s", s.Summary())
}
