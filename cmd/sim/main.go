package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/younwookim/soulwave/internal/infrastructure/config"
)

func main() {
	configsFlag := flag.String("configs", "cmd/game/configs", "Config directory")
	envFlag := flag.String("env", ".env", "Optional .env file with SOULWAVE_* overrides")
	seedFlag := flag.Int64("seed", 0, "Random seed (0 uses SOULWAVE_SEED, the config, then the clock)")
	variantFlag := flag.String("variant", "", "Wave variant from waves.yaml")
	stageFlag := flag.String("stage", "", "Stage file under stages/")
	ticksFlag := flag.Int("ticks", 0, "Stop after this many ticks (0 uses the config)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recorded file instead of the autopilot")
	listenFlag := flag.String("listen", "", "Serve the spectator API on this address (e.g., :8080)")
	realtimeFlag := flag.Bool("realtime", false, "Pace ticks at the configured tick rate")
	jsonFlag := flag.Bool("json", false, "Print the final summary as JSON")
	flag.Parse()

	env, err := config.LoadEnv(*envFlag)
	if err != nil {
		log.Fatalf("Failed to load env: %v", err)
	}

	loader := config.NewLoader(*configsFlag)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	env.Apply(cfg.Simulation)

	tick := cfg.Simulation.Simulation
	opts := runOptions{
		Seed:       tick.Seed,
		Variant:    tick.Variant,
		Stage:      tick.Stage,
		MaxTicks:   tick.MaxTicks,
		RecordPath: *recordFlag,
		ReplayPath: *replayFlag,
		Listen:     cfg.Simulation.Server.Listen,
		Realtime:   *realtimeFlag,
	}
	if *seedFlag != 0 {
		opts.Seed = *seedFlag
	}
	if *variantFlag != "" {
		opts.Variant = *variantFlag
	}
	if *stageFlag != "" {
		opts.Stage = *stageFlag
	}
	if *ticksFlag > 0 {
		opts.MaxTicks = *ticksFlag
	}
	if *listenFlag != "" {
		opts.Listen = *listenFlag
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Stage == "" {
		opts.Stage = "arena"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := run(ctx, loader, cfg, opts)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sum); err != nil {
			log.Fatalf("Failed to encode summary: %v", err)
		}
		return
	}
	log.Printf("[Sim] %s", sum)
}
