package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv
const (
	EnvSeed     = "SOULWAVE_SEED"
	EnvVariant  = "SOULWAVE_VARIANT"
	EnvStage    = "SOULWAVE_STAGE"
	EnvListen   = "SOULWAVE_LISTEN"
	EnvMaxTicks = "SOULWAVE_MAX_TICKS"
)

// Env holds SOULWAVE_* overrides. Unset values leave the file config alone.
type Env struct {
	Seed     *int64
	Variant  string
	Stage    string
	Listen   string
	MaxTicks *int
}

// LoadEnv loads .env files (missing files are fine) and reads the process environment.
// Variables already set in the process win over .env values.
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Env{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return ParseEnv(func(key string) string { return os.Getenv(key) })
}

// ParseEnvString parses .env formatted text, for tests and embedded defaults
func ParseEnvString(text string) (Env, error) {
	values, err := godotenv.Unmarshal(text)
	if err != nil {
		return Env{}, fmt.Errorf("failed to parse env: %w", err)
	}
	return ParseEnv(func(key string) string { return values[key] })
}

// ParseEnv reads overrides through getenv
func ParseEnv(getenv func(string) string) (Env, error) {
	env := Env{
		Variant: getenv(EnvVariant),
		Stage:   getenv(EnvStage),
		Listen:  getenv(EnvListen),
	}

	if s := getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Env{}, fmt.Errorf("invalid %s %q: %w", EnvSeed, s, err)
		}
		env.Seed = &seed
	}

	if s := getenv(EnvMaxTicks); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Env{}, fmt.Errorf("invalid %s %q", EnvMaxTicks, s)
		}
		env.MaxTicks = &n
	}

	return env, nil
}

// Apply writes the overrides into cfg
func (e Env) Apply(cfg *SimulationConfig) {
	if e.Seed != nil {
		cfg.Simulation.Seed = *e.Seed
	}
	if e.Variant != "" {
		cfg.Simulation.Variant = e.Variant
	}
	if e.Stage != "" {
		cfg.Simulation.Stage = e.Stage
	}
	if e.Listen != "" {
		cfg.Server.Listen = e.Listen
	}
	if e.MaxTicks != nil {
		cfg.Simulation.MaxTicks = *e.MaxTicks
	}
}
