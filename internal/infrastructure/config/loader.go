package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Simulation *SimulationConfig
	Entities   *EntitiesConfig
	Waves      *WavesConfig
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSimulation loads simulation.json
func (l *Loader) LoadSimulation() (*SimulationConfig, error) {
	data, err := fs.ReadFile(l.fsys, "simulation.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation.json: %w", err)
	}

	var cfg SimulationConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse simulation.json: %w", err)
	}

	return &cfg, nil
}

// LoadEntities loads and validates entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	var cfg EntitiesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}

	if err := validateEntities(&cfg); err != nil {
		return nil, fmt.Errorf("invalid entities.json: %w", err)
	}

	return &cfg, nil
}

// LoadWaves loads and validates waves.yaml
func (l *Loader) LoadWaves() (*WavesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "waves.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read waves.yaml: %w", err)
	}

	var cfg WavesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse waves.yaml: %w", err)
	}

	if err := validateWaves(&cfg); err != nil {
		return nil, fmt.Errorf("invalid waves.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (simulation, entities, waves)
func (l *Loader) LoadAll() (*GameConfig, error) {
	simulation, err := l.LoadSimulation()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	waves, err := l.LoadWaves()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Simulation: simulation,
		Entities:   entities,
		Waves:      waves,
	}, nil
}
