package config

import "fmt"

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Enemies map[string]EnemyConfig `json:"enemies"`
}

type EnemyConfig struct {
	ID     string       `json:"id"`
	Boss   bool         `json:"boss"`
	Sprite SpriteConfig `json:"sprite"`
	Stats  EnemyStats   `json:"stats"`
	AI     AIConfig     `json:"ai"`
}

type SpriteConfig struct {
	Color  string  `json:"color"` // #rrggbb
	Radius float64 `json:"radius"`
}

type EnemyStats struct {
	MaxHealth       int     `json:"maxHealth"`
	MoveSpeed       float64 `json:"moveSpeed"`
	KnockbackSpeed  float64 `json:"knockbackSpeed"`
	StaggerDuration float64 `json:"staggerDuration"`
	ExitDelay       float64 `json:"exitDelay"`
}

type AIConfig struct {
	DetectionRadius float64 `json:"detectionRadius"`
	RoamingRadius   float64 `json:"roamingRadius"`
	RoamInterval    float64 `json:"roamInterval"`
	AttackRadius    float64 `json:"attackRadius"`
	AttackCooldown  float64 `json:"attackCooldown"`
	DashSpeed       float64 `json:"dashSpeed"`
	DashDuration    float64 `json:"dashDuration"`
	WarningCooldown float64 `json:"warningCooldown"`
}

func validateEntities(cfg *EntitiesConfig) error {
	if len(cfg.Enemies) == 0 {
		return fmt.Errorf("enemies cannot be empty")
	}
	for name, e := range cfg.Enemies {
		if e.Stats.MaxHealth < 1 {
			return fmt.Errorf("enemy %s: maxHealth must be >= 1, got %d", name, e.Stats.MaxHealth)
		}
	}
	return nil
}
