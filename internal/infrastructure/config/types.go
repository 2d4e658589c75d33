package config

// SimulationConfig is the root config for simulation.json
type SimulationConfig struct {
	Display    DisplayConfig `json:"display"`
	Simulation TickConfig    `json:"simulation"`
	Combat     CombatConfig  `json:"combat"`
	Player     PlayerConfig  `json:"player"`
	Server     ServerConfig  `json:"server"`
}

type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth"`
	ScreenHeight  int     `json:"screenHeight"`
	Scale         int     `json:"scale"`
	Framerate     int     `json:"framerate"`
	PixelsPerUnit float64 `json:"pixelsPerUnit"` // world unit to screen pixel
}

type TickConfig struct {
	TickRate      int     `json:"tickRate"` // ticks per second
	Seed          int64   `json:"seed"`     // 0 picks a time-based seed
	MaxTicks      int     `json:"maxTicks"` // headless runs stop here
	ContactRadius float64 `json:"contactRadius"`
	Variant       string  `json:"variant"` // waves.yaml variant, empty for the file default
	Stage         string  `json:"stage"`
}

// Dt returns the fixed tick length in seconds
func (c TickConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

type CombatConfig struct {
	Tags      map[string]string `json:"tags"`   // collider tag -> damage source name
	Damage    map[string]int    `json:"damage"` // damage source name -> amount
	PlayerTag string            `json:"playerTag"`
}

type PlayerConfig struct {
	Speed          float64 `json:"speed"`
	StrikeRadius   float64 `json:"strikeRadius"`
	StrikeCooldown float64 `json:"strikeCooldown"`
	SwordTag       string  `json:"swordTag"`
	SkillTag       string  `json:"skillTag"`
	SkillRadius    float64 `json:"skillRadius"`
	SkillCooldown  float64 `json:"skillCooldown"`
}

type ServerConfig struct {
	Listen       string `json:"listen"`       // empty disables the spectator server
	SnapshotRate int    `json:"snapshotRate"` // snapshots published per second
}
