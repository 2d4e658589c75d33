package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Size        StageSizeConfig    `json:"size"`
	Background  string             `json:"background"`
	PlayerSpawn PositionConfig     `json:"playerSpawn"`
	SpawnPoints []SpawnPointConfig `json:"spawnPoints"`
	Exit        *ExitConfig        `json:"exit,omitempty"`
}

type StageSizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SpawnPointConfig struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Kind string  `json:"kind"` // "regular" or "boss"
}

type ExitConfig struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Radius        float64 `json:"radius"`
	RequiredSouls int     `json:"requiredSouls"`
	NoticeTime    float64 `json:"noticeTime"`
}
