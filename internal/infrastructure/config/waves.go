package config

import "fmt"

// WavesConfig is the root config for waves.yaml
type WavesConfig struct {
	Default  string                 `yaml:"default"`
	Variants map[string]WaveVariant `yaml:"variants"`
}

// WaveVariant is one director configuration
type WaveVariant struct {
	Mode     string `yaml:"mode"` // staged or endless
	MaxWaves int    `yaml:"maxWaves"`

	FirstWaveCount int `yaml:"firstWaveCount"`
	RegularCount   int `yaml:"regularCount"`

	InitialCount int `yaml:"initialCount"`
	ExtraMin     int `yaml:"extraMin"`
	ExtraMax     int `yaml:"extraMax"`

	SoulThreshold int     `yaml:"soulThreshold"`
	SoulRadius    float64 `yaml:"soulRadius"`
	WaveDelay     float64 `yaml:"waveDelay"`

	RegularKinds []string `yaml:"regularKinds"`
	BossKind     string   `yaml:"bossKind"`

	BossGated      bool `yaml:"bossGated"`
	BossUnlockWave int  `yaml:"bossUnlockWave"`
}

// Variant returns the named variant, or the default one for an empty name
func (c *WavesConfig) Variant(name string) (WaveVariant, error) {
	if name == "" {
		name = c.Default
	}
	v, ok := c.Variants[name]
	if !ok {
		return WaveVariant{}, fmt.Errorf("unknown wave variant %q", name)
	}
	return v, nil
}

// validateWaves checks the shape of waves.yaml. Cross-field director rules are
// checked again when the director is built.
func validateWaves(cfg *WavesConfig) error {
	if len(cfg.Variants) == 0 {
		return fmt.Errorf("variants cannot be empty")
	}
	if _, ok := cfg.Variants[cfg.Default]; !ok {
		return fmt.Errorf("default variant %q is not defined", cfg.Default)
	}

	for name, v := range cfg.Variants {
		if err := validateVariant(v); err != nil {
			return fmt.Errorf("variant %s: %w", name, err)
		}
	}
	return nil
}

func validateVariant(v WaveVariant) error {
	switch v.Mode {
	case "staged":
		if v.MaxWaves < 1 {
			return fmt.Errorf("maxWaves must be >= 1 in staged mode, got %d", v.MaxWaves)
		}
		if v.FirstWaveCount < 1 || v.RegularCount < 1 {
			return fmt.Errorf("firstWaveCount and regularCount must be >= 1")
		}
		if v.BossKind == "" {
			return fmt.Errorf("bossKind is required in staged mode")
		}
	case "endless":
		if v.MaxWaves < 0 {
			return fmt.Errorf("maxWaves must be >= 0, got %d", v.MaxWaves)
		}
		if v.InitialCount < 1 {
			return fmt.Errorf("initialCount must be >= 1, got %d", v.InitialCount)
		}
		if v.ExtraMin < 0 || v.ExtraMax < v.ExtraMin {
			return fmt.Errorf("extra range [%d, %d] is invalid", v.ExtraMin, v.ExtraMax)
		}
	default:
		return fmt.Errorf("mode must be staged or endless, got %q", v.Mode)
	}

	if len(v.RegularKinds) == 0 {
		return fmt.Errorf("regularKinds cannot be empty")
	}
	if v.SoulThreshold < 0 {
		return fmt.Errorf("soulThreshold must be >= 0, got %d", v.SoulThreshold)
	}
	if v.SoulRadius < 0 || v.WaveDelay < 0 {
		return fmt.Errorf("soulRadius and waveDelay must be >= 0")
	}
	if v.BossGated && v.BossUnlockWave < 1 {
		return fmt.Errorf("bossUnlockWave must be >= 1 when bossGated, got %d", v.BossUnlockWave)
	}
	return nil
}
