package system

import (
	"fmt"

	"github.com/younwookim/soulwave/internal/domain/entity"
	"github.com/younwookim/soulwave/internal/domain/event"
	"github.com/younwookim/soulwave/internal/infrastructure/config"
)

// LoadArena converts a StageConfig into an Arena entity
func LoadArena(cfg *config.StageConfig) (*entity.Arena, error) {
	arena := &entity.Arena{
		Width:       cfg.Size.Width,
		Height:      cfg.Size.Height,
		PlayerSpawn: entity.Vec2{X: cfg.PlayerSpawn.X, Y: cfg.PlayerSpawn.Y},
		SpawnPoints: make([]entity.SpawnPoint, 0, len(cfg.SpawnPoints)),
	}

	for i, sp := range cfg.SpawnPoints {
		var kind entity.SpawnKind
		switch sp.Kind {
		case "regular", "":
			kind = entity.SpawnRegular
		case "boss":
			kind = entity.SpawnBoss
		default:
			return nil, fmt.Errorf("stage %s: spawn point %d has unknown kind %q", cfg.ID, i, sp.Kind)
		}
		arena.SpawnPoints = append(arena.SpawnPoints, entity.SpawnPoint{
			Pos:  entity.Vec2{X: sp.X, Y: sp.Y},
			Kind: kind,
		})
	}

	return arena, nil
}

// LoadCatalog converts entities.json enemies into per-kind stats
func LoadCatalog(cfg *config.EntitiesConfig) map[entity.EnemyKind]entity.EnemyStats {
	catalog := make(map[entity.EnemyKind]entity.EnemyStats, len(cfg.Enemies))
	for name, e := range cfg.Enemies {
		catalog[entity.EnemyKind(name)] = entity.EnemyStats{
			MaxHealth:       e.Stats.MaxHealth,
			Boss:            e.Boss,
			MoveSpeed:       e.Stats.MoveSpeed,
			DashSpeed:       e.AI.DashSpeed,
			DashDuration:    e.AI.DashDuration,
			AttackRadius:    e.AI.AttackRadius,
			AttackCooldown:  e.AI.AttackCooldown,
			DetectionRadius: e.AI.DetectionRadius,
			RoamingRadius:   e.AI.RoamingRadius,
			RoamInterval:    e.AI.RoamInterval,
			StaggerDuration: e.Stats.StaggerDuration,
			KnockbackSpeed:  e.Stats.KnockbackSpeed,
			WarningCooldown: e.AI.WarningCooldown,
			ExitDelay:       e.Stats.ExitDelay,
		}
	}
	return catalog
}

// LoadDirectorConfig builds a director configuration from a waves.yaml variant
// and the arena's spawn points
func LoadDirectorConfig(v config.WaveVariant, arena *entity.Arena) (DirectorConfig, error) {
	mode, err := ParseMode(v.Mode)
	if err != nil {
		return DirectorConfig{}, err
	}

	kinds := make([]entity.EnemyKind, len(v.RegularKinds))
	for i, k := range v.RegularKinds {
		kinds[i] = entity.EnemyKind(k)
	}

	return DirectorConfig{
		Mode:           mode,
		MaxWaves:       v.MaxWaves,
		FirstWaveCount: v.FirstWaveCount,
		RegularCount:   v.RegularCount,
		InitialCount:   v.InitialCount,
		ExtraMin:       v.ExtraMin,
		ExtraMax:       v.ExtraMax,
		SoulThreshold:  v.SoulThreshold,
		SoulRadius:     v.SoulRadius,
		WaveDelay:      v.WaveDelay,
		RegularKinds:   kinds,
		BossKind:       entity.EnemyKind(v.BossKind),
		RegularPoints:  arena.Points(entity.SpawnRegular),
		BossPoints:     arena.Points(entity.SpawnBoss),
		BossGated:      v.BossGated,
		BossUnlockWave: v.BossUnlockWave,
	}, nil
}

// LoadCombatTables converts the combat section into tag and damage tables.
// Empty sections fall back to the defaults.
func LoadCombatTables(cfg config.CombatConfig) (entity.TagTable, entity.DamageTable, error) {
	tags := entity.DefaultTagTable()
	if len(cfg.Tags) > 0 {
		tags.Sources = make(map[string]entity.DamageSource, len(cfg.Tags))
		for tag, name := range cfg.Tags {
			src, err := entity.ParseDamageSource(name)
			if err != nil {
				return entity.TagTable{}, nil, fmt.Errorf("tag %q: %w", tag, err)
			}
			tags.Sources[tag] = src
		}
	}
	if cfg.PlayerTag != "" {
		tags.PlayerTag = cfg.PlayerTag
	}

	damage := entity.DefaultDamageTable()
	for name, amount := range cfg.Damage {
		src, err := entity.ParseDamageSource(name)
		if err != nil {
			return entity.TagTable{}, nil, fmt.Errorf("damage %q: %w", name, err)
		}
		if amount < 0 {
			return entity.TagTable{}, nil, fmt.Errorf("damage %q: amount %d is negative", name, amount)
		}
		damage[src] = amount
	}

	return tags, damage, nil
}

// LoadPlayer creates the player at the arena spawn and its action set
func LoadPlayer(cfg config.PlayerConfig, arena *entity.Arena) (*entity.Player, PlayerActions) {
	player := entity.NewPlayer(arena.PlayerSpawn, cfg.Speed, cfg.StrikeRadius, cfg.StrikeCooldown)

	actions := DefaultPlayerActions()
	if cfg.SwordTag != "" {
		actions.SwordTag = cfg.SwordTag
	}
	if cfg.SkillTag != "" {
		actions.SkillTag = cfg.SkillTag
	}
	if cfg.SkillRadius > 0 {
		actions.SkillRadius = cfg.SkillRadius
	}
	if cfg.SkillCooldown > 0 {
		actions.SkillCooldown = cfg.SkillCooldown
	}
	return player, actions
}

// LoadExitGate creates the stage's exit gate, or nil if the stage has none
func LoadExitGate(cfg *config.StageConfig, tally TallySource, events *event.Dispatcher) *ExitGate {
	if cfg.Exit == nil {
		return nil
	}
	return NewExitGate(
		entity.Vec2{X: cfg.Exit.X, Y: cfg.Exit.Y},
		cfg.Exit.Radius,
		cfg.Exit.RequiredSouls,
		cfg.Exit.NoticeTime,
		tally,
		events,
	)
}
