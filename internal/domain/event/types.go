package event

const (
	AttackStarted      Type = "AttackStarted"
	AttackEnded        Type = "AttackEnded"
	StaggerStarted     Type = "StaggerStarted"
	StaggerEnded       Type = "StaggerEnded"
	EnemyDied          Type = "EnemyDied"
	EnemyRemoved       Type = "EnemyRemoved" // exit delay elapsed
	HealthChanged      Type = "HealthChanged"
	DamageRejected     Type = "DamageRejected"
	BossWarning        Type = "BossWarning"
	BossUnlocked       Type = "BossUnlocked"
	WaveStarted        Type = "WaveStarted"
	SoulPointCreated   Type = "SoulPointCreated"
	SoulPointCollected Type = "SoulPointCollected"
	GameCompleted      Type = "GameCompleted"
	ExitBlocked        Type = "ExitBlocked"
)
