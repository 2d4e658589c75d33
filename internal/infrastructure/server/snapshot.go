package server

import (
	"sync"

	"github.com/younwookim/soulwave/internal/application/system"
)

// Point is a JSON friendly world position
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EnemySnapshot is one enemy as seen by spectators
type EnemySnapshot struct {
	ID        uint32 `json:"id"`
	Kind      string `json:"kind"`
	Pos       Point  `json:"pos"`
	Health    int    `json:"health"`
	MaxHealth int    `json:"maxHealth"`
	State     string `json:"state"`
	Boss      bool   `json:"boss,omitempty"`
	Gated     bool   `json:"gated,omitempty"`
	Dead      bool   `json:"dead,omitempty"`
}

// SoulSnapshot is the active soul point
type SoulSnapshot struct {
	Pos    Point   `json:"pos"`
	Radius float64 `json:"radius"`
}

// Snapshot is a read-only copy of the arena taken between ticks
type Snapshot struct {
	Tick      uint64          `json:"tick"`
	Elapsed   float64         `json:"elapsed"`
	Phase     string          `json:"phase"`
	Wave      int             `json:"wave"`
	MaxWaves  int             `json:"maxWaves"`
	Souls     int             `json:"souls"`
	Completed bool            `json:"completed"`
	Player    Point           `json:"player"`
	Soul      *SoulSnapshot   `json:"soul,omitempty"`
	Enemies   []EnemySnapshot `json:"enemies"`
}

// Capture copies the simulation's read model. Call it from the simulation goroutine.
func Capture(sim *system.Simulation) Snapshot {
	d := sim.Director()
	w := sim.World()
	player := w.GetPlayerPosition()

	snap := Snapshot{
		Tick:      sim.TickCount(),
		Elapsed:   sim.Elapsed(),
		Phase:     d.Phase().String(),
		Wave:      d.CurrentWave(),
		MaxWaves:  d.Config().MaxWaves,
		Souls:     d.SoulTally(),
		Completed: d.Completed(),
		Player:    Point{X: player.X, Y: player.Y},
		Enemies:   make([]EnemySnapshot, 0, w.CountEnemies()),
	}

	if soul, ok := d.SoulPoint(); ok {
		snap.Soul = &SoulSnapshot{Pos: Point{X: soul.Pos.X, Y: soul.Pos.Y}, Radius: soul.Radius}
	}

	for _, id := range w.EnemyIDs() {
		pos := w.Position[id]
		health := w.Health[id]
		_, boss := w.IsBoss[id]
		_, dead := w.IsDead[id]
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			ID:        uint32(id),
			Kind:      string(w.Kind[id].Name),
			Pos:       Point{X: pos.X, Y: pos.Y},
			Health:    health.Current,
			MaxHealth: health.Max,
			State:     w.Behavior[id].State.String(),
			Boss:      boss,
			Gated:     w.Gate[id].Gated,
			Dead:      dead,
		})
	}
	return snap
}

// SnapshotStore hands the latest snapshot from the simulation goroutine to HTTP handlers
type SnapshotStore struct {
	mu    sync.RWMutex
	snap  Snapshot
	ready bool
}

// Publish replaces the stored snapshot
func (s *SnapshotStore) Publish(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.ready = true
}

// Latest returns the stored snapshot, false before the first Publish
func (s *SnapshotStore) Latest() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.ready
}
