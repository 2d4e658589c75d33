package system

import (
	"github.com/younwookim/soulwave/internal/domain/entity"
	"github.com/younwookim/soulwave/internal/domain/event"
)

// TallySource exposes the collected soul count
type TallySource interface {
	SoulTally() int
}

const taskBlockedNotice = "exit-blocked-notice"

// ExitGate lets the player leave the arena once enough souls were collected
type ExitGate struct {
	Pos           entity.Vec2
	Radius        float64
	RequiredSouls int
	NoticeTime    float64 // how long a blocked notice stays up

	tally  TallySource
	events *event.Dispatcher
	tasks  TaskList
}

// NewExitGate creates a gate reading the tally from tally
func NewExitGate(pos entity.Vec2, radius float64, requiredSouls int, noticeTime float64, tally TallySource, events *event.Dispatcher) *ExitGate {
	return &ExitGate{
		Pos:           pos,
		Radius:        radius,
		RequiredSouls: requiredSouls,
		NoticeTime:    noticeTime,
		tally:         tally,
		events:        events,
	}
}

// CanExit returns true once the tally reaches RequiredSouls
func (g *ExitGate) CanExit() bool {
	return g.tally.SoulTally() >= g.RequiredSouls
}

// Noticing returns true while a blocked notice is showing
func (g *ExitGate) Noticing() bool {
	return g.tasks.Active(taskBlockedNotice)
}

// TryExit reports whether a player at p may leave. A blocked attempt emits
// ExitBlocked once per notice period.
func (g *ExitGate) TryExit(p entity.Vec2) bool {
	if g.Pos.Dist(p) > g.Radius {
		return false
	}
	if g.CanExit() {
		return true
	}
	if !g.Noticing() {
		g.events.Dispatch(event.Event{
			Type:    event.ExitBlocked,
			Pos:     g.Pos,
			Tally:   g.tally.SoulTally(),
			Current: g.tally.SoulTally(),
			Max:     g.RequiredSouls,
		})
		g.tasks.Schedule(taskBlockedNotice, g.NoticeTime, nil)
	}
	return false
}

// Update advances the notice timer
func (g *ExitGate) Update(dt float64) {
	g.tasks.Update(dt)
}
