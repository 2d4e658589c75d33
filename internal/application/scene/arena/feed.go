package arena

import (
	"fmt"

	"github.com/younwookim/soulwave/internal/domain/event"
)

// FeedLine is one message in the HUD's event feed
type FeedLine struct {
	Text string
	Age  float64 // seconds since it was posted
}

// Feed keeps the latest player-facing simulation messages for the HUD
type Feed struct {
	lines []FeedLine
	max   int
	ttl   float64
}

// NewFeed creates a feed holding at most limit lines, each shown for ttl seconds
func NewFeed(limit int, ttl float64) *Feed {
	return &Feed{max: limit, ttl: ttl}
}

// OnEvent posts a line for the events a player should notice
func (f *Feed) OnEvent(e event.Event) {
	text, ok := describe(e)
	if !ok {
		return
	}
	f.lines = append(f.lines, FeedLine{Text: text})
	if len(f.lines) > f.max {
		f.lines = f.lines[len(f.lines)-f.max:]
	}
}

// Update ages lines and drops expired ones
func (f *Feed) Update(dt float64) {
	kept := f.lines[:0]
	for _, l := range f.lines {
		l.Age += dt
		if l.Age < f.ttl {
			kept = append(kept, l)
		}
	}
	f.lines = kept
}

// Lines returns the visible lines, oldest first
func (f *Feed) Lines() []FeedLine {
	return f.lines
}

func describe(e event.Event) (string, bool) {
	switch e.Type {
	case event.WaveStarted:
		if e.Max > 0 {
			return fmt.Sprintf("Wave %d/%d: %d enemies", e.Wave, e.Max, e.Current), true
		}
		return fmt.Sprintf("Wave %d: %d enemies", e.Wave, e.Current), true
	case event.SoulPointCreated:
		return "A soul appeared", true
	case event.SoulPointCollected:
		return fmt.Sprintf("Soul collected (%d)", e.Tally), true
	case event.BossUnlocked:
		return "The guardian is vulnerable", true
	case event.BossWarning:
		return "The guardian shrugs off the blow", true
	case event.GameCompleted:
		return fmt.Sprintf("All waves cleared with %d souls", e.Tally), true
	case event.ExitBlocked:
		return fmt.Sprintf("The gate needs %d souls (%d/%d)", e.Max, e.Current, e.Max), true
	}
	return "", false
}
