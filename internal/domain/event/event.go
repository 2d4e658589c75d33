// Package event carries the one-way signals the simulation core emits to
// presentation collaborators. Collaborators subscribe; nothing flows back.
package event

import "github.com/younwookim/soulwave/internal/domain/entity"

// Type names a signal
type Type string

// Event is a single signal. Only the fields relevant to Type are set.
type Event struct {
	Type    Type            `json:"type"`
	Tick    uint64          `json:"tick"`
	Entity  entity.EntityID `json:"entity,omitempty"`
	Wave    int             `json:"wave,omitempty"`
	Pos     entity.Vec2     `json:"pos"`
	Current int             `json:"current,omitempty"`
	Max     int             `json:"max,omitempty"`
	Tally   int             `json:"tally,omitempty"`
	Reason  string          `json:"reason,omitempty"`
}

// Listener receives dispatched events
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(e Event)

// OnEvent calls f(e)
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher fans events out to subscribers. A nil *Dispatcher is a valid
// sink that drops everything, so optional collaborators can be left out.
type Dispatcher struct {
	listeners map[Type][]Listener
	all       []Listener
	tick      uint64
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]Listener),
	}
}

// Subscribe registers l for one event type
func (d *Dispatcher) Subscribe(t Type, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// SubscribeAll registers l for every event type
func (d *Dispatcher) SubscribeAll(l Listener) {
	d.all = append(d.all, l)
}

// Unsubscribe removes l from one event type. l must be comparable (a pointer,
// not a ListenerFunc).
func (d *Dispatcher) Unsubscribe(t Type, l Listener) {
	listeners := d.listeners[t]
	for i, existing := range listeners {
		if existing == l {
			d.listeners[t] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// SetTick stamps subsequent events with the simulation tick
func (d *Dispatcher) SetTick(tick uint64) {
	if d == nil {
		return
	}
	d.tick = tick
}

// Dispatch sends e to its type subscribers, then to catch-all subscribers
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	e.Tick = d.tick
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
	for _, l := range d.all {
		l.OnEvent(e)
	}
}
