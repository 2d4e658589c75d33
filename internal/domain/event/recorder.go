package event

// Recorder is a Listener that keeps every event it sees, in order
type Recorder struct {
	Events []Event
}

// NewRecorder creates a recorder subscribed to every event on d
func NewRecorder(d *Dispatcher) *Recorder {
	r := &Recorder{}
	d.SubscribeAll(r)
	return r
}

// OnEvent records e
func (r *Recorder) OnEvent(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns how many events of type t were recorded
func (r *Recorder) Count(t Type) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Of returns the recorded events of type t
func (r *Recorder) Of(t Type) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Last returns the most recent event of type t
func (r *Recorder) Last(t Type) (Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Type == t {
			return r.Events[i], true
		}
	}
	return Event{}, false
}

// Reset forgets everything recorded so far
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
