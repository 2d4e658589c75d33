package system

// taskEpsilon absorbs float drift when summing many small dt values
const taskEpsilon = 1e-9

// Task is a named timer that resumes its callback once its duration has elapsed
type Task struct {
	Name     string
	Duration float64
	Elapsed  float64

	resume func()
	done   bool
}

// Remaining returns the seconds left before the task resumes
func (t *Task) Remaining() float64 {
	r := t.Duration - t.Elapsed
	if r < 0 {
		return 0
	}
	return r
}

// TaskList drives cooperative timed tasks from the simulation tick.
// Tasks never block; each Update advances every pending task by dt.
type TaskList struct {
	tasks []*Task
	due   []*Task // tasks being resumed by the current Update
}

// Schedule starts a task, replacing any pending task with the same name.
// A nil resume is allowed for pure timers such as cooldowns.
func (l *TaskList) Schedule(name string, duration float64, resume func()) *Task {
	l.Cancel(name)
	t := &Task{Name: name, Duration: duration, resume: resume}
	l.tasks = append(l.tasks, t)
	return t
}

// Cancel drops a pending task without resuming it, returns false if none was pending
func (l *TaskList) Cancel(name string) bool {
	for _, t := range l.due {
		if t.Name == name && !t.done {
			t.done = true
			return true
		}
	}
	for i, t := range l.tasks {
		if t.Name == name {
			t.done = true
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns true if a task with this name is pending
func (l *TaskList) Active(name string) bool {
	return l.Get(name) != nil
}

// Get returns the pending task with this name, or nil
func (l *TaskList) Get(name string) *Task {
	for _, t := range l.tasks {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Len returns the number of pending tasks
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Clear cancels every pending task
func (l *TaskList) Clear() {
	for _, t := range l.tasks {
		t.done = true
	}
	for _, t := range l.due {
		t.done = true
	}
	l.tasks = nil
}

// Update advances all pending tasks by dt and resumes the ones that are due,
// in scheduling order. Tasks scheduled from a resume start counting next tick.
func (l *TaskList) Update(dt float64) {
	if len(l.tasks) == 0 {
		return
	}

	var due []*Task
	kept := l.tasks[:0]
	for _, t := range l.tasks {
		t.Elapsed += dt
		if t.Elapsed+taskEpsilon >= t.Duration {
			due = append(due, t)
			continue
		}
		kept = append(kept, t)
	}
	l.tasks = kept

	l.due = due
	for _, t := range due {
		// An earlier resume may have cancelled it
		if t.done {
			continue
		}
		t.done = true
		if t.resume != nil {
			t.resume()
		}
	}
	l.due = nil
}
