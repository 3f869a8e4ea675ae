package core

// State is what a process was doing during one simulated unit.
// StateCompleted fills every unit from the completion time to the end of the
// run, so a timeline keeps one entry per unit and its running entries add up
// to the burst.
type State string

const (
	StateIdle      State = "idle"
	StateWaiting   State = "waiting"
	StateRunning   State = "running"
	StateCompleted State = "completed"
)

// Entry is the recorded timeline of one process.
type Entry struct {
	ID     int
	States []State
}

// Timeline records one State per process per simulated unit. Every process
// always holds the same number of entries.
type Timeline struct {
	order  []int
	states map[int][]State
	length int
}

func NewTimeline(runs []*RunState) *Timeline {
	t := &Timeline{
		order:  make([]int, 0, len(runs)),
		states: make(map[int][]State, len(runs)),
	}
	for _, run := range runs {
		t.order = append(t.order, run.Process.ID)
		t.states[run.Process.ID] = make([]State, 0)
	}
	return t
}

// Record appends the states observed at unit now and returns the next unit.
// running may be nil when the CPU is idle.
func (t *Timeline) Record(now int, running *RunState, runs []*RunState) int {
	for _, run := range runs {
		id := run.Process.ID
		t.states[id] = append(t.states[id], stateAt(now, run, running))
	}
	t.length++
	return now + 1
}

func stateAt(now int, run, running *RunState) State {
	switch {
	case run == running:
		return StateRunning
	case run.Completed() && run.CompletionTime <= now:
		return StateCompleted
	case run.Arrived(now):
		return StateWaiting
	default:
		return StateIdle
	}
}

// Len is the number of recorded units.
func (t *Timeline) Len() int {
	return t.length
}

func (t *Timeline) States(id int) []State {
	return t.states[id]
}

// Entries returns the per-process timelines in input order.
func (t *Timeline) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, id := range t.order {
		states := make([]State, len(t.states[id]))
		copy(states, t.states[id])
		entries = append(entries, Entry{ID: id, States: states})
	}
	return entries
}
