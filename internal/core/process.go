package core

// Process is the immutable description of one job handed to the simulator.
// Lower Priority values are more urgent.
type Process struct {
	ID            int
	ArrivalTime   int
	BurstDuration int
	Priority      int
}

// RunState is the mutable bookkeeping a single run keeps for one Process.
// FirstStartTime and CompletionTime are -1 until set.
type RunState struct {
	Process           Process
	Index             int // position in the caller's input
	RemainingTime     int
	FirstStartTime    int
	CompletionTime    int
	EffectivePriority int
}

func NewRunState(process Process, index int) *RunState {
	return &RunState{
		Process:           process,
		Index:             index,
		RemainingTime:     process.BurstDuration,
		FirstStartTime:    -1,
		CompletionTime:    -1,
		EffectivePriority: process.Priority,
	}
}

func (r *RunState) Arrived(now int) bool {
	return r.Process.ArrivalTime <= now
}

func (r *RunState) Completed() bool {
	return r.CompletionTime >= 0
}

// Ready reports whether the process can be dispatched at unit now.
func (r *RunState) Ready(now int) bool {
	return r.Arrived(now) && !r.Completed()
}

func (r *RunState) TurnaroundTime() int {
	return r.CompletionTime - r.Process.ArrivalTime
}

func (r *RunState) WaitingTime() int {
	return r.TurnaroundTime() - r.Process.BurstDuration
}

func (r *RunState) ResponseTime() int {
	return r.FirstStartTime - r.Process.ArrivalTime
}

// NewRunStates copies processes into fresh run records, preserving input order.
func NewRunStates(processes []Process) []*RunState {
	runs := make([]*RunState, 0, len(processes))
	for i, p := range processes {
		runs = append(runs, NewRunState(p, i))
	}
	return runs
}
