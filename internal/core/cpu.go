package core

// CpuMetric counts simulated units spent busy and idle.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single simulated core. It owns the virtual clock and the timeline
// of one run; schedulers decide what it executes.
type Cpu struct {
	Clock int

	runs       []*RunState
	timeline   *Timeline
	metric     CpuMetric
	last       *RunState
	dispatches int
}

func NewCpu(runs []*RunState) *Cpu {
	return &Cpu{
		runs:     runs,
		timeline: NewTimeline(runs),
	}
}

// Dispatch hands the CPU to run. A dispatch only counts towards context
// switches when it changes the process holding the CPU.
func (c *Cpu) Dispatch(run *RunState) {
	if run.FirstStartTime < 0 {
		run.FirstStartTime = c.Clock
	}
	if c.last != run {
		c.dispatches++
		c.last = run
	}
}

// Execute runs the process for one unit and reports whether it completed.
func (c *Cpu) Execute(run *RunState) bool {
	c.Clock = c.timeline.Record(c.Clock, run, c.runs)
	c.metric.UtilizationTime++
	run.RemainingTime--
	if run.RemainingTime == 0 {
		run.CompletionTime = c.Clock
		return true
	}
	return false
}

// Idle lets one unit pass with nothing running.
func (c *Cpu) Idle() {
	c.Clock = c.timeline.Record(c.Clock, nil, c.runs)
	c.metric.IdleTime++
}

// IdleUntil idles until the clock reaches unit.
func (c *Cpu) IdleUntil(unit int) {
	for c.Clock < unit {
		c.Idle()
	}
}

// ContextSwitches is the number of dispatches that replaced another process.
// The very first dispatch is free.
func (c *Cpu) ContextSwitches() int {
	if c.dispatches == 0 {
		return 0
	}
	return c.dispatches - 1
}

func (c *Cpu) Metric() CpuMetric {
	metric := c.metric
	metric.TotalTime = c.Clock
	return metric
}

func (c *Cpu) Timeline() *Timeline {
	return c.timeline
}

// Done reports whether every process of the run has completed.
func (c *Cpu) Done() bool {
	for _, run := range c.runs {
		if !run.Completed() {
			return false
		}
	}
	return true
}
