package schedulers

import "os-scheduler/internal/core"

// Lower priority values are more urgent.

func byArrivalThenPriority(a, b *core.RunState) bool {
	if a.Process.ArrivalTime != b.Process.ArrivalTime {
		return a.Process.ArrivalTime < b.Process.ArrivalTime
	}
	return a.Process.Priority < b.Process.Priority
}

func schedulePriorityNonPreemptive(runs []*core.RunState) *core.Cpu {
	return scheduleNonPreemptive(runs, byArrivalThenPriority)
}

func staticPriority(run *core.RunState) int {
	return run.Process.Priority
}

func schedulePriorityPreemptive(runs []*core.RunState) *core.Cpu {
	return schedulePreemptive(runs, staticPriority)
}
