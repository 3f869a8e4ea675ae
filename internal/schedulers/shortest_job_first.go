package schedulers

import "os-scheduler/internal/core"

func byArrivalThenBurst(a, b *core.RunState) bool {
	if a.Process.ArrivalTime != b.Process.ArrivalTime {
		return a.Process.ArrivalTime < b.Process.ArrivalTime
	}
	return a.Process.BurstDuration < b.Process.BurstDuration
}

// scheduleShortestJobFirst never interrupts a started job, even when a
// shorter one arrives meanwhile.
func scheduleShortestJobFirst(runs []*core.RunState) *core.Cpu {
	return scheduleNonPreemptive(runs, byArrivalThenBurst)
}

func remainingTime(run *core.RunState) int {
	return run.RemainingTime
}

func scheduleShortestRemainingTimeFirst(runs []*core.RunState) *core.Cpu {
	return schedulePreemptive(runs, remainingTime)
}
