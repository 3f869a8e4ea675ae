package schedulers

import (
	"sort"

	"os-scheduler/internal/core"
)

// lessFunc orders two run states for the non-preemptive schedulers.
type lessFunc func(a, b *core.RunState) bool

func byArrival(a, b *core.RunState) bool {
	return a.Process.ArrivalTime < b.Process.ArrivalTime
}

func scheduleFirstComeFirstServe(runs []*core.RunState) *core.Cpu {
	return scheduleNonPreemptive(runs, byArrival)
}

// scheduleNonPreemptive sorts the jobs once and runs each one to completion.
// The sort is stable, so input order breaks remaining ties.
func scheduleNonPreemptive(runs []*core.RunState, less lessFunc) *core.Cpu {
	jobs := make([]*core.RunState, len(runs))
	copy(jobs, runs)
	sort.SliceStable(jobs, func(i, j int) bool {
		return less(jobs[i], jobs[j])
	})

	cpu := core.NewCpu(runs)
	for _, job := range jobs {
		cpu.IdleUntil(job.Process.ArrivalTime)
		cpu.Dispatch(job)
		for !cpu.Execute(job) {
		}
	}
	return cpu
}
