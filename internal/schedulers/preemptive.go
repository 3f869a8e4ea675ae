package schedulers

import "os-scheduler/internal/core"

// keyFunc extracts the value a preemptive scheduler minimises.
type keyFunc func(run *core.RunState) int

// schedulePreemptive re-elects the running process every unit, so a newly
// arrived process with a better key takes over immediately.
func schedulePreemptive(runs []*core.RunState, key keyFunc) *core.Cpu {
	cpu := core.NewCpu(runs)
	for !cpu.Done() {
		next := electPreemptive(runs, cpu.Clock, key)
		if next == nil {
			cpu.Idle()
			continue
		}
		cpu.Dispatch(next)
		cpu.Execute(next)
	}
	return cpu
}

// electPreemptive returns the ready process with the smallest key. Ties go to
// the earliest arrival, then to input order. It returns nil if none is ready.
func electPreemptive(runs []*core.RunState, now int, key keyFunc) *core.RunState {
	var best *core.RunState
	for _, run := range runs {
		if !run.Ready(now) {
			continue
		}
		if best == nil || preferred(run, best, key) {
			best = run
		}
	}
	return best
}

// runs are visited in input order, so equal candidates keep the earlier one.
func preferred(a, b *core.RunState, key keyFunc) bool {
	if ka, kb := key(a), key(b); ka != kb {
		return ka < kb
	}
	return a.Process.ArrivalTime < b.Process.ArrivalTime
}
