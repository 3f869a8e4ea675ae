package schedulers

import (
	"sort"

	"os-scheduler/internal/core"
)

// readyQueue is the round robin FIFO. Arrivals are admitted as the clock
// passes their arrival time.
type readyQueue struct {
	pending []*core.RunState
	queue   []*core.RunState
}

func newReadyQueue(runs []*core.RunState) *readyQueue {
	pending := make([]*core.RunState, len(runs))
	copy(pending, runs)
	sort.SliceStable(pending, func(i, j int) bool {
		return byArrival(pending[i], pending[j])
	})
	return &readyQueue{pending: pending, queue: make([]*core.RunState, 0, len(runs))}
}

func (q *readyQueue) admit(now int) {
	for len(q.pending) > 0 && q.pending[0].Arrived(now) {
		q.queue = append(q.queue, q.pending[0])
		q.pending = q.pending[1:]
	}
}

func (q *readyQueue) push(run *core.RunState) {
	q.queue = append(q.queue, run)
}

func (q *readyQueue) remove(i int) *core.RunState {
	run := q.queue[i]
	q.queue = append(q.queue[:i], q.queue[i+1:]...)
	return run
}

func (q *readyQueue) empty() bool {
	return len(q.queue) == 0
}

// mostUrgent is the queue position with the lowest effective priority; the
// earlier position wins ties.
func (q *readyQueue) mostUrgent() int {
	best := 0
	for i, run := range q.queue {
		if run.EffectivePriority < q.queue[best].EffectivePriority {
			best = i
		}
	}
	return best
}

// age makes every queued process agingRate more urgent, never below zero.
func (q *readyQueue) age(agingRate int) {
	for _, run := range q.queue {
		run.EffectivePriority -= agingRate
		if run.EffectivePriority < 0 {
			run.EffectivePriority = 0
		}
	}
}

func scheduleRoundRobin(runs []*core.RunState, quantum int) *core.Cpu {
	return scheduleTimeSliced(runs, quantum, 0)
}

func scheduleRoundRobinPriorityAging(runs []*core.RunState, quantum, agingRate int) *core.Cpu {
	return scheduleTimeSliced(runs, quantum, agingRate)
}

// scheduleTimeSliced runs round robin. With a positive agingRate the next
// slice goes to the most urgent queued process instead of the queue head, and
// processes left waiting after each slice are aged.
func scheduleTimeSliced(runs []*core.RunState, quantum, agingRate int) *core.Cpu {
	cpu := core.NewCpu(runs)
	ready := newReadyQueue(runs)

	for !cpu.Done() {
		ready.admit(cpu.Clock)
		if ready.empty() {
			cpu.Idle()
			continue
		}

		next := 0
		if agingRate > 0 {
			next = ready.mostUrgent()
		}
		run := ready.remove(next)
		cpu.Dispatch(run)

		completed := false
		for slice := 0; slice < quantum && !completed; slice++ {
			ready.admit(cpu.Clock)
			completed = cpu.Execute(run)
		}

		if agingRate > 0 {
			ready.age(agingRate)
		}
		if !completed {
			run.EffectivePriority = run.Process.Priority
			ready.push(run)
		}
	}
	return cpu
}
