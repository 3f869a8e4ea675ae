package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCpu_ExecuteAndIdle(t *testing.T) {
	runs := NewRunStates([]Process{
		{ID: 1, ArrivalTime: 1, BurstDuration: 2},
		{ID: 2, ArrivalTime: 2, BurstDuration: 1},
	})
	cpu := NewCpu(runs)

	cpu.IdleUntil(1)
	cpu.Dispatch(runs[0])
	assert.False(t, cpu.Execute(runs[0]))
	assert.True(t, cpu.Execute(runs[0]))
	cpu.Dispatch(runs[1])
	assert.True(t, cpu.Execute(runs[1]))

	require.True(t, cpu.Done())
	assert.Equal(t, 4, cpu.Clock)
	assert.Equal(t, 1, runs[0].FirstStartTime)
	assert.Equal(t, 3, runs[0].CompletionTime)
	assert.Equal(t, 4, runs[1].CompletionTime)
	assert.Equal(t, 1, cpu.ContextSwitches())
	assert.Equal(t, CpuMetric{TotalTime: 4, UtilizationTime: 3, IdleTime: 1}, cpu.Metric())

	assert.Equal(t, []State{StateIdle, StateRunning, StateRunning, StateCompleted}, cpu.Timeline().States(1))
	assert.Equal(t, []State{StateIdle, StateIdle, StateWaiting, StateRunning}, cpu.Timeline().States(2))
}

func TestCpu_RedispatchOfSameProcessIsNotASwitch(t *testing.T) {
	runs := NewRunStates([]Process{{ID: 9, BurstDuration: 3}})
	cpu := NewCpu(runs)

	for !runs[0].Completed() {
		cpu.Dispatch(runs[0])
		cpu.Execute(runs[0])
	}
	assert.Equal(t, 0, cpu.ContextSwitches())
	assert.Equal(t, 0, runs[0].FirstStartTime)
}

func TestCpu_NoDispatchNoSwitch(t *testing.T) {
	cpu := NewCpu(nil)
	assert.Equal(t, 0, cpu.ContextSwitches())
	assert.True(t, cpu.Done())
}

func TestTimeline_CompletedFillsRemainingUnits(t *testing.T) {
	runs := NewRunStates([]Process{
		{ID: 1, BurstDuration: 1},
		{ID: 2, ArrivalTime: 3, BurstDuration: 1},
	})
	cpu := NewCpu(runs)

	cpu.Dispatch(runs[0])
	require.True(t, cpu.Execute(runs[0]))
	cpu.IdleUntil(3)
	cpu.Dispatch(runs[1])
	require.True(t, cpu.Execute(runs[1]))

	assert.Equal(t, []State{StateRunning, StateCompleted, StateCompleted, StateCompleted}, cpu.Timeline().States(1))
	assert.Equal(t, []State{StateIdle, StateIdle, StateIdle, StateRunning}, cpu.Timeline().States(2))
	assert.Equal(t, 4, cpu.Timeline().Len())
}

func TestTimeline_EntriesAreCopies(t *testing.T) {
	runs := NewRunStates([]Process{{ID: 4, BurstDuration: 1}, {ID: 2, BurstDuration: 1}})
	timeline := NewTimeline(runs)
	timeline.Record(0, runs[1], runs)

	entries := timeline.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 4, entries[0].ID)
	assert.Equal(t, 2, entries[1].ID)
	assert.Equal(t, []State{StateWaiting}, entries[0].States)

	entries[0].States[0] = StateCompleted
	assert.Equal(t, []State{StateWaiting}, timeline.States(4))
	assert.Equal(t, 1, timeline.Len())
}

func TestRunState_Times(t *testing.T) {
	run := NewRunState(Process{ID: 1, ArrivalTime: 2, BurstDuration: 3, Priority: 4}, 0)
	assert.False(t, run.Ready(1))
	assert.True(t, run.Ready(2))
	assert.Equal(t, 4, run.EffectivePriority)

	run.FirstStartTime = 5
	run.CompletionTime = 9
	assert.False(t, run.Ready(10))
	assert.Equal(t, 7, run.TurnaroundTime())
	assert.Equal(t, 4, run.WaitingTime())
	assert.Equal(t, 3, run.ResponseTime())
}
