package requests

import (
	"fmt"

	"os-scheduler/internal/core"
	"os-scheduler/internal/schedulers"
)

// Job is one process as sent by clients. ID may be omitted, in which case
// jobs are numbered 1..n in request order.
type Job struct {
	ProcessId     int `json:"id"`
	ArrivalTime   int `json:"arrivalTime"`
	BurstDuration int `json:"burstDuration"`
	Priority      int `json:"priority"`
}

// ScheduleConfig fields are optional; absent fields take the engine defaults.
type ScheduleConfig struct {
	Quantum   *int `json:"quantum,omitempty"`
	AgingRate *int `json:"agingRate,omitempty"`
}

type ScheduleRequests struct {
	Jobs      []Job           `json:"processes"`
	Algorithm string          `json:"algorithm"`
	Config    *ScheduleConfig `json:"config,omitempty"`
}

// Processes converts the jobs into engine input.
func (r *ScheduleRequests) Processes() []core.Process {
	assignIDs := true
	for _, job := range r.Jobs {
		if job.ProcessId != 0 {
			assignIDs = false
			break
		}
	}

	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		id := job.ProcessId
		if assignIDs {
			id = i + 1
		}
		processes = append(processes, core.Process{
			ID:            id,
			ArrivalTime:   job.ArrivalTime,
			BurstDuration: job.BurstDuration,
			Priority:      job.Priority,
		})
	}
	return processes
}

// SchedulerConfig merges the request config over defaults. A present field
// must be positive when one of the algorithms uses it.
func (r *ScheduleRequests) SchedulerConfig(defaults schedulers.Config, algorithms ...schedulers.Algorithm) (schedulers.Config, error) {
	config := defaults
	if r.Config == nil {
		return config, nil
	}
	var needsQuantum, needsAging bool
	for _, algorithm := range algorithms {
		needsQuantum = needsQuantum || algorithm.NeedsQuantum()
		needsAging = needsAging || algorithm.NeedsAging()
	}
	if r.Config.Quantum != nil && needsQuantum {
		if *r.Config.Quantum < 1 {
			return config, fmt.Errorf("%w: quantum must be a positive integer, got %d", schedulers.ErrInvalidConfig, *r.Config.Quantum)
		}
		config.Quantum = *r.Config.Quantum
	}
	if r.Config.AgingRate != nil && needsAging {
		if *r.Config.AgingRate < 1 {
			return config, fmt.Errorf("%w: aging rate must be a positive integer, got %d", schedulers.ErrInvalidConfig, *r.Config.AgingRate)
		}
		config.AgingRate = *r.Config.AgingRate
	}
	return config, nil
}
