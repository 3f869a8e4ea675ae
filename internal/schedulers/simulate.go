package schedulers

import (
	"fmt"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

const (
	DefaultQuantum   = 2
	DefaultAgingRate = 1

	// MaxHorizon bounds the latest arrival plus the total burst. The
	// timeline holds one state per process per unit up to that point.
	MaxHorizon = 1_000_000
)

// Config carries the settings of the time-sliced algorithms. A zero field
// means "not set" and takes the default; negative values are rejected.
type Config struct {
	Quantum   int
	AgingRate int
}

func DefaultConfig() Config {
	return Config{Quantum: DefaultQuantum, AgingRate: DefaultAgingRate}
}

func (c Config) resolve(algorithm Algorithm) (Config, error) {
	if c.Quantum == 0 {
		c.Quantum = DefaultQuantum
	}
	if c.AgingRate == 0 {
		c.AgingRate = DefaultAgingRate
	}
	if algorithm.NeedsQuantum() && c.Quantum < 1 {
		return c, fmt.Errorf("%w: quantum must be a positive integer, got %d", ErrInvalidConfig, c.Quantum)
	}
	if algorithm.NeedsAging() && c.AgingRate < 1 {
		return c, fmt.Errorf("%w: aging rate must be a positive integer, got %d", ErrInvalidConfig, c.AgingRate)
	}
	return c, nil
}

// Simulate runs one algorithm over processes. processes is never modified,
// and the call keeps no state, so concurrent callers need no coordination.
//
// Memory grows with len(processes) times the makespan, idle units included,
// so inputs whose latest arrival plus total burst exceeds MaxHorizon are
// rejected with ErrInvalidInput.
func Simulate(processes []core.Process, algorithm Algorithm, config Config) (responses.SimulationResult, error) {
	if err := validateProcesses(processes); err != nil {
		return responses.SimulationResult{}, err
	}
	if !algorithm.valid() {
		return responses.SimulationResult{}, fmt.Errorf("%w: unknown algorithm %s", ErrInvalidInput, algorithm)
	}
	config, err := config.resolve(algorithm)
	if err != nil {
		return responses.SimulationResult{}, err
	}

	runs := core.NewRunStates(processes)
	var cpu *core.Cpu
	switch algorithm {
	case FirstComeFirstServe:
		cpu = scheduleFirstComeFirstServe(runs)
	case ShortestJobFirst:
		cpu = scheduleShortestJobFirst(runs)
	case ShortestRemainingTimeFirst:
		cpu = scheduleShortestRemainingTimeFirst(runs)
	case PriorityNonPreemptive:
		cpu = schedulePriorityNonPreemptive(runs)
	case PriorityPreemptive:
		cpu = schedulePriorityPreemptive(runs)
	case RoundRobin:
		cpu = scheduleRoundRobin(runs, config.Quantum)
	case RoundRobinPriorityAging:
		cpu = scheduleRoundRobinPriorityAging(runs, config.Quantum, config.AgingRate)
	default:
		return responses.SimulationResult{}, fmt.Errorf("%w: no scheduler for %s", ErrInvalidInput, algorithm)
	}

	return generateResponse(algorithm, runs, cpu)
}

// SimulateByName is Simulate with the algorithm given by its identifier.
func SimulateByName(processes []core.Process, algorithmID string, config Config) (responses.SimulationResult, error) {
	if err := validateProcesses(processes); err != nil {
		return responses.SimulationResult{}, err
	}
	algorithm, err := ParseAlgorithm(algorithmID)
	if err != nil {
		return responses.SimulationResult{}, err
	}
	return Simulate(processes, algorithm, config)
}

// SimulateAll runs every algorithm in declaration order and stops at the
// first error.
func SimulateAll(processes []core.Process, config Config) ([]responses.SimulationResult, error) {
	results := make([]responses.SimulationResult, 0, len(algorithmInfos))
	for _, algorithm := range Algorithms() {
		result, err := Simulate(processes, algorithm, config)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func validateProcesses(processes []core.Process) error {
	if len(processes) == 0 {
		return fmt.Errorf("%w: no processes given", ErrInvalidInput)
	}
	seen := make(map[int]struct{}, len(processes))
	latestArrival, totalBurst := 0, 0
	for i, p := range processes {
		switch {
		case p.ID < 1:
			return fmt.Errorf("%w: process #%d: id must be positive, got %d", ErrInvalidInput, i+1, p.ID)
		case p.ArrivalTime < 0:
			return fmt.Errorf("%w: process %d: arrival time must not be negative, got %d", ErrInvalidInput, p.ID, p.ArrivalTime)
		case p.BurstDuration < 1:
			return fmt.Errorf("%w: process %d: burst duration must be at least 1, got %d", ErrInvalidInput, p.ID, p.BurstDuration)
		case p.Priority < 0:
			return fmt.Errorf("%w: process %d: priority must not be negative, got %d", ErrInvalidInput, p.ID, p.Priority)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.ArrivalTime > MaxHorizon || p.BurstDuration > MaxHorizon {
			return fmt.Errorf("%w: process %d: times must not exceed %d units", ErrInvalidInput, p.ID, MaxHorizon)
		}
		latestArrival = max(latestArrival, p.ArrivalTime)
		totalBurst += p.BurstDuration
	}
	if latestArrival+totalBurst > MaxHorizon {
		return fmt.Errorf("%w: latest arrival plus total burst is %d units, limit is %d",
			ErrInvalidInput, latestArrival+totalBurst, MaxHorizon)
	}
	return nil
}
