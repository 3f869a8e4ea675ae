package schedulers

import (
	"fmt"
	"strings"

	"os-scheduler/internal/responses"
)

// Algorithm selects one scheduling policy. The set is closed; Simulate
// switches over every value.
type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota
	ShortestJobFirst
	ShortestRemainingTimeFirst
	PriorityNonPreemptive
	PriorityPreemptive
	RoundRobin
	RoundRobinPriorityAging
)

var algorithmInfos = [...]responses.AlgorithmInfo{
	FirstComeFirstServe: {
		ID:          "FCFS",
		Name:        "First-Come First-Served",
		Description: "Processes run in order of arrival",
	},
	ShortestJobFirst: {
		ID:          "SJF",
		Name:        "Shortest Job First",
		Description: "Among simultaneous arrivals the shortest burst runs first",
	},
	ShortestRemainingTimeFirst: {
		ID:          "SRTF",
		Name:        "Shortest Remaining Time First",
		Description: "Preemptive SJF: the least remaining work runs every unit",
		Preemptive:  true,
	},
	PriorityNonPreemptive: {
		ID:          "PriorityNP",
		Name:        "Priority (Non-Preemptive)",
		Description: "Among simultaneous arrivals the most urgent priority runs first",
	},
	PriorityPreemptive: {
		ID:          "PriorityP",
		Name:        "Priority (Preemptive)",
		Description: "The most urgent ready process runs every unit",
		Preemptive:  true,
	},
	RoundRobin: {
		ID:           "RoundRobin",
		Name:         "Round Robin",
		Description:  "FIFO time slices of one quantum",
		Preemptive:   true,
		NeedsQuantum: true,
	},
	RoundRobinPriorityAging: {
		ID:           "RoundRobinPriorityAging",
		Name:         "Round Robin with Priority Aging",
		Description:  "Time slices go to the most urgent process; waiting processes gain priority",
		Preemptive:   true,
		NeedsQuantum: true,
		NeedsAging:   true,
	},
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	all := make([]Algorithm, 0, len(algorithmInfos))
	for i := range algorithmInfos {
		all = append(all, Algorithm(i))
	}
	return all
}

// AlgorithmCatalogue returns the descriptions of every algorithm.
func AlgorithmCatalogue() []responses.AlgorithmInfo {
	infos := make([]responses.AlgorithmInfo, len(algorithmInfos))
	copy(infos, algorithmInfos[:])
	return infos
}

// ParseAlgorithm maps an identifier such as "SRTF" to its Algorithm.
// Matching ignores case.
func ParseAlgorithm(id string) (Algorithm, error) {
	for i, info := range algorithmInfos {
		if strings.EqualFold(info.ID, strings.TrimSpace(id)) {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, id)
}

func (a Algorithm) valid() bool {
	return a >= 0 && int(a) < len(algorithmInfos)
}

func (a Algorithm) Info() responses.AlgorithmInfo {
	if !a.valid() {
		return responses.AlgorithmInfo{ID: a.String()}
	}
	return algorithmInfos[a]
}

func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmInfos[a].ID
}

func (a Algorithm) NeedsQuantum() bool {
	return a.Info().NeedsQuantum
}

func (a Algorithm) NeedsAging() bool {
	return a.Info().NeedsAging
}
