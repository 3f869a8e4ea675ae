package responses

import "os-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"id"`
	ArrivalTime    int `json:"arrivalTime"`
	BurstDuration  int `json:"burstDuration"`
	Priority       int `json:"priority"`
	StartTime      int `json:"startTime"`
	CompletionTime int `json:"completionTime"`
	WaitingTime    int `json:"waitingTime"`
	TurnAroundTime int `json:"turnaroundTime"`
	ResponseTime   int `json:"responseTime"`
}

type DiagramProcess struct {
	ID       int          `json:"id"`
	Timeline []core.State `json:"timeline"`
}

type DiagramData struct {
	Processes []DiagramProcess `json:"processes"`
	Makespan  int              `json:"makespan"`
}

type SimulationResult struct {
	Algorithm             string            `json:"algorithm"`
	AverageTurnAroundTime float64           `json:"avgTurnaroundTime"`
	AverageWaitingTime    float64           `json:"avgWaitingTime"`
	AverageResponseTime   float64           `json:"avgResponseTime"`
	ContextSwitches       int               `json:"contextSwitches"`
	IdleTime              int               `json:"idleTime"`
	CpuUtilization        float64           `json:"cpuUtilization"`
	CpuThroughput         float64           `json:"throughput"`
	DiagramData           DiagramData       `json:"diagramData"`
	Details               []ProcessResponse `json:"details"`
}

// SimulateResponse is the body of a successful simulate call.
type SimulateResponse struct {
	Success bool `json:"success"`
	SimulationResult
	RawDiagram string `json:"rawDiagram"`
}

type AllResponse struct {
	Success bool               `json:"success"`
	Results []SimulationResult `json:"results"`
}

// AlgorithmInfo describes an algorithm for clients that let users pick one.
type AlgorithmInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Preemptive   bool   `json:"preemptive"`
	NeedsQuantum bool   `json:"needsQuantum,omitempty"`
	NeedsAging   bool   `json:"needsAging,omitempty"`
}

type AlgorithmsResponse struct {
	Algorithms []AlgorithmInfo `json:"algorithms"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
