package schedulers

import (
	"fmt"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

func generateResponse(algorithm Algorithm, runs []*core.RunState, cpu *core.Cpu) (responses.SimulationResult, error) {
	proccessDetails := make([]responses.ProcessResponse, 0, len(runs))
	for _, run := range runs {
		if !run.Completed() {
			return responses.SimulationResult{}, fmt.Errorf("%w: %s stopped with process %d at %d remaining units",
				ErrIncompleteRun, algorithm, run.Process.ID, run.RemainingTime)
		}
		proccessDetails = append(proccessDetails, generateProcessDetails(run))
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)

	metric := cpu.Metric()
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(len(runs)) / float64(metric.TotalTime)
	}

	return responses.SimulationResult{
		Algorithm:             algorithm.String(),
		AverageTurnAroundTime: averageTurnAroundTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		ContextSwitches:       cpu.ContextSwitches(),
		IdleTime:              metric.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		DiagramData:           generateDiagramData(cpu.Timeline()),
		Details:               proccessDetails,
	}, nil
}

func generateProcessDetails(run *core.RunState) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      run.Process.ID,
		ArrivalTime:    run.Process.ArrivalTime,
		BurstDuration:  run.Process.BurstDuration,
		Priority:       run.Process.Priority,
		StartTime:      run.FirstStartTime,
		CompletionTime: run.CompletionTime,
		WaitingTime:    run.WaitingTime(),
		TurnAroundTime: run.TurnaroundTime(),
		ResponseTime:   run.ResponseTime(),
	}
}

func generateDiagramData(timeline *core.Timeline) responses.DiagramData {
	entries := timeline.Entries()
	processes := make([]responses.DiagramProcess, 0, len(entries))
	for _, entry := range entries {
		processes = append(processes, responses.DiagramProcess{
			ID:       entry.ID,
			Timeline: entry.States,
		})
	}
	return responses.DiagramData{
		Processes: processes,
		Makespan:  timeline.Len(),
	}
}
