package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"os-scheduler/internal/core"
	"os-scheduler/internal/render"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/pkg/client"
)

var ErrInvalidArgs = errors.New("invalid args")

type options struct {
	algorithm string
	quantum   int
	aging     int
	server    string
	file      string
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(opts.file)
	if err != nil {
		log.Fatalf("%v: error opening scheduling file", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Fatalf("%v: error closing scheduling file", err)
		}
	}()

	processes, err := loadProcesses(f)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(os.Stdout, opts, processes); err != nil {
		log.Fatal(err)
	}
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("schedctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.algorithm, "algorithm", "all", "algorithm id (FCFS, SJF, SRTF, PriorityNP, PriorityP, RoundRobin, RoundRobinPriorityAging) or all")
	fs.IntVar(&opts.quantum, "quantum", schedulers.DefaultQuantum, "round robin time quantum")
	fs.IntVar(&opts.aging, "aging", schedulers.DefaultAgingRate, "priority aging rate")
	fs.StringVar(&opts.server, "server", "", "scheduler API base URL; simulate locally when empty")
	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if fs.NArg() != 1 {
		return opts, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	opts.file = fs.Arg(0)
	return opts, nil
}

func run(w io.Writer, opts options, processes []core.Process) error {
	results, err := simulate(opts, processes)
	if err != nil {
		return err
	}
	for _, result := range results {
		render.Result(w, result)
	}
	return nil
}

func simulate(opts options, processes []core.Process) ([]responses.SimulationResult, error) {
	all := strings.EqualFold(opts.algorithm, "all")
	request := toRequest(processes, opts)

	if opts.server == "" {
		algorithms := schedulers.Algorithms()
		if !all {
			algorithm, err := schedulers.ParseAlgorithm(opts.algorithm)
			if err != nil {
				return nil, err
			}
			algorithms = []schedulers.Algorithm{algorithm}
		}
		// Flags are always explicit, so they go through the same checks the
		// server applies to a request body.
		config, err := request.SchedulerConfig(schedulers.DefaultConfig(), algorithms...)
		if err != nil {
			return nil, err
		}
		if all {
			return schedulers.SimulateAll(processes, config)
		}
		result, err := schedulers.Simulate(processes, algorithms[0], config)
		if err != nil {
			return nil, err
		}
		return []responses.SimulationResult{result}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(opts.server)
	if all {
		resp, err := c.SimulateAll(ctx, request)
		if err != nil {
			return nil, err
		}
		return resp.Results, nil
	}
	resp, err := c.Simulate(ctx, request)
	if err != nil {
		return nil, err
	}
	return []responses.SimulationResult{resp.SimulationResult}, nil
}

func toRequest(processes []core.Process, opts options) requests.ScheduleRequests {
	jobs := make([]requests.Job, 0, len(processes))
	for _, p := range processes {
		jobs = append(jobs, requests.Job{
			ProcessId:     p.ID,
			ArrivalTime:   p.ArrivalTime,
			BurstDuration: p.BurstDuration,
			Priority:      p.Priority,
		})
	}
	quantum, aging := opts.quantum, opts.aging
	return requests.ScheduleRequests{
		Jobs:      jobs,
		Algorithm: opts.algorithm,
		Config:    &requests.ScheduleConfig{Quantum: &quantum, AgingRate: &aging},
	}
}

// loadProcesses reads rows of id,burst,arrival[,priority].
func loadProcesses(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: line %d: want 3 or 4 fields, got %d", ErrInvalidArgs, i+1, len(row))
		}
		values := make([]int, len(row))
		for j := range row {
			v, err := strconv.Atoi(strings.TrimSpace(row[j]))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidArgs, i+1, err)
			}
			values[j] = v
		}
		p := core.Process{ID: values[0], BurstDuration: values[1], ArrivalTime: values[2]}
		if len(values) == 4 {
			p.Priority = values[3]
		}
		processes = append(processes, p)
	}
	return processes, nil
}
