package main

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler/internal/core"
	"os-scheduler/internal/schedulers"
)

func TestLoadProcesses(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []core.Process
		wantErr bool
	}{
		{
			name:  "with and without priority",
			input: "1,5,0,2\n2, 9, 1\n",
			want: []core.Process{
				{ID: 1, BurstDuration: 5, ArrivalTime: 0, Priority: 2},
				{ID: 2, BurstDuration: 9, ArrivalTime: 1},
			},
		},
		{
			name:    "not a number",
			input:   "1,x,0\n",
			wantErr: true,
		},
		{
			name:    "too few fields",
			input:   "1,2\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadProcesses(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-algorithm", "SRTF", "-quantum", "3", "procs.csv"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "SRTF", opts.algorithm)
	assert.Equal(t, 3, opts.quantum)
	assert.Equal(t, 1, opts.aging)
	assert.Equal(t, "procs.csv", opts.file)

	_, err = parseArgs(nil, io.Discard)
	assert.ErrorIs(t, err, ErrInvalidArgs)
}

func TestRun_Local(t *testing.T) {
	processes := []core.Process{
		{ID: 1, BurstDuration: 3},
		{ID: 2, BurstDuration: 2, ArrivalTime: 1},
	}

	var out bytes.Buffer
	require.NoError(t, run(&out, options{algorithm: "all", quantum: 2, aging: 1}, processes))
	for _, id := range []string{"FCFS", "SJF", "SRTF", "PriorityNP", "PriorityP", "RoundRobin", "RoundRobinPriorityAging"} {
		assert.Contains(t, out.String(), id)
	}

	err := run(io.Discard, options{algorithm: "Lottery", quantum: 2, aging: 1}, processes)
	assert.Error(t, err)
}

func TestRun_LocalRejectsNonPositiveSettings(t *testing.T) {
	processes := []core.Process{
		{ID: 1, BurstDuration: 3},
		{ID: 2, BurstDuration: 2, ArrivalTime: 1},
	}
	tests := []struct {
		name    string
		opts    options
		wantErr error
	}{
		{
			name:    "zero quantum",
			opts:    options{algorithm: "RoundRobin", quantum: 0, aging: 1},
			wantErr: schedulers.ErrInvalidConfig,
		},
		{
			name:    "zero aging rate",
			opts:    options{algorithm: "RoundRobinPriorityAging", quantum: 2, aging: 0},
			wantErr: schedulers.ErrInvalidConfig,
		},
		{
			name:    "zero quantum with all",
			opts:    options{algorithm: "all", quantum: 0, aging: 1},
			wantErr: schedulers.ErrInvalidConfig,
		},
		{
			name: "zero quantum unused by FCFS",
			opts: options{algorithm: "FCFS", quantum: 0, aging: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(io.Discard, tt.opts, processes)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	opts, err := parseArgs([]string{"-algorithm", "RoundRobin", "-quantum", "0", "procs.csv"}, io.Discard)
	require.NoError(t, err)
	assert.ErrorIs(t, run(io.Discard, opts, processes), schedulers.ErrInvalidConfig)
}

func TestRun_Remote(t *testing.T) {
	httpmock.Activate(t)
	defer httpmock.DeactivateAndReset()

	var body string
	httpmock.RegisterResponder("POST", "http://localhost:5001/api/simulate",
		func(req *http.Request) (*http.Response, error) {
			payload, err := io.ReadAll(req.Body)
			if err != nil {
				return nil, err
			}
			body = string(payload)
			return httpmock.NewStringResponse(200,
				`{"success":true,"algorithm":"SJF","avgTurnaroundTime":2,"avgWaitingTime":0,"contextSwitches":0,`+
					`"diagramData":{"processes":[{"id":1,"timeline":["running","running"]}],"makespan":2},`+
					`"details":[{"id":1,"burstDuration":2,"completionTime":2,"turnaroundTime":2}]}`), nil
		})

	var out bytes.Buffer
	err := run(&out, options{algorithm: "SJF", quantum: 2, aging: 1, server: "http://localhost:5001"},
		[]core.Process{{ID: 1, BurstDuration: 2}})
	require.NoError(t, err)

	assert.JSONEq(t, `{"processes":[{"id":1,"arrivalTime":0,"burstDuration":2,"priority":0}],`+
		`"algorithm":"SJF","config":{"quantum":2,"agingRate":1}}`, body)
	assert.Contains(t, out.String(), "SJF")
	assert.Contains(t, out.String(), "##")
}
