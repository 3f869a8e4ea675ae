package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler/internal/requests"
)

const baseURL = "http://scheduler.test:5001"

func TestClient_Simulate(t *testing.T) {
	c := New(baseURL)
	httpmock.ActivateNonDefault(c.HTTPClient)
	defer httpmock.DeactivateAndReset()

	tests := []struct {
		name       string
		expects    func()
		wantErr    bool
		wantStatus int
		wantMsg    string
	}{
		{
			name: "ok",
			expects: func() {
				httpmock.RegisterResponder("POST", baseURL+"/api/simulate",
					httpmock.NewStringResponder(200,
						`{"success":true,"algorithm":"FCFS","avgTurnaroundTime":3.5,"avgWaitingTime":1,`+
							`"contextSwitches":1,"diagramData":{"processes":[{"id":1,"timeline":["running"]}],"makespan":5},`+
							`"rawDiagram":"##"}`))
			},
		},
		{
			name: "validation error",
			expects: func() {
				httpmock.RegisterResponder("POST", baseURL+"/api/simulate",
					httpmock.NewStringResponder(400, `{"error":"invalid input: no processes given"}`))
			},
			wantErr:    true,
			wantStatus: 400,
			wantMsg:    "invalid input: no processes given",
		},
		{
			name: "server error without body",
			expects: func() {
				httpmock.RegisterResponder("POST", baseURL+"/api/simulate",
					httpmock.NewStringResponder(500, ``))
			},
			wantErr:    true,
			wantStatus: 500,
			wantMsg:    "Internal Server Error",
		},
		{
			name: "transport error",
			expects: func() {
				httpmock.RegisterResponder("POST", baseURL+"/api/simulate",
					httpmock.NewErrorResponder(fmt.Errorf("connection refused")))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			tt.expects()

			got, err := c.Simulate(context.Background(), requests.ScheduleRequests{
				Jobs:      []requests.Job{{ProcessId: 1, BurstDuration: 3}},
				Algorithm: "FCFS",
			})
			if !tt.wantErr {
				require.NoError(t, err)
				assert.True(t, got.Success)
				assert.Equal(t, "FCFS", got.Algorithm)
				assert.Equal(t, 3.5, got.AverageTurnAroundTime)
				assert.Equal(t, 5, got.DiagramData.Makespan)
				assert.Equal(t, "##", got.RawDiagram)
				return
			}
			require.Error(t, err)
			var apiErr *APIError
			if tt.wantStatus == 0 {
				assert.False(t, errors.As(err, &apiErr))
				return
			}
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestClient_AlgorithmsAndHealth(t *testing.T) {
	c := New(baseURL + "/")
	httpmock.ActivateNonDefault(c.HTTPClient)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", baseURL+"/api/algorithms",
		httpmock.NewStringResponder(200, `{"algorithms":[{"id":"FCFS","name":"First-Come First-Served","preemptive":false}]}`))
	httpmock.RegisterResponder("GET", baseURL+"/api/health",
		httpmock.NewStringResponder(200, `{"status":"healthy"}`))

	algorithms, err := c.Algorithms(context.Background())
	require.NoError(t, err)
	require.Len(t, algorithms, 1)
	assert.Equal(t, "FCFS", algorithms[0].ID)

	assert.NoError(t, c.Health(context.Background()))
}
