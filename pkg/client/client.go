// Package client talks to the scheduler HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scheduler api: %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Simulate(ctx context.Context, request requests.ScheduleRequests) (responses.SimulateResponse, error) {
	var out responses.SimulateResponse
	err := c.do(ctx, http.MethodPost, "/api/simulate", request, &out)
	return out, err
}

func (c *Client) SimulateAll(ctx context.Context, request requests.ScheduleRequests) (responses.AllResponse, error) {
	var out responses.AllResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/all", request, &out)
	return out, err
}

func (c *Client) Algorithms(ctx context.Context) ([]responses.AlgorithmInfo, error) {
	var out responses.AlgorithmsResponse
	if err := c.do(ctx, http.MethodGet, "/api/algorithms", nil, &out); err != nil {
		return nil, err
	}
	return out.Algorithms, nil
}

func (c *Client) Health(ctx context.Context) error {
	var out responses.HealthResponse
	return c.do(ctx, http.MethodGet, "/api/health", nil, &out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errBody responses.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
