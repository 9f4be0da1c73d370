package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/getmockd/faultinject/pkg/admin"
	"github.com/getmockd/faultinject/pkg/config"
)

// Client communicates with the fault admin API of a running process.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the admin API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Health checks whether the admin API is reachable.
func (c *Client) Health() error {
	resp, err := c.http.Get(c.baseURL + "/health")
	if err != nil {
		return fmt.Errorf("cannot reach admin API at %s: %w", c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("admin API returned status %d", resp.StatusCode)
	}
	return nil
}

// Status returns the current fault status.
func (c *Client) Status() (*admin.FaultStatus, error) {
	resp, err := c.http.Get(c.baseURL + "/fault")
	if err != nil {
		return nil, fmt.Errorf("cannot reach admin API at %s: %w", c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	return decodeStatus(resp)
}

// Apply sends a plan to the admin API.
func (c *Client) Apply(plan *config.Plan) (*admin.FaultStatus, error) {
	body, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, c.baseURL+"/fault", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot reach admin API at %s: %w", c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	return decodeStatus(resp)
}

// Disable disarms injection on the remote process.
func (c *Client) Disable() (*admin.FaultStatus, error) {
	return c.post("/fault/disable")
}

// ResetStats zeroes the remote activity counters.
func (c *Client) ResetStats() (*admin.FaultStatus, error) {
	return c.post("/fault/reset-stats")
}

func (c *Client) post(path string) (*admin.FaultStatus, error) {
	resp, err := c.http.Post(c.baseURL+path, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("cannot reach admin API at %s: %w", c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	return decodeStatus(resp)
}

// decodeStatus decodes a FaultStatus reply, translating error bodies.
func decodeStatus(resp *http.Response) (*admin.FaultStatus, error) {
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		var errResp admin.ErrorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%s (%s)", errResp.Message, errResp.Error)
		}
		return nil, fmt.Errorf("admin API returned status %d", resp.StatusCode)
	}

	var status admin.FaultStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &status, nil
}
