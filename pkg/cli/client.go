package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/glasspane/glasspane/pkg/bridge"
)

// Client is an HTTP client for a running bridge
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a bridge client. The token may be empty when the
// bridge runs without auth.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Invoke calls a named command with the given arguments and returns the
// unwrapped result
func (c *Client) Invoke(ctx context.Context, command string, args map[string]any) (any, error) {
	var body io.Reader
	if len(args) > 0 {
		payload, err := json.Marshal(args)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ipc/invoke/"+command, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	return c.do(req)
}

// ListCommands returns every command the bridge has registered
func (c *Client) ListCommands(ctx context.Context) ([]bridge.CommandInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ipc/commands", nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	// Re-marshal the envelope data into the typed listing
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var infos []bridge.CommandInfo
	if err := json.Unmarshal(raw, &infos); err != nil {
		return nil, fmt.Errorf("failed to decode command listing: %w", err)
	}
	return infos, nil
}

// Health checks the bridge health endpoint
func (c *Client) Health(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to bridge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bridge returned status %d", resp.StatusCode)
	}

	var health map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return health, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// do executes the request and unwraps the response envelope
func (c *Client) do(req *http.Request) (any, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to bridge: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope bridge.Response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("%s", envelope.Error)
	}
	return envelope.Data, nil
}
