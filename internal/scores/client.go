package scores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIPath is the route serving the leaderboard.
const APIPath = "/api/scores"

// Client talks to a remote score API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the server at baseURL
// (e.g. "http://localhost:3000"). A nil httpClient uses a 5 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Submit posts a score. A 400 response is reported as ErrInvalidPayload.
func (c *Client) Submit(ctx context.Context, name string, score float64) error {
	body, err := json.Marshal(map[string]any{"name": name, "score": score})
	if err != nil {
		return fmt.Errorf("scores: encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+APIPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("scores: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("scores: submit: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return ErrInvalidPayload
	default:
		return fmt.Errorf("scores: submit: unexpected status %s", resp.Status)
	}
}

// Leaderboard fetches the server's top records, cut to n.
func (c *Client) Leaderboard(ctx context.Context, n int) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+APIPath, nil)
	if err != nil {
		return nil, fmt.Errorf("scores: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scores: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scores: fetch: unexpected status %s", resp.Status)
	}

	records := []Record{}
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("scores: decode leaderboard: %w", err)
	}
	if records == nil {
		records = []Record{}
	}
	if n >= 0 && len(records) > n {
		records = records[:n]
	}
	return records, nil
}
