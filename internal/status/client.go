package status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// onlineToken is the only status value treated as healthy; anything else,
// including an unknown shape, is not.
const onlineToken = "online"

const defaultTimeout = 10 * time.Second

// Client probes the game-server status endpoint. Any transport or decoding
// failure is returned as an error and must be treated as a transient fault,
// never as an offline reading.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type statusResponse struct {
	Status string `json:"status"`
}

// Check fetches the endpoint and reports whether the server is online.
func (c *Client) Check(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return false, fmt.Errorf("build status request: %w", err)
	}
	// The status host rejects requests without a browser-ish user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("fetch status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("status endpoint returned %d", resp.StatusCode)
	}

	var body statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decode status response: %w", err)
	}
	return body.Status == onlineToken, nil
}
