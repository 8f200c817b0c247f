package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-acoustics-backend/internal/domain"
)

// Client posts contact submissions to the spreadsheet webhook (a Google Apps
// Script web app). The webhook authenticates by a shared secret token carried
// in the JSON body; no response payload is consumed.
type Client struct {
	url    string
	token  string
	client *http.Client
}

func NewClient(url, token string) *Client {
	return &Client{
		url:   url,
		token: token,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// payload is the webhook wire format: {"token": ..., "data": {submission}}.
type payload struct {
	Token string                    `json:"token"`
	Data  *domain.ContactSubmission `json:"data"`
}

// Append posts one submission row to the webhook.
func (c *Client) Append(ctx context.Context, sub *domain.ContactSubmission) error {
	body, err := json.Marshal(payload{Token: c.token, Data: sub})
	if err != nil {
		return fmt.Errorf("failed to encode sheets payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sheets request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sheets webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sheets webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// IsConfigured reports whether both the webhook URL and shared secret are set.
func (c *Client) IsConfigured() bool {
	return c.url != "" && c.token != ""
}
