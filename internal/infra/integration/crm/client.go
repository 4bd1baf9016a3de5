package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hestialabs/leadgate/internal/infra/queue"
)

// Client pushes enriched leads to the configured CRM webhook. The webhook
// URL is the whole contract: whatever CRM sits behind it receives the
// EnrichmentPayload verbatim.
type Client struct {
	webhookURL string
	http       *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		http:       &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.webhookURL != ""
}

func (c *Client) SyncLead(ctx context.Context, payload queue.EnrichmentPayload) error {
	if !c.Configured() {
		return fmt.Errorf("CRM webhook not configured")
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("CRM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("CRM rejected lead (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
