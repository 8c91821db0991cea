package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/disgoorg/disgo/discord"
)

func New(cfg Config, httpClient *http.Client) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// Client posts ops notifications to a Discord webhook. Sending is best
// effort: failures are logged and never surfaced to the request that
// triggered the notification.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func (c *Client) Send(ctx context.Context, content string) {
	if !c.cfg.Enabled || c.cfg.WebhookURL == "" {
		return
	}

	if err := c.send(ctx, content); err != nil {
		slog.ErrorContext(ctx, "failed to send notification", slog.Any("error", err))
	}
}

func (c *Client) send(ctx context.Context, content string) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(discord.WebhookMessageCreate{
		Content: content,
	}); err != nil {
		return fmt.Errorf("failed to encode webhook message: %w", err)
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.WebhookURL, buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	rq.Header.Set("Content-Type", "application/json")

	rs, err := c.httpClient.Do(rq)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer rs.Body.Close()

	if rs.StatusCode < http.StatusOK || rs.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status code: %d", rs.StatusCode)
	}

	return nil
}
