package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client pushes farm notifications to an external webhook (Slack-style JSON
// payload of a title and message body).
type Client interface {
	Send(ctx context.Context, note Notification) error
}

// Notification is one outbound alert or summary message.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Level   string `json:"level"` // info, warning
}

// WebhookClient is a resty-backed implementation of Client.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewWebhookClient builds a notifier that POSTs to the given webhook URL.
func NewWebhookClient(url string) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		url:        url,
	}
}

// Send delivers one notification, treating any non-2xx response as an error.
func (c *WebhookClient) Send(ctx context.Context, note Notification) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(note).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook rejected notification: status %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}
