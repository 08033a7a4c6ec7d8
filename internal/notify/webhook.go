package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/folio/backend/internal/metrics"
	"github.com/folio/backend/internal/model"
)

const webhookTimeout = 5 * time.Second

// WebhookNotifier posts each accepted submission as JSON to a configured URL.
// Transactional-mail relays (SendGrid/Mailgun style inbound hooks) and chat
// integrations both fit this shape.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

var _ Notifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier creates a WebhookNotifier targeting the given URL.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: webhookTimeout},
	}
}

// webhookPayload is the JSON body sent to the webhook endpoint.
type webhookPayload struct {
	Subject    string                   `json:"subject"`
	Submission *model.ContactSubmission `json:"submission"`
}

// Notify posts the submission. Failures are counted, logged and returned, but
// the ingestion pipeline ignores the return value.
func (n *WebhookNotifier) Notify(ctx context.Context, sub *model.ContactSubmission) error {
	err := n.post(ctx, sub)
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
		slog.Error("submission notification failed",
			"submission_id", sub.ID,
			"error", err,
		)
	}
	return err
}

func (n *WebhookNotifier) post(ctx context.Context, sub *model.ContactSubmission) error {
	body, err := json.Marshal(webhookPayload{
		Subject:    fmt.Sprintf("New contact form submission from %s", sub.Name),
		Submission: sub,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
