package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"atelier-store/internal/pkg/errs"
	"atelier-store/internal/usecase/commands"
)

const sendTimeout = 10 * time.Second

// HTTPMailer posts notification payloads to an external email service.
// An empty endpoint turns delivery into a no-op so local environments can
// run without a mail backend.
type HTTPMailer struct {
	endpoint string
	client   *http.Client
}

func NewHTTPMailer(endpoint string) commands.Mailer {
	return &HTTPMailer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: sendTimeout},
	}
}

func (m *HTTPMailer) Send(ctx context.Context, topic string, payload []byte) error {
	if m.endpoint == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build notification request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Notification-Topic", topic)

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "failed to send notification")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return errs.New(fmt.Sprintf("notification endpoint returned status %d", resp.StatusCode))
	}
	return nil
}
