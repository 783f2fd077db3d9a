package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"matclean/internal/cleaner"
)

const userAgent = "matclean/0.1.0"

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func newNtfyService(endpoint string, timeout time.Duration) *ntfyService {
	return &ntfyService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

func (n *ntfyService) NotifySummary(ctx context.Context, summary cleaner.Summary, title, message string) error {
	data := payload{
		title: title,
		message: fmt.Sprintf("%s (%d processed, %d cleaned, %d skipped, %d failed)",
			message, summary.Processed, summary.Succeeded, summary.Skipped, summary.Failed),
		tags: []string{"matclean", "summary"},
	}
	if summary.Failed > 0 {
		data.priority = "high"
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyFatal(ctx context.Context, title, message string) error {
	data := payload{
		title:    title,
		message:  message,
		tags:     []string{"matclean", "error", "alert"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "matclean - Test",
		message:  "Notification system test",
		tags:     []string{"matclean", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
