package notifications

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"matclean/internal/cleaner"
)

const (
	notifySendTimeout = 2 * time.Second
	// zenity blocks until the user dismisses the dialog.
	zenityTimeout = 60 * time.Second
	notifyIcon    = "edit-clear-all"
)

// desktopService shells out to notify-send for summaries and zenity for fatal
// errors, matching the feedback users get from other file-manager helpers.
type desktopService struct {
	notifySend string
	zenity     string
}

func (d *desktopService) NotifySummary(ctx context.Context, _ cleaner.Summary, title, message string) error {
	return d.send(ctx, title, message)
}

func (d *desktopService) NotifyFatal(ctx context.Context, title, message string) error {
	runCtx, cancel := context.WithTimeout(ctx, zenityTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, d.zenity, "--error",
		"--title", title,
		"--text", message,
		"--width", "400") //nolint:gosec
	if err := cmd.Run(); err != nil {
		// Dialog helper unavailable; fall back to a plain notification.
		if sendErr := d.send(ctx, title, message); sendErr != nil {
			return fmt.Errorf("show error dialog: %w", err)
		}
	}
	return nil
}

func (d *desktopService) TestNotification(ctx context.Context) error {
	return d.send(ctx, "matclean - Test", "Notification system test")
}

func (d *desktopService) send(ctx context.Context, title, message string) error {
	binary := strings.TrimSpace(d.notifySend)
	if binary == "" {
		return fmt.Errorf("notify-send binary not configured")
	}

	runCtx, cancel := context.WithTimeout(ctx, notifySendTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, binary, "-i", notifyIcon, title, message) //nolint:gosec
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("send desktop notification: %w", err)
	}
	return nil
}
