package notifications

import (
	"context"
	"errors"
	"strings"
	"time"

	"matclean/internal/cleaner"
	"matclean/internal/config"
)

// Service defines the notification surface exposed to the orchestration flow.
type Service interface {
	NotifySummary(ctx context.Context, summary cleaner.Summary, title, message string) error
	NotifyFatal(ctx context.Context, title, message string) error
	TestNotification(ctx context.Context) error
}

// NewService builds the notification service for the given config. Enabled
// backends are fanned out; with none enabled a noop implementation is
// returned.
func NewService(cfg *config.Config) Service {
	if cfg == nil {
		return noopService{}
	}

	var backends []Service
	if cfg.Notifications.Desktop {
		backends = append(backends, &desktopService{
			notifySend: cfg.Notifications.NotifySendBinary,
			zenity:     cfg.Notifications.ZenityBinary,
		})
	}
	if topic := strings.TrimSpace(cfg.Notifications.NtfyTopic); topic != "" {
		timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		backends = append(backends, newNtfyService(topic, timeout))
	}

	switch len(backends) {
	case 0:
		return noopService{}
	case 1:
		return backends[0]
	default:
		return fanoutService(backends)
	}
}

// fanoutService delivers every event to all backends and joins their errors.
type fanoutService []Service

func (f fanoutService) NotifySummary(ctx context.Context, summary cleaner.Summary, title, message string) error {
	errs := make([]error, 0, len(f))
	for _, backend := range f {
		errs = append(errs, backend.NotifySummary(ctx, summary, title, message))
	}
	return errors.Join(errs...)
}

func (f fanoutService) NotifyFatal(ctx context.Context, title, message string) error {
	errs := make([]error, 0, len(f))
	for _, backend := range f {
		errs = append(errs, backend.NotifyFatal(ctx, title, message))
	}
	return errors.Join(errs...)
}

func (f fanoutService) TestNotification(ctx context.Context) error {
	errs := make([]error, 0, len(f))
	for _, backend := range f {
		errs = append(errs, backend.TestNotification(ctx))
	}
	return errors.Join(errs...)
}

// NewNoop returns a service that silently drops every notification.
func NewNoop() Service {
	return noopService{}
}

type noopService struct{}

func (noopService) NotifySummary(context.Context, cleaner.Summary, string, string) error { return nil }
func (noopService) NotifyFatal(context.Context, string, string) error                    { return nil }
func (noopService) TestNotification(context.Context) error                               { return nil }
