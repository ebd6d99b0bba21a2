// Package notify holds the notifier used when no message broker is
// configured: it writes every notification to the structured log.
package notify

import (
	"context"
	"log/slog"

	"courierhub/internal/core/ports"
)

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

func (n *LogNotifier) Send(ctx context.Context, target ports.NotificationTarget, message string) error {
	n.logger.InfoContext(ctx, "notification",
		"recipient", string(target.Recipient),
		"target_id", target.ID.String(),
		"message", message,
	)
	return nil
}
