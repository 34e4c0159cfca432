package notification

import (
	"context"
	"log/slog"
)

const logChannelName = "log"

// logChannel writes notifications to the service log. Used in development and when no provider is set.
type logChannel struct {
	logger *slog.Logger
}

// NewLogChannel creates a channel that logs every message at info level.
func NewLogChannel(logger *slog.Logger) *logChannel {
	return &logChannel{logger: logger.With(slog.String("component", "notification"))}
}

func (c *logChannel) Name() string {
	return logChannelName
}

func (c *logChannel) Send(ctx context.Context, text string) error {
	c.logger.InfoContext(ctx, "Notification", slog.String("text", text))

	return nil
}
