package scheduler

import (
	"fmt"
	"log/slog"
)

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	attrs := append([]any{slog.String("error", fmt.Sprint(err))}, keysAndValues...)
	l.logger.Error(msg, attrs...)
}
