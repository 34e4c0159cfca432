// Package notification implements the operator-facing notification channels.
package notification

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ChannelParams holds dependencies for NotificationChannel, injected by Fx
type ChannelParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationChannel selects the configured channel, falling back to the log channel.
func NewNotificationChannel(params ChannelParams) (service.NotificationChannel, error) {
	cfg := params.Config.Notification
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.NotificationProviderLog {
		logger.Info("Using log notification channel")

		return NewLogChannel(logger), nil
	}

	switch cfg.Provider {
	case constants.NotificationProviderTelegram:
		tg := cfg.Telegram
		if tg == nil || tg.BotToken == "" {
			return nil, errors.New("bot token is required for telegram provider")
		}
		if tg.AdminChatID == 0 {
			return nil, errors.New("admin chat ID is required for telegram provider")
		}

		channel, err := NewTelegramChannel(tg.BotToken, tg.AdminChatID, tg.APIEndpoint, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		logger.Info("Using telegram notification channel",
			slog.String("bot", channel.bot.Self.UserName),
			slog.Int64("chat_id", tg.AdminChatID),
		)

		return channel, nil

	case constants.NotificationProviderFirebase:
		fb := cfg.Firebase
		if fb == nil || fb.Topic == "" {
			return nil, errors.New("topic is required for firebase provider")
		}

		channel, err := NewFirebaseChannel(params.Ctx, fb.ProjectID, fb.CredentialsPath, fb.Topic)
		if err != nil {
			return nil, err
		}
		logger.Info("Using firebase notification channel", slog.String("topic", fb.Topic))

		return channel, nil

	default:
		return nil, errors.Errorf("unknown notification provider: %s", cfg.Provider)
	}
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationChannel),
)
