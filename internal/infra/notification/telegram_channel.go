package notification

import (
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

const (
	telegramChannelName = "telegram"
	// Telegram rejects longer message texts.
	maxTelegramRunes = 4096
)

// telegramChannel posts HTML messages to the admin chat through a bot.
type telegramChannel struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramChannel authenticates the bot token (getMe) and binds it to the admin chat.
// An empty apiEndpoint uses the public Bot API.
func NewTelegramChannel(token string, chatID int64, apiEndpoint string, timeout time.Duration) (*telegramChannel, error) {
	if apiEndpoint == "" {
		apiEndpoint = tgbotapi.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, apiEndpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, errors.Wrap(err, "failed to authenticate telegram bot")
	}

	return &telegramChannel{bot: bot, chatID: chatID}, nil
}

func (c *telegramChannel) Name() string {
	return telegramChannelName
}

// Send delivers text in HTML parse mode. The bot client has no context support, so the call is
// abandoned (not aborted) when ctx ends first; the HTTP client timeout bounds it either way.
func (c *telegramChannel) Send(ctx context.Context, text string) error {
	msg := tgbotapi.NewMessage(c.chatID, truncateRunes(text, maxTelegramRunes))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	done := make(chan error, 1)
	go func() {
		_, err := c.bot.Send(msg)
		done <- err
	}()

	select {
	case err := <-done:
		return errors.Wrap(err, "telegram sendMessage failed")
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "telegram sendMessage abandoned")
	}
}

func truncateRunes(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}

	return string(runes[:maxRunes])
}
