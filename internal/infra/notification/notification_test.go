package notification

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type telegramStub struct {
	mu       sync.Mutex
	sent     []map[string]string
	failSend bool
}

func (s *telegramStub) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			fmt.Fprint(w, `{"ok":true,"result":{"id":7,"is_bot":true,"first_name":"Shop","username":"shop_bot"}}`)
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			if s.failSend {
				fmt.Fprint(w, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)

				return
			}
			s.mu.Lock()
			s.sent = append(s.sent, map[string]string{
				"chat_id":    r.Form.Get("chat_id"),
				"text":       r.Form.Get("text"),
				"parse_mode": r.Form.Get("parse_mode"),
			})
			s.mu.Unlock()
			fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newTelegramServer(t *testing.T, stub *telegramStub) string {
	t.Helper()

	server := httptest.NewServer(stub.handler(t))
	t.Cleanup(server.Close)

	return server.URL + "/bot%s/%s"
}

func TestTelegramChannel_SendsHTMLToAdminChat(t *testing.T) {
	stub := &telegramStub{}
	endpoint := newTelegramServer(t, stub)

	channel, err := NewTelegramChannel("123:abc", 42, endpoint, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "telegram", channel.Name())
	assert.Equal(t, "shop_bot", channel.bot.Self.UserName)

	require.NoError(t, channel.Send(context.Background(), "<b>New order</b> #1"))

	require.Len(t, stub.sent, 1)
	assert.Equal(t, "42", stub.sent[0]["chat_id"])
	assert.Equal(t, "<b>New order</b> #1", stub.sent[0]["text"])
	assert.Equal(t, "HTML", stub.sent[0]["parse_mode"])
}

func TestTelegramChannel_SendFailure(t *testing.T) {
	stub := &telegramStub{failSend: true}
	endpoint := newTelegramServer(t, stub)

	channel, err := NewTelegramChannel("123:abc", 42, endpoint, 5*time.Second)
	require.NoError(t, err)

	err = channel.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestTelegramChannel_ContextEndsFirst(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			<-release
		}
		fmt.Fprint(w, `{"ok":true,"result":{"id":7,"is_bot":true,"first_name":"Shop","username":"shop_bot"}}`)
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	channel, err := NewTelegramChannel("123:abc", 42, server.URL+"/bot%s/%s", 5*time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = channel.Send(ctx, "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "₦₦", truncateRunes("₦₦₦", 2))
	assert.Equal(t, "abc", truncateRunes("abc", 5))
}

func TestLogChannel_Send(t *testing.T) {
	var buf bytes.Buffer
	channel := NewLogChannel(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, channel.Send(context.Background(), "order placed"))
	assert.Equal(t, "log", channel.Name())
	assert.Contains(t, buf.String(), "order placed")
	assert.Contains(t, buf.String(), "component=notification")
}

type fakeTopicSender struct {
	messages []*messaging.Message
	err      error
}

func (f *fakeTopicSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.messages = append(f.messages, message)

	return "projects/shop/messages/1", f.err
}

func TestFirebaseChannel_Send(t *testing.T) {
	sender := &fakeTopicSender{}
	channel := &firebaseChannel{client: sender, topic: "storefront-admin"}

	require.NoError(t, channel.Send(context.Background(), "<b>Order confirmed</b>\nAda &amp; Co"))

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, "storefront-admin", msg.Topic)
	assert.Equal(t, "Storefront", msg.Notification.Title)
	assert.Equal(t, "Order confirmed\nAda & Co", msg.Notification.Body)
	assert.Equal(t, "<b>Order confirmed</b>\nAda &amp; Co", msg.Data["body"])
	assert.Equal(t, "firebase", channel.Name())
}

func TestFirebaseChannel_SendError(t *testing.T) {
	sender := &fakeTopicSender{err: io.ErrUnexpectedEOF}
	channel := &firebaseChannel{client: sender, topic: "storefront-admin"}

	err := channel.Send(context.Background(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestPlainText_Truncates(t *testing.T) {
	assert.Equal(t, "abc…", plainText("<i>abcdef</i>", 4))
	assert.Equal(t, "abc", plainText("  <i>abc</i> ", 4))
}

func TestNewNotificationChannel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	newParams := func(cfg *config.NotificationConfig) ChannelParams {
		return ChannelParams{Ctx: context.Background(), Config: &config.Config{Notification: cfg}, Logger: logger}
	}

	channel, err := NewNotificationChannel(newParams(nil))
	require.NoError(t, err)
	assert.Equal(t, "log", channel.Name())

	channel, err = NewNotificationChannel(newParams(&config.NotificationConfig{Provider: constants.NotificationProviderLog}))
	require.NoError(t, err)
	assert.Equal(t, "log", channel.Name())

	errorCases := []struct {
		name    string
		cfg     *config.NotificationConfig
		wantErr string
	}{
		{
			name:    "telegram without token",
			cfg:     &config.NotificationConfig{Provider: constants.NotificationProviderTelegram},
			wantErr: "bot token is required",
		},
		{
			name: "telegram without chat",
			cfg: &config.NotificationConfig{
				Provider: constants.NotificationProviderTelegram,
				Telegram: &config.TelegramConfig{BotToken: "123:abc"},
			},
			wantErr: "admin chat ID is required",
		},
		{
			name:    "firebase without topic",
			cfg:     &config.NotificationConfig{Provider: constants.NotificationProviderFirebase, Firebase: &config.FirebaseConfig{}},
			wantErr: "topic is required",
		},
		{
			name:    "unknown provider",
			cfg:     &config.NotificationConfig{Provider: "sms"},
			wantErr: "unknown notification provider: sms",
		},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNotificationChannel(newParams(tt.cfg))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("telegram", func(t *testing.T) {
		endpoint := newTelegramServer(t, &telegramStub{})
		channel, err := NewNotificationChannel(newParams(&config.NotificationConfig{
			Provider: constants.NotificationProviderTelegram,
			Timeout:  time.Second,
			Telegram: &config.TelegramConfig{BotToken: "123:abc", AdminChatID: 42, APIEndpoint: endpoint},
		}))
		require.NoError(t, err)
		assert.Equal(t, "telegram", channel.Name())
	})
}
