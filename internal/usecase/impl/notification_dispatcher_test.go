package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherFixtures struct {
	dispatcher usecase.NotificationDispatcher
	channel    *mockSvc.MockNotificationChannel
	metrics    *mockSvc.MockMetricsRecorder
}

func createTestDispatcher(t *testing.T) dispatcherFixtures {
	channel := mockSvc.NewMockNotificationChannel(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	channel.EXPECT().Name().Return("telegram").Maybe()

	dispatcher := NewNotificationDispatcher(NotificationDispatcherParams{
		Channel: channel,
		Metrics: metrics,
		Config:  &config.Config{Notification: &config.NotificationConfig{Timeout: time.Second}},
		Logger:  discardLogger(),
	})
	dispatcher.(*notificationDispatcher).now = fixedClock

	return dispatcherFixtures{dispatcher: dispatcher, channel: channel, metrics: metrics}
}

func TestNotificationDispatcher_NotifyNewOrder(t *testing.T) {
	fx := createTestDispatcher(t)
	order := newTestOrder(t, entity.PaymentMethodBankTransfer)
	order.Contact.Notes = "<b>ring twice</b>"

	var sent string
	fx.channel.EXPECT().Send(mock.Anything, mock.AnythingOfType("string")).
		Run(func(_ context.Context, text string) { sent = text }).
		Return(nil)
	fx.metrics.EXPECT().RecordNotification("telegram", string(usecase.NotificationNewOrder), notificationResultSent).Return()

	fx.dispatcher.NotifyNewOrder(context.Background(), order)

	assert.Contains(t, sent, order.ID.String())
	assert.Contains(t, sent, "Ada Obi")
	assert.Contains(t, sent, "₦4,500.00")
	assert.Contains(t, sent, "Bank transfer")
	assert.Contains(t, sent, "&lt;b&gt;ring twice&lt;/b&gt;")
	assert.False(t, strings.Contains(sent, "<b>ring twice</b>"))
}

func TestNotificationDispatcher_FailureIsSwallowed(t *testing.T) {
	fx := createTestDispatcher(t)
	order := newTestOrder(t, entity.PaymentMethodCash)

	fx.channel.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("telegram: 502"))
	fx.metrics.EXPECT().RecordNotification("telegram", string(usecase.NotificationConfirmed), notificationResultFailed).Return()

	assert.NotPanics(t, func() {
		fx.dispatcher.NotifyConfirmed(context.Background(), order)
	})
}

func TestNotificationDispatcher_IgnoresCallerCancellation(t *testing.T) {
	fx := createTestDispatcher(t)
	order := newTestOrder(t, entity.PaymentMethodCash)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx.channel.EXPECT().Send(mock.Anything, mock.Anything).
		Run(func(sendCtx context.Context, _ string) {
			require.NoError(t, sendCtx.Err())
			_, hasDeadline := sendCtx.Deadline()
			assert.True(t, hasDeadline)
		}).
		Return(nil)
	fx.metrics.EXPECT().RecordNotification("telegram", string(usecase.NotificationReminder), notificationResultSent).Return()

	fx.dispatcher.NotifyReminder(ctx, order)
}

func TestNotificationDispatcher_StatusChangedMessage(t *testing.T) {
	fx := createTestDispatcher(t)
	order := newTestOrder(t, entity.PaymentMethodCash)
	order.Status = entity.OrderStatusShipped

	var sent string
	fx.channel.EXPECT().Send(mock.Anything, mock.Anything).
		Run(func(_ context.Context, text string) { sent = text }).
		Return(nil)
	fx.metrics.EXPECT().RecordNotification("telegram", string(usecase.NotificationStatusChanged), notificationResultSent).Return()

	fx.dispatcher.NotifyStatusChanged(context.Background(), order, entity.OrderStatusProcessing)

	assert.Contains(t, sent, "Processing")
	assert.Contains(t, sent, "Shipped")
}

func TestReminderMessage_IncludesAge(t *testing.T) {
	order := newTestOrder(t, entity.PaymentMethodCash)

	msg := reminderMessage(order, 73*time.Hour)

	assert.Contains(t, msg, "3d1h")
	assert.Contains(t, msg, order.ID.String())
}
