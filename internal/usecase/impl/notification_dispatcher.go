package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

const (
	notificationResultSent   = "sent"
	notificationResultFailed = "failed"
)

type notificationDispatcher struct {
	channel service.NotificationChannel
	metrics service.MetricsRecorder
	timeout time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// NotificationDispatcherParams holds dependencies for NotificationDispatcher, injected by Fx.
type NotificationDispatcherParams struct {
	fx.In

	Channel service.NotificationChannel
	Metrics service.MetricsRecorder
	Config  *config.Config
	Logger  *slog.Logger
}

// NewNotificationDispatcher creates the best-effort operator notification dispatcher.
func NewNotificationDispatcher(params NotificationDispatcherParams) usecase.NotificationDispatcher {
	timeout := 10 * time.Second
	if params.Config != nil && params.Config.Notification != nil && params.Config.Notification.Timeout > 0 {
		timeout = params.Config.Notification.Timeout
	}

	return &notificationDispatcher{
		channel: params.Channel,
		metrics: params.Metrics,
		timeout: timeout,
		now:     time.Now,
		logger:  params.Logger,
	}
}

func (d *notificationDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

func (d *notificationDispatcher) NotifyNewOrder(ctx context.Context, order *entity.Order) {
	d.dispatch(ctx, usecase.NotificationNewOrder, order, newOrderMessage(order))
}

func (d *notificationDispatcher) NotifyReminder(ctx context.Context, order *entity.Order) {
	d.dispatch(ctx, usecase.NotificationReminder, order, reminderMessage(order, d.now().Sub(order.CreatedAt)))
}

func (d *notificationDispatcher) NotifyConfirmed(ctx context.Context, order *entity.Order) {
	d.dispatch(ctx, usecase.NotificationConfirmed, order, confirmedMessage(order))
}

func (d *notificationDispatcher) NotifyPaymentProof(ctx context.Context, order *entity.Order) {
	d.dispatch(ctx, usecase.NotificationProof, order, paymentProofMessage(order))
}

func (d *notificationDispatcher) NotifyStatusChanged(ctx context.Context, order *entity.Order, from entity.OrderStatus) {
	d.dispatch(ctx, usecase.NotificationStatusChanged, order, statusChangedMessage(order, from))
}

// dispatch makes one delivery attempt. The caller's cancellation does not abort it;
// the configured timeout does.
func (d *notificationDispatcher) dispatch(ctx context.Context, kind usecase.NotificationKind, order *entity.Order, text string) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	result := notificationResultSent
	if err := d.channel.Send(sendCtx, text); err != nil {
		result = notificationResultFailed
		d.log(ctx).Warn("Failed to send notification",
			slog.String("channel", d.channel.Name()),
			slog.String("kind", string(kind)),
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	} else {
		d.log(ctx).Debug("Notification sent",
			slog.String("channel", d.channel.Name()),
			slog.String("kind", string(kind)),
			slog.String("order_id", order.ID.String()),
		)
	}

	d.metrics.RecordNotification(d.channel.Name(), string(kind), result)
}
