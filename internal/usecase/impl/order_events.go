package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// publishOrderEvent emits an order event. Publish failures are logged and dropped.
func publishOrderEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType service.OrderEventType, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		OrderID:    order.ID.String(),
		Status:     order.Status.String(),
		Confirmed:  order.Confirmed,
		Total:      order.Total.StringFixed(2),
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishOrderEvent(context.WithoutCancel(ctx), event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish order event",
			slog.String("type", string(eventType)),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
