package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// NotificationKind labels a notification for logs and metrics.
type NotificationKind string

const (
	NotificationNewOrder      NotificationKind = "new_order"
	NotificationReminder      NotificationKind = "reminder"
	NotificationConfirmed     NotificationKind = "confirmed"
	NotificationProof         NotificationKind = "payment_proof"
	NotificationStatusChanged NotificationKind = "status_changed"
)

// NotificationDispatcher delivers operator notifications on a best-effort basis.
// Failures are logged and counted, never returned.
type NotificationDispatcher interface {
	NotifyNewOrder(ctx context.Context, order *entity.Order)
	NotifyReminder(ctx context.Context, order *entity.Order)
	NotifyConfirmed(ctx context.Context, order *entity.Order)
	NotifyPaymentProof(ctx context.Context, order *entity.Order)
	NotifyStatusChanged(ctx context.Context, order *entity.Order, from entity.OrderStatus)
}
