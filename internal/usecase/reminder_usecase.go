package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ReminderUsecase manages the per-order confirmation reminder.
type ReminderUsecase interface {
	// ScheduleReminder registers the reminder of order, replacing any earlier one.
	ScheduleReminder(ctx context.Context, order *entity.Order) error

	// CancelReminder drops the pending reminder of the order, if any.
	CancelReminder(ctx context.Context, orderID uuid.UUID) bool

	// SendReminder re-reads the order and notifies when it is still unconfirmed.
	SendReminder(ctx context.Context, orderID uuid.UUID)

	// RestorePendingReminders re-schedules reminders of unconfirmed orders after a restart.
	RestorePendingReminders(ctx context.Context) (int, error)
}
