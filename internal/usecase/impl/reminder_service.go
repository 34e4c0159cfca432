package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultReminderDelay = 72 * time.Hour

type reminderService struct {
	orderRepo repository.OrderRepository
	scheduler service.TaskScheduler
	notifier  usecase.NotificationDispatcher
	publisher service.EventPublisher
	delay     time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Scheduler service.TaskScheduler
	Notifier  usecase.NotificationDispatcher
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReminderService creates the confirmation reminder service.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	delay := defaultReminderDelay
	if params.Config != nil && params.Config.Reminder != nil && params.Config.Reminder.Delay > 0 {
		delay = params.Config.Reminder.Delay
	}

	return &reminderService{
		orderRepo: params.OrderRepo,
		scheduler: params.Scheduler,
		notifier:  params.Notifier,
		publisher: params.Publisher,
		delay:     delay,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func reminderKey(orderID uuid.UUID) string {
	return constants.ReminderKeyPrefix + orderID.String()
}

// ScheduleReminder registers the reminder at creation time plus the configured delay.
// Scheduling again under the same order replaces the earlier task.
func (srv *reminderService) ScheduleReminder(ctx context.Context, order *entity.Order) error {
	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = srv.now()
	}
	runAt := createdAt.Add(srv.delay)
	orderID := order.ID

	if err := srv.scheduler.ScheduleOnce(reminderKey(orderID), runAt, func(taskCtx context.Context) {
		srv.SendReminder(taskCtx, orderID)
	}); err != nil {
		return errors.Wrapf(err, "failed to schedule reminder for order %s", orderID)
	}

	srv.log(ctx).Debug("Reminder scheduled",
		slog.String("order_id", orderID.String()),
		slog.Time("run_at", runAt),
	)

	return nil
}

func (srv *reminderService) CancelReminder(ctx context.Context, orderID uuid.UUID) bool {
	canceled := srv.scheduler.Cancel(reminderKey(orderID))
	if canceled {
		srv.log(ctx).Debug("Reminder canceled", slog.String("order_id", orderID.String()))
	}

	return canceled
}

// SendReminder is the body of the scheduled task. It re-reads the order and does nothing
// when the order is gone, confirmed, finished or already reminded.
func (srv *reminderService) SendReminder(ctx context.Context, orderID uuid.UUID) {
	logger := srv.log(ctx).With(slog.String("order_id", orderID.String()))

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		logger.Info("Order no longer exists, skipping reminder")

		return
	}
	if err != nil {
		logger.Error("Failed to load order for reminder", slog.Any("error", err))

		return
	}

	if !order.NeedsReminder() {
		logger.Debug("Order no longer needs a reminder",
			slog.Bool("confirmed", order.Confirmed),
			slog.String("status", order.Status.String()),
		)

		return
	}

	srv.notifier.NotifyReminder(ctx, order)

	sentAt := srv.now()
	if err := srv.orderRepo.MarkReminderSent(ctx, orderID, sentAt); err != nil {
		logger.Warn("Failed to record reminder delivery", slog.Any("error", err))
	} else {
		order.ReminderSentAt = &sentAt
	}

	publishOrderEvent(ctx, srv.publisher, srv.logger, service.OrderEventReminderSent, order)
}

// RestorePendingReminders re-registers reminders lost with the previous process.
// Overdue reminders fire right away.
func (srv *reminderService) RestorePendingReminders(ctx context.Context) (int, error) {
	orders, err := srv.orderRepo.ListReminderCandidates(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list reminder candidates")
	}

	restored := 0
	for _, order := range orders {
		if err := srv.ScheduleReminder(ctx, order); err != nil {
			srv.log(ctx).Warn("Failed to restore reminder",
				slog.String("order_id", order.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		restored++
	}

	srv.log(ctx).Info("Pending reminders restored", slog.Int("count", restored))

	return restored, nil
}
