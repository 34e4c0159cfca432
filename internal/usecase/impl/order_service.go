package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultOrderPageLimit = 20
	maxOrderPageLimit     = 100
	defaultMaxProofBytes  = 5 << 20

	metricOpConfirm      = "confirm"
	metricOpPaymentProof = "payment_proof"
	metricOpStatusUpdate = "status_update"
)

var allowedProofTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

type orderService struct {
	orderRepo     repository.OrderRepository
	storage       service.ProofStorage
	reminders     usecase.ReminderUsecase
	notifier      usecase.NotificationDispatcher
	publisher     service.EventPublisher
	metrics       service.MetricsRecorder
	baseURL       string
	maxProofBytes int64
	now           func() time.Time
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Storage   service.ProofStorage
	Reminders usecase.ReminderUsecase
	Notifier  usecase.NotificationDispatcher
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService creates the order lifecycle service.
func NewOrderService(params OrderServiceParams) (usecase.OrderUsecase, error) {
	srv := &orderService{
		orderRepo:     params.OrderRepo,
		storage:       params.Storage,
		reminders:     params.Reminders,
		notifier:      params.Notifier,
		publisher:     params.Publisher,
		metrics:       params.Metrics,
		maxProofBytes: defaultMaxProofBytes,
		now:           time.Now,
		logger:        params.Logger,
	}

	if params.Config != nil {
		if params.Config.Checkout != nil {
			srv.baseURL = strings.TrimRight(params.Config.Checkout.BaseURL, "/")
		}
		if params.Config.Storage != nil && params.Config.Storage.MaxProofSize != "" {
			maxBytes, err := params.Config.Storage.MaxProofBytes()
			if err != nil {
				return nil, err
			}
			srv.maxProofBytes = maxBytes
		}
	}

	return srv, nil
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrOrderNotFound, "order %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, filter entity.OrderFilter) (*usecase.OrderPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultOrderPageLimit
	}
	if filter.Limit > maxOrderPageLimit {
		filter.Limit = maxOrderPageLimit
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domainerrors.NewValidationError(map[string]string{"status": "is not a known order status"})
	}

	orders, total, err := srv.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{
		Items:      orders,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (srv *orderService) ConfirmationURL(ctx context.Context, id uuid.UUID) (string, error) {
	if _, err := srv.GetOrder(ctx, id); err != nil {
		return "", err
	}

	return confirmationURL(srv.baseURL, id), nil
}

// ConfirmOrder is the permissive admin confirmation. It needs no payment proof.
func (srv *orderService) ConfirmOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.confirmOrder(ctx, id)
	if err != nil {
		srv.metrics.RecordOrderOperation(metricOpConfirm, metricFailed)

		return nil, err
	}
	srv.metrics.RecordOrderOperation(metricOpConfirm, metricSuccess)

	srv.reminders.CancelReminder(ctx, id)
	srv.notifier.NotifyConfirmed(ctx, order)
	publishOrderEvent(ctx, srv.publisher, srv.logger, service.OrderEventConfirmed, order)

	return order, nil
}

func (srv *orderService) confirmOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Confirmed {
		return nil, errors.Wrapf(domainerrors.ErrAlreadyConfirmed, "order %s", id)
	}
	if order.Status.IsTerminal() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "cannot confirm %s order", order.Status)
	}

	confirmedAt := srv.now()
	err = srv.orderRepo.MarkOrderConfirmed(ctx, id, confirmedAt)
	switch {
	case errors.Is(err, repository.ErrOrderStateChanged):
		return nil, errors.Wrapf(domainerrors.ErrAlreadyConfirmed, "order %s", id)
	case errors.Is(err, repository.ErrOrderNotFound):
		return nil, errors.Wrapf(domainerrors.ErrOrderNotFound, "order %s", id)
	case err != nil:
		return nil, errors.Wrap(err, "failed to confirm order")
	}

	order.Confirmed = true
	order.ConfirmedAt = &confirmedAt
	if order.Status == entity.OrderStatusPending {
		order.Status = entity.OrderStatusProcessing
	}

	srv.log(ctx).Info("Order confirmed", slog.String("order_id", id.String()), slog.String("status", order.Status.String()))

	return order, nil
}

func (srv *orderService) SubmitPaymentProof(ctx context.Context, id uuid.UUID, input *usecase.PaymentProofInput) (*entity.Order, error) {
	order, err := srv.submitPaymentProof(ctx, id, input)
	if err != nil {
		srv.metrics.RecordOrderOperation(metricOpPaymentProof, metricFailed)

		return nil, err
	}
	srv.metrics.RecordOrderOperation(metricOpPaymentProof, metricSuccess)

	srv.notifier.NotifyPaymentProof(ctx, order)
	publishOrderEvent(ctx, srv.publisher, srv.logger, service.OrderEventProofSubmitted, order)

	return order, nil
}

func (srv *orderService) submitPaymentProof(ctx context.Context, id uuid.UUID, input *usecase.PaymentProofInput) (*entity.Order, error) {
	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.checkProof(order, input); err != nil {
		return nil, err
	}

	nextStatus := order.Status
	if nextStatus == entity.OrderStatusPending {
		nextStatus = entity.OrderStatusProcessing
	}

	filename := util.SanitizeFilename(input.Filename)
	ref, err := srv.storage.SaveProof(ctx, filename, input.ContentType, io.LimitReader(input.Content, srv.maxProofBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to store payment proof")
	}

	err = srv.orderRepo.AttachPaymentProof(ctx, id, ref, nextStatus)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrOrderNotFound, "order %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to attach payment proof")
	}

	order.ProofOfPayment = &ref
	order.Status = nextStatus

	srv.log(ctx).Info("Payment proof attached", slog.String("order_id", id.String()), slog.String("proof", ref))

	return order, nil
}

// checkProof runs the upload checks in a fixed order: caller email, payment method,
// presence, content type, then size.
func (srv *orderService) checkProof(order *entity.Order, input *usecase.PaymentProofInput) error {
	if input == nil {
		return errors.WithStack(domainerrors.ErrMissingProof)
	}

	if input.Email != "" && !strings.EqualFold(strings.TrimSpace(input.Email), order.Contact.Email) {
		return errors.Wrapf(domainerrors.ErrOrderAccessDenied, "order %s", order.ID)
	}

	if order.ProofPaymentMethod() != entity.PaymentMethodBankTransfer {
		return errors.Wrapf(domainerrors.ErrInvalidPaymentMethod, "order %s is paid by %s", order.ID, order.PaymentMethod)
	}

	if input.Content == nil || input.Size <= 0 {
		return errors.WithStack(domainerrors.ErrMissingProof)
	}

	if !allowedProofTypes[strings.ToLower(input.ContentType)] {
		return errors.Wrapf(domainerrors.ErrInvalidFileType, "content type %q", input.ContentType)
	}

	if input.Size > srv.maxProofBytes {
		return domainerrors.ErrFileTooLarge.WithDetails("maximum is " + util.FormatBytes(srv.maxProofBytes))
	}

	if order.Status.IsTerminal() {
		return errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "order %s is %s", order.ID, order.Status)
	}

	return nil
}

// UpdateOrderStatus applies an admin status write along the legal transitions only.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	order, from, err := srv.updateOrderStatus(ctx, id, status)
	if err != nil {
		srv.metrics.RecordOrderOperation(metricOpStatusUpdate, metricFailed)

		return nil, err
	}
	srv.metrics.RecordOrderOperation(metricOpStatusUpdate, metricSuccess)

	if status.IsTerminal() {
		srv.reminders.CancelReminder(ctx, id)
	}
	srv.notifier.NotifyStatusChanged(ctx, order, from)
	publishOrderEvent(ctx, srv.publisher, srv.logger, service.OrderEventStatusChanged, order)

	return order, nil
}

func (srv *orderService) updateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, entity.OrderStatus, error) {
	if !status.IsValid() {
		return nil, "", domainerrors.NewValidationError(map[string]string{"status": "is not a known order status"})
	}

	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, "", err
	}

	from := order.Status
	if !from.CanTransitionTo(status) {
		return nil, "", errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "%s to %s", from, status)
	}

	err = srv.orderRepo.UpdateOrderStatus(ctx, id, from, status)
	switch {
	case errors.Is(err, repository.ErrOrderStateChanged):
		return nil, "", errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "order %s changed concurrently", id)
	case errors.Is(err, repository.ErrOrderNotFound):
		return nil, "", errors.Wrapf(domainerrors.ErrOrderNotFound, "order %s", id)
	case err != nil:
		return nil, "", errors.Wrap(err, "failed to update order status")
	}

	order.Status = status
	order.UpdatedAt = srv.now()

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", id.String()),
		slog.String("from", from.String()),
		slog.String("to", status.String()),
	)

	return order, from, nil
}
