package impl

import (
	"context"
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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	metricOpCheckout = "checkout"
	metricSuccess    = "success"
	metricFailed     = "failed"
)

type checkoutService struct {
	txManager     repository.TransactionManager
	cartRepo      repository.CartRepository
	productRepo   repository.ProductRepository
	notifier      usecase.NotificationDispatcher
	reminders     usecase.ReminderUsecase
	publisher     service.EventPublisher
	metrics       service.MetricsRecorder
	validate      *validator.Validate
	deliveryFee   decimal.Decimal
	countryCode   string
	baseURL       string
	defaultMethod entity.PaymentMethod
	now           func() time.Time
	logger        *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Notifier    usecase.NotificationDispatcher
	Reminders   usecase.ReminderUsecase
	Publisher   service.EventPublisher
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckoutService creates the checkout service. It fails when the configured delivery
// fee is not a non-negative decimal.
func NewCheckoutService(params CheckoutServiceParams) (usecase.CheckoutUsecase, error) {
	checkoutCfg := &config.CheckoutConfig{DeliveryFee: "2500", CountryCode: "+234", DefaultPaymentMethod: string(entity.PaymentMethodCash)}
	if params.Config != nil && params.Config.Checkout != nil {
		checkoutCfg = params.Config.Checkout
	}

	fee, err := decimal.NewFromString(checkoutCfg.DeliveryFee)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid delivery fee %q", checkoutCfg.DeliveryFee)
	}
	if fee.IsNegative() {
		return nil, errors.Errorf("delivery fee must not be negative, got %s", fee)
	}

	return &checkoutService{
		txManager:     params.TxManager,
		cartRepo:      params.CartRepo,
		productRepo:   params.ProductRepo,
		notifier:      params.Notifier,
		reminders:     params.Reminders,
		publisher:     params.Publisher,
		metrics:       params.Metrics,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		deliveryFee:   fee,
		countryCode:   checkoutCfg.CountryCode,
		baseURL:       strings.TrimRight(checkoutCfg.BaseURL, "/"),
		defaultMethod: entity.PaymentMethod(checkoutCfg.DefaultPaymentMethod),
		now:           time.Now,
		logger:        params.Logger,
	}, nil
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder builds and persists an order from the owner's cart. Notification, reminder,
// event and cart-clear failures after the order is stored are logged and do not fail checkout.
func (srv *checkoutService) PlaceOrder(ctx context.Context, owner entity.CartOwner, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	order, err := srv.placeOrder(ctx, owner, input)
	if err != nil {
		srv.metrics.RecordOrderOperation(metricOpCheckout, metricFailed)

		return nil, err
	}
	srv.metrics.RecordOrderOperation(metricOpCheckout, metricSuccess)

	srv.notifier.NotifyNewOrder(ctx, order)

	if err := srv.reminders.ScheduleReminder(ctx, order); err != nil {
		srv.log(ctx).Warn("Failed to schedule order reminder", slog.String("order_id", order.ID.String()), slog.Any("error", err))
	}

	publishOrderEvent(ctx, srv.publisher, srv.logger, service.OrderEventCreated, order)

	if err := srv.cartRepo.ClearCartItems(ctx, owner); err != nil {
		srv.log(ctx).Warn("Failed to clear cart after checkout",
			slog.String("owner", owner.String()),
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}

	return &usecase.CheckoutOutput{
		OrderID:         order.ID,
		ConfirmationURL: confirmationURL(srv.baseURL, order.ID),
	}, nil
}

func (srv *checkoutService) placeOrder(ctx context.Context, owner entity.CartOwner, input *usecase.CheckoutInput) (*entity.Order, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrIdentityRequired, err.Error())
	}

	normalized, err := srv.normalizeInput(input)
	if err != nil {
		return nil, err
	}

	cart, err := srv.loadCart(ctx, owner)
	if err != nil {
		return nil, err
	}

	contact := entity.ContactDetails{
		Name:    normalized.Name,
		Email:   normalized.Email,
		Phone:   normalized.Phone,
		Address: normalized.Address,
		Notes:   normalized.Notes,
	}
	order := entity.NewOrder(uuid.Nil, contact, cart, entity.PaymentMethod(normalized.PaymentMethod), srv.deliveryFee)
	order.CreatedAt = srv.now()
	order.UpdatedAt = order.CreatedAt

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customer, err := findOrCreateCustomer(ctx, repoFactory.CustomerRepo(), contact)
		if err != nil {
			return err
		}
		order.CustomerID = customer.ID

		if err := repoFactory.OrderRepo().CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to place order", slog.String("owner", owner.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("total", order.Total.StringFixed(2)),
		slog.Int("items", len(order.Items)),
	)

	return order, nil
}

// normalizeInput trims the contact fields, rewrites the phone into international form,
// applies the default payment method and validates the result.
func (srv *checkoutService) normalizeInput(input *usecase.CheckoutInput) (*usecase.CheckoutInput, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError(map[string]string{"body": "is required"})
	}

	normalized := &usecase.CheckoutInput{
		Name:          strings.TrimSpace(input.Name),
		Email:         strings.TrimSpace(input.Email),
		Phone:         util.NormalizePhone(input.Phone, srv.countryCode),
		Address:       strings.TrimSpace(input.Address),
		Notes:         strings.TrimSpace(input.Notes),
		PaymentMethod: strings.TrimSpace(input.PaymentMethod),
	}
	if normalized.PaymentMethod == "" {
		normalized.PaymentMethod = string(srv.defaultMethod)
	}

	if err := srv.validate.Struct(normalized); err != nil {
		return nil, toValidationError(err)
	}

	if !entity.PaymentMethod(normalized.PaymentMethod).IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPaymentMethod, "payment method %q", normalized.PaymentMethod)
	}

	return normalized, nil
}

// loadCart returns the owner's non-empty cart with every line carrying a product snapshot.
func (srv *checkoutService) loadCart(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindCartByOwner(ctx, owner)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.WithStack(domainerrors.ErrEmptyCart)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}
	if cart.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrEmptyCart)
	}

	missing := cart.MissingSnapshots()
	if len(missing) == 0 {
		return cart, nil
	}

	products, err := srv.productRepo.FindProductsByIDs(ctx, missing)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products for checkout")
	}
	for _, product := range products {
		cart.FillSnapshot(product.ID, product.Snapshot())
	}

	if still := cart.MissingSnapshots(); len(still) > 0 {
		return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", still[0])
	}

	return cart, nil
}

func findOrCreateCustomer(ctx context.Context, customerRepo repository.CustomerRepository, contact entity.ContactDetails) (*entity.Customer, error) {
	customer, err := customerRepo.FindCustomerByEmail(ctx, contact.Email)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, errors.Wrap(err, "failed to find customer")
	}

	customer = &entity.Customer{
		ID:      uuid.New(),
		Name:    contact.Name,
		Email:   strings.ToLower(contact.Email),
		Phone:   contact.Phone,
		Address: contact.Address,
	}
	if err := customerRepo.CreateCustomer(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	return customer, nil
}

func confirmationURL(baseURL string, orderID uuid.UUID) string {
	return baseURL + "/order-confirmation?orderId=" + orderID.String()
}
