package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service      usecase.CheckoutUsecase
	txManager    *mockRepo.MockTransactionManager
	carts        *memoryCartRepo
	productRepo  *mockRepo.MockProductRepository
	customerRepo *mockRepo.MockCustomerRepository
	orderRepo    *mockRepo.MockOrderRepository
	notifier     *mockUC.MockNotificationDispatcher
	reminders    *mockUC.MockReminderUsecase
	publisher    *mockSvc.MockEventPublisher
	metrics      *mockSvc.MockMetricsRecorder
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	fx := checkoutServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		carts:        newMemoryCartRepo(),
		productRepo:  mockRepo.NewMockProductRepository(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		notifier:     mockUC.NewMockNotificationDispatcher(t),
		reminders:    mockUC.NewMockReminderUsecase(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
	}

	srv, err := NewCheckoutService(CheckoutServiceParams{
		TxManager:   fx.txManager,
		CartRepo:    fx.carts,
		ProductRepo: fx.productRepo,
		Notifier:    fx.notifier,
		Reminders:   fx.reminders,
		Publisher:   fx.publisher,
		Metrics:     fx.metrics,
		Config: &config.Config{Checkout: &config.CheckoutConfig{
			DeliveryFee:          "2500",
			CountryCode:          "+234",
			BaseURL:              "https://shop.example.com/",
			DefaultPaymentMethod: "cash",
		}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	srv.(*checkoutService).now = fixedClock
	fx.service = srv

	return fx
}

// expectTransaction runs the checkout transaction against the fixture repositories.
func (fx checkoutServiceFixtures) expectTransaction(t *testing.T) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().CustomerRepo().Return(fx.customerRepo).Maybe()
			factory.EXPECT().OrderRepo().Return(fx.orderRepo).Maybe()

			return fn(factory)
		})
}

// expectSideEffects accepts the post-commit notification, reminder and event.
func (fx checkoutServiceFixtures) expectSideEffects() {
	fx.notifier.EXPECT().NotifyNewOrder(mock.Anything, mock.Anything).Return()
	fx.reminders.EXPECT().ScheduleReminder(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)
}

func validCheckoutInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		Name:    "Ada Obi",
		Email:   "ada@example.com",
		Phone:   "08031234567",
		Address: "12 Marina Road, Lagos",
	}
}

func TestCheckoutService_PlaceOrder_ComputesTotals(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	owner := entity.SessionOwner("s1")
	p1 := newTestProduct(t, "P1", "1000")
	p2 := newTestProduct(t, "P2", "500")

	cart := entity.NewCart(owner)
	cart.AddItem(p1.ID, 2, p1.Snapshot(), testNow)
	cart.AddItem(p2.ID, 1, p2.Snapshot(), testNow)
	fx.carts.put(cart)

	customerID := uuid.New()
	var created *entity.Order

	fx.expectTransaction(t)
	fx.customerRepo.EXPECT().FindCustomerByEmail(mock.Anything, "ada@example.com").
		Return(&entity.Customer{ID: customerID, Email: "ada@example.com"}, nil)
	fx.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { created = order }).
		Return(nil)
	fx.metrics.EXPECT().RecordOrderOperation(metricOpCheckout, metricSuccess).Return()
	fx.expectSideEffects()

	out, err := fx.service.PlaceOrder(ctx, owner, validCheckoutInput())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, out.OrderID)
	assert.Equal(t, "https://shop.example.com/order-confirmation?orderId="+created.ID.String(), out.ConfirmationURL)
	assert.Equal(t, "2500", created.Subtotal.String())
	assert.Equal(t, "5000", created.Total.String())
	assert.Equal(t, customerID, created.CustomerID)
	assert.Equal(t, "+2348031234567", created.Contact.Phone)
	assert.Equal(t, entity.PaymentMethodCash, created.PaymentMethod)
	assert.Equal(t, entity.OrderStatusPending, created.Status)
	assert.False(t, created.Confirmed)
	assert.Nil(t, created.ProofOfPayment)

	stored, err := fx.carts.FindCartByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, stored.Items, "cart must be cleared after checkout")
}

func TestCheckoutService_PlaceOrder_SingleItemScenario(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	owner := entity.UserOwner(uuid.New())
	p2 := newTestProduct(t, "P2", "2999.99")

	cart := entity.NewCart(owner)
	cart.AddItem(p2.ID, 1, p2.Snapshot(), testNow)
	fx.carts.put(cart)

	var created *entity.Order

	fx.expectTransaction(t)
	fx.customerRepo.EXPECT().FindCustomerByEmail(mock.Anything, "ada@example.com").Return(nil, repository.ErrCustomerNotFound)
	fx.customerRepo.EXPECT().CreateCustomer(mock.Anything, mock.AnythingOfType("*entity.Customer")).Return(nil)
	fx.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { created = order }).
		Return(nil)
	fx.metrics.EXPECT().RecordOrderOperation(metricOpCheckout, metricSuccess).Return()
	fx.expectSideEffects()

	input := validCheckoutInput()
	input.PaymentMethod = "bank_transfer"
	_, err := fx.service.PlaceOrder(ctx, owner, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "2999.99", created.Subtotal.StringFixed(2))
	assert.Equal(t, "5499.99", created.Total.StringFixed(2))
	assert.Equal(t, entity.OrderStatusPending, created.Status)
	assert.False(t, created.Confirmed)
	assert.Equal(t, entity.PaymentMethodBankTransfer, created.PaymentMethod)

	// A later price change must not reach the frozen order line.
	p2.Price = price(t, "3999.99")
	assert.Equal(t, "2999.99", created.Items[0].UnitPrice.StringFixed(2))
}

func TestCheckoutService_PlaceOrder_SideEffectFailuresDoNotFail(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	owner := entity.SessionOwner("s1")
	p1 := newTestProduct(t, "P1", "1000")

	cart := entity.NewCart(owner)
	cart.AddItem(p1.ID, 1, p1.Snapshot(), testNow)
	fx.carts.put(cart)

	fx.expectTransaction(t)
	fx.customerRepo.EXPECT().FindCustomerByEmail(mock.Anything, mock.Anything).Return(&entity.Customer{ID: uuid.New()}, nil)
	fx.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
	fx.metrics.EXPECT().RecordOrderOperation(metricOpCheckout, metricSuccess).Return()
	fx.notifier.EXPECT().NotifyNewOrder(mock.Anything, mock.Anything).Return()
	fx.reminders.EXPECT().ScheduleReminder(mock.Anything, mock.Anything).Return(errors.New("scheduler stopped"))
	fx.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	out, err := fx.service.PlaceOrder(ctx, owner, validCheckoutInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, out.OrderID)
}

func TestCheckoutService_PlaceOrder_ValidationErrors(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	fx.metrics.EXPECT().RecordOrderOperation(metricOpCheckout, metricFailed).Return()

	_, err := fx.service.PlaceOrder(ctx, entity.SessionOwner("s1"), &usecase.CheckoutInput{
		Name:  "  ",
		Email: "not-an-email",
		Phone: "12",
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	fields := validationErr.Fields()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "address")
}

func TestCheckoutService_PlaceOrder_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid payment method", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		fx.metrics.EXPECT().RecordOrderOperation(metricOpCheckout, metricFailed).Return()

		input := validCheckoutInput()
		input.PaymentMethod = "crypto"
		_, err := fx.service.PlaceOrder(ctx, entity.SessionOwner("s1"), input)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
	})

	t.Run("missing cart", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		fx.metrics.EXPECT().RecordOrderOperation(metricOpCheckout, metricFailed).Return()

		_, err := fx.service.PlaceOrder(ctx, entity.SessionOwner("s1"), validCheckoutInput())

		assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	})

	t.Run("empty cart", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		fx.carts.put(entity.NewCart(entity.SessionOwner("s1")))
		fx.metrics.EXPECT().RecordOrderOperation(metricOpCheckout, metricFailed).Return()

		_, err := fx.service.PlaceOrder(ctx, entity.SessionOwner("s1"), validCheckoutInput())

		assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	})

	t.Run("no identity", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		fx.metrics.EXPECT().RecordOrderOperation(metricOpCheckout, metricFailed).Return()

		_, err := fx.service.PlaceOrder(ctx, entity.CartOwner{}, validCheckoutInput())

		assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)
	})
}

func TestCheckoutService_PlaceOrder_PersistenceFailureKeepsCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	owner := entity.SessionOwner("s1")
	p1 := newTestProduct(t, "P1", "1000")

	cart := entity.NewCart(owner)
	cart.AddItem(p1.ID, 1, p1.Snapshot(), testNow)
	fx.carts.put(cart)

	fx.expectTransaction(t)
	fx.customerRepo.EXPECT().FindCustomerByEmail(mock.Anything, mock.Anything).Return(&entity.Customer{ID: uuid.New()}, nil)
	fx.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	fx.metrics.EXPECT().RecordOrderOperation(metricOpCheckout, metricFailed).Return()

	_, err := fx.service.PlaceOrder(ctx, owner, validCheckoutInput())

	require.Error(t, err)

	stored, err := fx.carts.FindCartByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 1)
}

func TestNewCheckoutService_InvalidDeliveryFee(t *testing.T) {
	_, err := NewCheckoutService(CheckoutServiceParams{
		Config: &config.Config{Checkout: &config.CheckoutConfig{DeliveryFee: "free"}},
		Logger: discardLogger(),
	})

	assert.Error(t, err)
}
