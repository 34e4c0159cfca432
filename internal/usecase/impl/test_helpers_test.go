package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return testNow
}

func price(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", value, err)
	}

	return d
}

func newTestProduct(t *testing.T, name, amount string) *entity.Product {
	t.Helper()

	return &entity.Product{
		ID:     uuid.New(),
		Name:   name,
		Price:  price(t, amount),
		Images: []string{"/img/" + name + ".jpg"},
	}
}

func newTestOrder(t *testing.T, method entity.PaymentMethod) *entity.Order {
	t.Helper()

	return &entity.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Contact: entity.ContactDetails{
			Name:    "Ada Obi",
			Email:   "ada@example.com",
			Phone:   "+2348031234567",
			Address: "12 Marina Road, Lagos",
		},
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), Name: "Ankara Tote", Quantity: 2, UnitPrice: price(t, "1000")},
		},
		Subtotal:      price(t, "2000"),
		DeliveryFee:   price(t, "2500"),
		Total:         price(t, "4500"),
		PaymentMethod: method,
		Status:        entity.OrderStatusPending,
		CreatedAt:     testNow.Add(-time.Hour),
	}
}

// memoryCartRepo is an in-memory CartRepository keyed by owner.
type memoryCartRepo struct {
	mu    sync.Mutex
	carts map[string]*entity.Cart
}

func newMemoryCartRepo() *memoryCartRepo {
	return &memoryCartRepo{carts: map[string]*entity.Cart{}}
}

func (r *memoryCartRepo) FindCartByOwner(_ context.Context, owner entity.CartOwner) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.carts[owner.String()]
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	return cloneCart(stored), nil
}

func (r *memoryCartRepo) CreateCart(_ context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.carts[cart.Owner.String()]; ok {
		*cart = *cloneCart(existing)

		return nil
	}
	cart.ID = uuid.New()
	r.carts[cart.Owner.String()] = cloneCart(cart)

	return nil
}

func (r *memoryCartRepo) SaveCartItems(_ context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[cart.Owner.String()]; !ok {
		return repository.ErrCartNotFound
	}
	r.carts[cart.Owner.String()] = cloneCart(cart)

	return nil
}

func (r *memoryCartRepo) ClearCartItems(_ context.Context, owner entity.CartOwner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.carts[owner.String()]
	if !ok {
		return repository.ErrCartNotFound
	}
	stored.Clear()

	return nil
}

func (r *memoryCartRepo) put(cart *entity.Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.Owner.String()] = cloneCart(cart)
}

func cloneCart(cart *entity.Cart) *entity.Cart {
	copied := *cart
	copied.Items = append([]entity.CartItem{}, cart.Items...)

	return &copied
}

// manualScheduler keeps scheduled tasks until the test fires them.
type manualScheduler struct {
	mu    sync.Mutex
	tasks map[string]service.Task
	runAt map[string]time.Time
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{tasks: map[string]service.Task{}, runAt: map[string]time.Time{}}
}

func (s *manualScheduler) ScheduleOnce(key string, runAt time.Time, task service.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks[key] = task
	s.runAt[key] = runAt

	return nil
}

func (s *manualScheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tasks[key]
	delete(s.tasks, key)
	delete(s.runAt, key)

	return ok
}

func (s *manualScheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tasks[key]

	return ok
}

// fireAll runs and removes every pending task.
func (s *manualScheduler) fireAll(ctx context.Context) {
	s.mu.Lock()
	tasks := s.tasks
	s.tasks = map[string]service.Task{}
	s.runAt = map[string]time.Time{}
	s.mu.Unlock()

	for _, task := range tasks {
		task(ctx)
	}
}
