package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var terminalStatuses = []string{
	string(entity.OrderStatusDelivered),
	string(entity.OrderStatusCancelled),
}

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func preloadOrderItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// CreateOrder inserts the order and its lines.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "order references an unknown customer")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "order line violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order with its lines.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Scopes(preloadOrderItems).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ListOrders returns one page of orders, newest first.
func (repo *orderRepository) ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Confirmed != nil {
		query = query.Where("confirmed = ?", *filter.Confirmed)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := query.
		Scopes(preloadOrderItems).
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return toOrderDomains(orderModels), total, nil
}

// ListReminderCandidates returns unconfirmed, non-terminal orders without a sent reminder.
func (repo *orderRepository) ListReminderCandidates(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("confirmed = ? AND reminder_sent_at IS NULL AND status NOT IN ?", false, terminalStatuses).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reminder candidates")
	}

	return toOrderDomains(orderModels), nil
}

// MarkOrderConfirmed confirms an unconfirmed, non-terminal order. A Pending order moves
// to Processing; later statuses are kept.
func (repo *orderRepository) MarkOrderConfirmed(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND confirmed = ? AND status NOT IN ?", id, false, terminalStatuses).
		Updates(map[string]any{
			"confirmed":    true,
			"confirmed_at": at,
			"status": gorm.Expr("CASE WHEN status = ? THEN ? ELSE status END",
				string(entity.OrderStatusPending), string(entity.OrderStatusProcessing)),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to confirm order")
	}

	if result.RowsAffected == 0 {
		return repo.missingOrStateChanged(ctx, id)
	}

	return nil
}

// AttachPaymentProof stores the proof reference and the resulting status.
func (repo *orderRepository) AttachPaymentProof(ctx context.Context, id uuid.UUID, proofRef string, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"proof_of_payment": proofRef,
			"status":           string(status),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to attach payment proof")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateOrderStatus writes to only when the order is still in from.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repo.missingOrStateChanged(ctx, id)
	}

	return nil
}

// MarkReminderSent records when the confirmation reminder went out.
func (repo *orderRepository) MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("reminder_sent_at", at)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark reminder sent")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// missingOrStateChanged tells a missing order apart from a failed conditional update.
func (repo *orderRepository) missingOrStateChanged(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check order existence")
	}

	if count == 0 {
		return repository.ErrOrderNotFound
	}

	return repository.ErrOrderStateChanged
}

// --- Mapper Functions ---

func toOrderDomains(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &entity.Order{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Contact: entity.ContactDetails{
			Name:    data.ContactName,
			Email:   data.ContactEmail,
			Phone:   data.ContactPhone,
			Address: data.ContactAddress,
			Notes:   data.ContactNotes,
		},
		Items:          items,
		Subtotal:       data.Subtotal,
		DeliveryFee:    data.DeliveryFee,
		Total:          data.Total,
		PaymentMethod:  entity.PaymentMethod(data.PaymentMethod),
		Status:         entity.OrderStatus(data.Status),
		Confirmed:      data.Confirmed,
		ConfirmedAt:    data.ConfirmedAt,
		ProofOfPayment: data.ProofOfPayment,
		ReminderSentAt: data.ReminderSentAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		items = append(items, model.OrderItemModel{
			OrderID:   data.ID,
			Position:  i,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &model.OrderModel{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		ContactName:    data.Contact.Name,
		ContactEmail:   data.Contact.Email,
		ContactPhone:   data.Contact.Phone,
		ContactAddress: data.Contact.Address,
		ContactNotes:   data.Contact.Notes,
		Subtotal:       data.Subtotal,
		DeliveryFee:    data.DeliveryFee,
		Total:          data.Total,
		PaymentMethod:  string(data.PaymentMethod),
		Status:         string(data.Status),
		Confirmed:      data.Confirmed,
		ConfirmedAt:    data.ConfirmedAt,
		ProofOfPayment: data.ProofOfPayment,
		ReminderSentAt: data.ReminderSentAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		Items:          items,
	}
}
