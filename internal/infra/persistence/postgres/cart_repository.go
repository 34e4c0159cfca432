package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func ownerScope(owner entity.CartOwner) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if owner.UserID != nil {
			return db.Where("user_id = ?", *owner.UserID)
		}

		return db.Where("session_id = ?", owner.SessionID)
	}
}

// FindCartByOwner retrieves the cart bound to owner.
func (repo *cartRepository) FindCartByOwner(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Scopes(ownerScope(owner)).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by owner")
	}

	return toCartDomain(&cartM), nil
}

// CreateCart inserts an empty cart. If the owner already has one, that cart is loaded instead.
func (repo *cartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	if err := cart.Owner.Validate(); err != nil {
		return err
	}

	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	cartM := fromCartDomain(cart)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(cartM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create cart")
	}

	if result.RowsAffected == 0 {
		existing, err := repo.FindCartByOwner(ctx, cart.Owner)
		if err != nil {
			return errors.Wrap(err, "failed to load concurrently created cart")
		}
		*cart = *existing

		return nil
	}

	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// SaveCartItems overwrites the stored lines with cart.Items.
func (repo *cartRepository) SaveCartItems(ctx context.Context, cart *entity.Cart) error {
	return repo.writeItems(ctx, cart.Owner, fromCartItems(cart.Items))
}

// ClearCartItems empties the owner's cart.
func (repo *cartRepository) ClearCartItems(ctx context.Context, owner entity.CartOwner) error {
	return repo.writeItems(ctx, owner, []model.CartItemData{})
}

func (repo *cartRepository) writeItems(ctx context.Context, owner entity.CartOwner, items []model.CartItemData) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Scopes(ownerScope(owner)).
		Select("items", "updated_at").
		Updates(&model.CartModel{Items: items})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save cart items")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	owner := entity.CartOwner{UserID: data.UserID}
	if data.SessionID != nil {
		owner.SessionID = *data.SessionID
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Snapshot: entity.ProductSnapshot{
				Name:   item.Name,
				Price:  item.Price,
				Images: item.Images,
			},
			AddedAt: item.AddedAt,
		})
	}

	return &entity.Cart{
		ID:        data.ID,
		Owner:     owner,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	cartM := &model.CartModel{
		ID:        data.ID,
		UserID:    data.Owner.UserID,
		Items:     fromCartItems(data.Items),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Owner.UserID == nil {
		sessionID := data.Owner.SessionID
		cartM.SessionID = &sessionID
	}

	return cartM
}

func fromCartItems(items []entity.CartItem) []model.CartItemData {
	data := make([]model.CartItemData, 0, len(items))
	for _, item := range items {
		data = append(data, model.CartItemData{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Name:      item.Snapshot.Name,
			Price:     item.Snapshot.Price,
			Images:    item.Snapshot.Images,
			AddedAt:   item.AddedAt,
		})
	}

	return data
}
