package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	now         func() time.Time
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService creates the cart service.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) GetCart(ctx context.Context, owner entity.CartOwner) (*usecase.CartView, error) {
	cart, err := srv.getOrCreateCart(ctx, owner)
	if err != nil {
		return nil, err
	}

	if err := srv.backfillSnapshots(ctx, cart); err != nil {
		return nil, err
	}

	return newCartView(cart), nil
}

func (srv *cartService) AddItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if quantity < 1 {
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	cart, err := srv.getOrCreateCart(ctx, owner)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", productID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	cart.AddItem(productID, quantity, product.Snapshot(), srv.now())

	if err := srv.cartRepo.SaveCartItems(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.log(ctx).Debug("Item added to cart",
		slog.String("owner", owner.String()),
		slog.String("product_id", productID.String()),
		slog.Int("quantity", quantity),
	)

	return newCartView(cart), nil
}

func (srv *cartService) UpdateQuantity(ctx context.Context, owner entity.CartOwner, productID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if quantity < 1 {
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	cart, err := srv.findCart(ctx, owner)
	if err != nil {
		return nil, err
	}

	if !cart.SetQuantity(productID, quantity) {
		return nil, errors.Wrapf(domainerrors.ErrCartItemNotFound, "product %s", productID)
	}

	if err := srv.cartRepo.SaveCartItems(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return newCartView(cart), nil
}

func (srv *cartService) RemoveItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID) (*usecase.CartView, error) {
	cart, err := srv.findCart(ctx, owner)
	if err != nil {
		return nil, err
	}

	if cart.RemoveItem(productID) {
		if err := srv.cartRepo.SaveCartItems(ctx, cart); err != nil {
			return nil, errors.Wrap(err, "failed to save cart")
		}
	}

	return newCartView(cart), nil
}

func (srv *cartService) ClearCart(ctx context.Context, owner entity.CartOwner) error {
	if err := owner.Validate(); err != nil {
		return errors.Wrap(domainerrors.ErrIdentityRequired, err.Error())
	}

	err := srv.cartRepo.ClearCartItems(ctx, owner)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// findCart loads an existing cart without creating one.
func (srv *cartService) findCart(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrIdentityRequired, err.Error())
	}

	cart, err := srv.cartRepo.FindCartByOwner(ctx, owner)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrCartNotFound, "owner %s", owner)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

func (srv *cartService) getOrCreateCart(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrIdentityRequired, err.Error())
	}

	cart, err := srv.cartRepo.FindCartByOwner(ctx, owner)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cart = entity.NewCart(owner)
	if err := srv.cartRepo.CreateCart(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	srv.log(ctx).Debug("Cart created", slog.String("owner", owner.String()))

	return cart, nil
}

// backfillSnapshots fills lines stored without product data from the catalog and
// persists the result. Lines whose product is gone keep their empty snapshot.
func (srv *cartService) backfillSnapshots(ctx context.Context, cart *entity.Cart) error {
	missing := cart.MissingSnapshots()
	if len(missing) == 0 {
		return nil
	}

	products, err := srv.productRepo.FindProductsByIDs(ctx, missing)
	if err != nil {
		return errors.Wrap(err, "failed to load products for cart")
	}

	changed := false
	for _, product := range products {
		if cart.FillSnapshot(product.ID, product.Snapshot()) {
			changed = true
		}
	}

	if !changed {
		return nil
	}

	if err := srv.cartRepo.SaveCartItems(ctx, cart); err != nil {
		srv.log(ctx).Warn("Failed to persist backfilled cart", slog.String("owner", cart.Owner.String()), slog.Any("error", err))
	}

	return nil
}

func newCartView(cart *entity.Cart) *usecase.CartView {
	count := 0
	for _, item := range cart.Items {
		count += item.Quantity
	}

	return &usecase.CartView{
		Items:    cart.Lines(),
		Count:    count,
		Subtotal: cart.Subtotal(),
	}
}
