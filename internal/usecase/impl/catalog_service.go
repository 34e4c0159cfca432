package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultProductPageLimit = 12
	maxProductPageLimit     = 100
)

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCatalogService creates the catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) (*usecase.ProductPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultProductPageLimit
	}
	if filter.Limit > maxProductPageLimit {
		filter.Limit = maxProductPageLimit
	}
	if filter.SortBy == "" {
		filter.SortBy = entity.ProductSortCreatedAt
		filter.SortDesc = true
	}
	if !filter.SortBy.IsValid() {
		return nil, domainerrors.NewValidationError(map[string]string{"sort": "must be one of createdAt, price, name"})
	}
	if filter.PriceMin != nil && filter.PriceMax != nil && filter.PriceMin.GreaterThan(*filter.PriceMax) {
		return nil, domainerrors.NewValidationError(map[string]string{"priceMin": "must not exceed priceMax"})
	}

	products, total, err := srv.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{
		Items:      products,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(input.Name),
		Description:   strings.TrimSpace(input.Description),
		Price:         input.Price,
		PreviousPrice: input.PreviousPrice,
		Images:        input.Images,
		CategoryID:    input.CategoryID,
		Featured:      input.Featured,
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	if err := srv.validateProduct(ctx, product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID.String()), slog.String("name", product.Name))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, patch *usecase.ProductPatch) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	applyProductPatch(product, patch)

	if err := srv.validateProduct(ctx, product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", id)
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.String("product_id", id.String()))

	return product, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := srv.productRepo.DeleteProduct(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", id)
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", id.String()))

	return nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.NewValidationError(map[string]string{"name": "is required"})
	}

	category := &entity.Category{
		ID:    uuid.New(),
		Name:  name,
		Image: strings.TrimSpace(input.Image),
	}

	err := srv.categoryRepo.CreateCategory(ctx, category)
	if errors.Is(err, repository.ErrDuplicateCategory) {
		return nil, errors.Wrapf(domainerrors.ErrCategoryAlreadyExists, "category %q", name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (srv *catalogService) validateProduct(ctx context.Context, product *entity.Product) error {
	fields := map[string]string{}
	if product.Name == "" {
		fields["name"] = "is required"
	}
	if product.Price.IsNegative() {
		fields["price"] = "must not be negative"
	}
	if product.PreviousPrice != nil && product.PreviousPrice.IsNegative() {
		fields["previousPrice"] = "must not be negative"
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	if len(product.Images) > entity.MaxProductImages {
		return errors.WithStack(domainerrors.ErrTooManyImages)
	}

	if product.CategoryID != nil {
		_, err := srv.categoryRepo.FindCategoryByID(ctx, *product.CategoryID)
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrapf(domainerrors.ErrCategoryNotFound, "category %s", *product.CategoryID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find category")
		}
	}

	return nil
}

func applyProductPatch(product *entity.Product, patch *usecase.ProductPatch) {
	if patch.Name != nil {
		product.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		product.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.PreviousPrice != nil {
		product.PreviousPrice = patch.PreviousPrice
	}
	if patch.Images != nil {
		product.Images = patch.Images
	}
	if patch.CategoryID != nil {
		product.CategoryID = patch.CategoryID
	}
	if patch.Featured != nil {
		product.Featured = *patch.Featured
	}
}

func totalPages(total int64, limit int) int {
	if limit < 1 || total == 0 {
		return 0
	}

	return int((total + int64(limit) - 1) / int64(limit))
}
