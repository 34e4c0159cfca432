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
)

var productSortColumns = map[entity.ProductSortField]string{
	entity.ProductSortCreatedAt: "created_at",
	entity.ProductSortPrice:     "price",
	entity.ProductSortName:      "name",
}

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// ListProducts applies the filter, counts the matches and loads one page.
func (repo *productRepository) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	// Share the conditions between the count and the page query.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count products")
	}

	column, ok := productSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := " ASC"
	if filter.SortDesc {
		direction = " DESC"
	}

	var productModels []*model.ProductModel
	if err := query.
		Order(column + direction).
		Order("id").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return toProductDomains(productModels), total, nil
}

// FindProductByID retrieves a product by its ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindProductsByIDs retrieves the existing products among ids. Missing ids are skipped.
func (repo *productRepository) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	return toProductDomains(productModels), nil
}

// CreateProduct persists a new product.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// UpdateProduct saves every mutable column of the product.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "description", "price", "previous_price", "images", "category_id", "featured").
		Updates(productM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteProduct soft-deletes a product. Carts and orders keep their snapshots.
func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

func (repo *categoryRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{
		ID:    category.ID,
		Name:  category.Name,
		Image: category.Image,
	}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCategory
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toProductDomains(productModels []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := data.Images
	if images == nil {
		images = []string{}
	}

	return &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		PreviousPrice: data.PreviousPrice,
		Images:        images,
		CategoryID:    data.CategoryID,
		Featured:      data.Featured,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	images := data.Images
	if images == nil {
		images = []string{}
	}

	return &model.ProductModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		PreviousPrice: data.PreviousPrice,
		Images:        images,
		CategoryID:    data.CategoryID,
		Featured:      data.Featured,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		Image:     data.Image,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
