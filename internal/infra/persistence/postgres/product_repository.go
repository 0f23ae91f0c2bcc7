package postgres

import (
	"context"

	"prelovin/internal/domain/entity"
	domainerrors "prelovin/internal/domain/errors"
	"prelovin/internal/domain/repository"
	"prelovin/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindActive returns active products matching the optional filters,
// enriched with seller and category, newest-first.
func (repo *productRepository) FindActive(ctx context.Context, filters repository.ProductFilters) ([]entity.ProductWithSeller, error) {
	query := repo.db.WithContext(ctx).
		Preload("Seller").
		Preload("Category").
		Where("is_active = ?", true).
		Order("created_at DESC")

	if filters.CategoryID != 0 {
		query = query.Where("category_id = ?", filters.CategoryID)
	}
	if filters.SellerID != "" {
		query = query.Where("seller_id = ?", filters.SellerID)
	}

	var productModels []model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	products := make([]entity.ProductWithSeller, 0, len(productModels))
	for i := range productModels {
		products = append(products, *toProductWithSellerDomain(&productModels[i]))
	}

	return products, nil
}

// FindByID retrieves a single enriched product regardless of is_active.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.ProductWithSeller, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Preload("Seller").
		Preload("Category").
		First(&productM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductWithSellerDomain(&productM), nil
}

// FindBySeller returns the seller's raw products, inactive included,
// newest-first.
func (repo *productRepository) FindBySeller(ctx context.Context, sellerID string) ([]entity.Product, error) {
	var productModels []model.ProductModel

	err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	products := make([]entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, *toProductDomain(&productModels[i]))
	}

	return products, nil
}

// Create inserts the product with counters zeroed and isActive defaulted
// true, filling generated values back into the entity.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.Views = 0
	productM.SoldCount = 0
	productM.IsActive = true

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid seller or category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.IsActive = productM.IsActive
	product.Views = productM.Views
	product.SoldCount = productM.SoldCount
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update merges the supplied fields into the row and returns the result.
func (repo *productRepository) Update(ctx context.Context, id int64, update repository.ProductUpdate) (*entity.Product, error) {
	values := model.ProductModel{}
	columns := make([]string, 0, 10)

	if update.CategoryID != nil {
		values.CategoryID = update.CategoryID
		columns = append(columns, "category_id")
	}
	if update.Name != nil {
		values.Name = *update.Name
		columns = append(columns, "name")
	}
	if update.Description != nil {
		values.Description = *update.Description
		columns = append(columns, "description")
	}
	if update.Price != nil {
		values.Price = *update.Price
		columns = append(columns, "price")
	}
	if update.OriginalPrice != nil {
		values.OriginalPrice = update.OriginalPrice
		columns = append(columns, "original_price")
	}
	if update.Condition != nil {
		values.Condition = string(*update.Condition)
		columns = append(columns, "condition")
	}
	if update.Images != nil {
		values.Images = *update.Images
		columns = append(columns, "images")
	}
	if update.Stock != nil {
		values.Stock = *update.Stock
		columns = append(columns, "stock")
	}
	if update.Location != nil {
		values.Location = *update.Location
		columns = append(columns, "location")
	}
	if update.IsActive != nil {
		values.IsActive = *update.IsActive
		columns = append(columns, "is_active")
	}

	if len(columns) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Select(columns).
			Updates(values)
		if result.Error != nil {
			if isCheckConstraintViolation(result.Error) {
				return nil, domainerrors.ErrValidationFailed.WrapMessage("stock must not be negative")
			}

			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrProductNotFound
		}
	}

	var saved model.ProductModel
	if err := repo.db.WithContext(ctx).First(&saved, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load updated product")
	}

	return toProductDomain(&saved), nil
}

// Delete hard-deletes the row. Historical order items keep their product
// snapshot columns and a dangling product_id.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// IncrementViews bumps the view counter with a server-side expression so
// concurrent increments never lose updates. updated_at is left untouched.
func (repo *productRepository) IncrementViews(ctx context.Context, id int64) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return errors.Wrap(err, "failed to increment product views")
	}

	return nil
}

// DecrementStock atomically moves quantity units from stock to sold_count,
// guarded by stock >= quantity; the guard failing distinguishes
// insufficient stock from a vanished product.
func (repo *productRepository) DecrementStock(ctx context.Context, id int64, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumns(map[string]any{
			"stock":      gorm.Expr("stock - ?", quantity),
			"sold_count": gorm.Expr("sold_count + ?", quantity),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement product stock")
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

// --- Mapper functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		SellerID:      data.SellerID,
		CategoryID:    data.CategoryID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		OriginalPrice: data.OriginalPrice,
		Condition:     entity.Condition(data.Condition),
		Images:        data.Images,
		Stock:         data.Stock,
		Location:      data.Location,
		IsActive:      data.IsActive,
		Views:         data.Views,
		SoldCount:     data.SoldCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toProductWithSellerDomain(data *model.ProductModel) *entity.ProductWithSeller {
	if data == nil {
		return nil
	}

	return &entity.ProductWithSeller{
		Product:  *toProductDomain(data),
		Seller:   toUserDomain(data.Seller),
		Category: toCategoryDomain(data.Category),
	}
}

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
		SellerID:      data.SellerID,
		CategoryID:    data.CategoryID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		OriginalPrice: data.OriginalPrice,
		Condition:     string(data.Condition),
		Images:        images,
		Stock:         data.Stock,
		Location:      data.Location,
		IsActive:      data.IsActive,
		Views:         data.Views,
		SoldCount:     data.SoldCount,
	}
}
