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

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByUser returns the user's cart rows enriched with product and seller,
// newest addition first.
func (repo *cartRepository) FindByUser(ctx context.Context, userID string) ([]entity.CartItemWithProduct, error) {
	var itemModels []model.CartItemModel

	err := repo.db.WithContext(ctx).
		Preload("Product.Seller").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]entity.CartItemWithProduct, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, *toCartItemWithProductDomain(&itemModels[i]))
	}

	return items, nil
}

func (repo *cartRepository) FindByID(ctx context.Context, id int64) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	err := repo.db.WithContext(ctx).First(&itemM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by id")
	}

	return toCartItemDomain(&itemM), nil
}

func (repo *cartRepository) FindByUserAndProduct(ctx context.Context, userID string, productID int64) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by user and product")
	}

	return toCartItemDomain(&itemM), nil
}

// Add merges into an existing (user, product) row when one exists, otherwise
// inserts a fresh row. The unique index on the pair backs the invariant.
func (repo *cartRepository) Add(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	existing, err := repo.FindByUserAndProduct(ctx, item.UserID, item.ProductID)
	if err != nil && !errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, err
	}
	if existing != nil {
		return repo.UpdateQuantity(ctx, existing.ID, existing.Quantity+item.Quantity)
	}

	itemM := fromCartItemDomain(item)
	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid product reference")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	return toCartItemDomain(itemM), nil
}

func (repo *cartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (*entity.CartItem, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart quantity")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCartItemNotFound
	}

	var itemM model.CartItemModel
	if err := repo.db.WithContext(ctx).First(&itemM, "id = ?", id).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load updated cart item")
	}

	return toCartItemDomain(&itemM), nil
}

// Remove hard-deletes the row. Removing an id that no longer exists is not
// an error.
func (repo *cartRepository) Remove(ctx context.Context, id int64) error {
	err := repo.db.WithContext(ctx).Delete(&model.CartItemModel{}, "id = ?", id).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove cart item")
	}

	return nil
}

func (repo *cartRepository) Clear(ctx context.Context, userID string) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper functions ---

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
	}
}

func toCartItemWithProductDomain(data *model.CartItemModel) *entity.CartItemWithProduct {
	if data == nil {
		return nil
	}

	item := &entity.CartItemWithProduct{
		CartItem: *toCartItemDomain(data),
	}
	if data.Product != nil {
		item.Product = entity.ProductWithSeller{
			Product: *toProductDomain(data.Product),
			Seller:  toUserDomain(data.Product.Seller),
		}
	}

	return item
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
	}
}
