package impl

import (
	"context"
	"log/slog"

	"prelovin/internal/domain/entity"
	domainerrors "prelovin/internal/domain/errors"
	"prelovin/internal/domain/repository"
	"prelovin/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetCart returns the user's enriched cart lines.
func (srv *cartService) GetCart(ctx context.Context, userID string) ([]entity.CartItemWithProduct, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return items, nil
}

// AddToCart puts the product into the user's cart. The stock check is
// against the requested quantity only, not the merged cart total; the
// checkout transaction is the final authority on stock.
func (srv *cartService) AddToCart(ctx context.Context, userID string, input *usecase.AddToCartInput) (*entity.CartItem, error) {
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.Stock < input.Quantity {
		return nil, domainerrors.ErrInsufficientStock
	}
	if product.SellerID == userID {
		return nil, domainerrors.ErrOwnProduct
	}

	item, err := srv.cartRepo.Add(ctx, &entity.CartItem{
		UserID:    userID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add to cart")
	}

	srv.logger.DebugContext(ctx, "cart item added",
		slog.String("userID", userID), slog.Int64("productID", input.ProductID))

	return item, nil
}

// UpdateQuantity overwrites the line's quantity after verifying ownership.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID string, itemID int64, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	if err := srv.requireOwnership(ctx, userID, itemID); err != nil {
		return nil, err
	}

	item, err := srv.cartRepo.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update cart quantity")
	}

	return item, nil
}

// RemoveItem deletes the line after verifying ownership. A line that is
// already gone counts as removed.
func (srv *cartService) RemoveItem(ctx context.Context, userID string, itemID int64) error {
	err := srv.requireOwnership(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCartItemNotFound) {
			return nil
		}

		return err
	}

	if err := srv.cartRepo.Remove(ctx, itemID); err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

func (srv *cartService) requireOwnership(ctx context.Context, userID string, itemID int64) error {
	item, err := srv.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to find cart item")
	}
	if item.UserID != userID {
		return domainerrors.ErrNotCartOwner
	}

	return nil
}
