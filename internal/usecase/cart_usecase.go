package usecase

import (
	"context"

	"prelovin/internal/domain/entity"
)

// CartUsecase defines the interface for shopping cart operations.
type CartUsecase interface {
	// GetCart returns the user's cart lines enriched with product and
	// seller, newest addition first.
	GetCart(ctx context.Context, userID string) ([]entity.CartItemWithProduct, error)

	// AddToCart puts quantity units of the product into the user's cart,
	// merging into the existing line when one exists. It rejects unknown
	// products, quantities exceeding current stock, and the user's own
	// listings.
	AddToCart(ctx context.Context, userID string, input *AddToCartInput) (*entity.CartItem, error)

	// UpdateQuantity overwrites the line's quantity. The line must belong
	// to the caller.
	UpdateQuantity(ctx context.Context, userID string, itemID int64, quantity int) (*entity.CartItem, error)

	// RemoveItem deletes the line. The line must belong to the caller;
	// removing an already-gone line succeeds silently.
	RemoveItem(ctx context.Context, userID string, itemID int64) error
}

// --- Input DTOs ---

// AddToCartInput defines the data required to add a product to the cart.
// An omitted quantity means one unit.
type AddToCartInput struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"omitempty,gt=0"`
}
