package repository

import (
	"context"
	"errors"

	"prelovin/internal/domain/entity"
)

// ErrCartItemNotFound is returned when no cart row exists for the lookup.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines persistence operations for the shopping cart.
type CartRepository interface {
	// FindByUser returns every cart row for the user, each enriched with
	// its product and the product's seller (two-level embed).
	FindByUser(ctx context.Context, userID string) ([]entity.CartItemWithProduct, error)

	// FindByID retrieves a single raw cart row by its id.
	FindByID(ctx context.Context, id int64) (*entity.CartItem, error)

	// FindByUserAndProduct retrieves the single row for the (user, product)
	// pair, if any. Used for merge-on-add deduplication.
	FindByUserAndProduct(ctx context.Context, userID string, productID int64) (*entity.CartItem, error)

	// Add inserts a new row for (item.UserID, item.ProductID), or, when one
	// already exists, increases its quantity by item.Quantity. The resulting
	// row is returned. Stock validation is the caller's responsibility.
	Add(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error)

	// UpdateQuantity overwrites the row's quantity. The layer does not
	// clamp; quantity >= 1 is the caller's contract.
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*entity.CartItem, error)

	// Remove hard-deletes the row. Removing an absent id is not an error.
	Remove(ctx context.Context, id int64) error

	// Clear deletes every cart row for the user. Called only after a
	// successful order creation.
	Clear(ctx context.Context, userID string) error
}
