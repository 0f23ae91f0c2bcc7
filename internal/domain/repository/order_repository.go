package repository

import (
	"context"
	"errors"

	"prelovin/internal/domain/entity"
)

// ErrOrderNotFound is returned when no order row exists for the id.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence operations for orders and their lines.
type OrderRepository interface {
	// FindByBuyer returns all orders placed by the buyer, newest-first,
	// each enriched with its lines and their (possibly deleted, hence nil)
	// current products.
	FindByBuyer(ctx context.Context, buyerID string) ([]entity.OrderWithItems, error)

	// FindByID retrieves a single enriched order. No ownership filter is
	// applied at this layer; authorization is the caller's concern.
	FindByID(ctx context.Context, id int64) (*entity.OrderWithItems, error)

	// Create inserts the order header and its lines, stamping each line
	// with the generated order id and filling the generated ids back into
	// the arguments. It performs no stock bookkeeping; run it inside a
	// transaction together with the per-line stock decrements.
	Create(ctx context.Context, order *entity.Order, items []entity.OrderItem) error

	// UpdateStatus overwrites the order's status and refreshes UpdatedAt,
	// returning the updated row.
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error)
}
