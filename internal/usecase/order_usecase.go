package usecase

import (
	"context"

	"prelovin/internal/domain/entity"
)

// OrderUsecase defines the interface for checkout and order history.
type OrderUsecase interface {
	// PlaceOrder converts the buyer's entire cart into an order. Stock is
	// decremented atomically per line inside one transaction; any line
	// failing the stock guard aborts the whole order. The cart is cleared
	// only after the transaction commits.
	PlaceOrder(ctx context.Context, buyerID string, input *PlaceOrderInput) (*entity.Order, error)

	// ListOrders returns the buyer's orders newest-first, lines embedded.
	ListOrders(ctx context.Context, buyerID string) ([]entity.OrderWithItems, error)

	// GetOrder returns one order with its lines. Any authenticated caller
	// may read any order.
	GetOrder(ctx context.Context, id int64) (*entity.OrderWithItems, error)

	// UpdateStatus moves the order along the status state machine,
	// rejecting transitions the table does not allow. Only the buyer or a
	// seller of one of the order's lines may update it.
	UpdateStatus(ctx context.Context, userID string, id int64, status entity.OrderStatus) (*entity.Order, error)
}

// --- Input DTOs ---

// PlaceOrderInput defines the shipping data required at checkout.
type PlaceOrderInput struct {
	ShippingAddress string `json:"shippingAddress" validate:"required"`
	ShippingCity    string `json:"shippingCity"`
	ShippingPhone   string `json:"shippingPhone"`
	Notes           string `json:"notes"`
}
