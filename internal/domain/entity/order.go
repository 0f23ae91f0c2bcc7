package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the immutable record of a checkout. TotalAmount is a snapshot
// computed when the order was placed and is never recomputed; only Status
// and UpdatedAt change after creation.
type Order struct {
	ID              int64           `json:"id"`
	BuyerID         string          `json:"buyerId"`
	Status          OrderStatus     `json:"status"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ShippingAddress string          `json:"shippingAddress"`
	ShippingCity    string          `json:"shippingCity"`
	ShippingPhone   string          `json:"shippingPhone"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderItem is one product line within an order. Price and SellerID are
// snapshots taken at checkout time, deliberately independent of any later
// change to the product row. Rows are immutable once created; the per-line
// Status is not kept in lockstep with the order header's status.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	SellerID  string          `json:"sellerId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Status    OrderStatus     `json:"status"`
}

// OrderItemWithProduct pairs an order line with the current product row for
// display purposes. Money and seller come from the snapshot fields on the
// line itself; Product supplies live name/images and is nil when the listing
// has since been deleted.
type OrderItemWithProduct struct {
	OrderItem
	Product *Product `json:"product"`
}

// OrderWithItems is the order read-model: header plus enriched lines.
type OrderWithItems struct {
	Order
	Items []OrderItemWithProduct `json:"items"`
}
