package entity

import "time"

// CartItem is one pending line in a user's cart. There is at most one row
// per (UserID, ProductID) pair; adding a product that is already present
// increases Quantity on the existing row instead of inserting another.
type CartItem struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// CartItemWithProduct is the cart read-model: the cart line enriched with
// its product, which in turn carries the seller (two-level embed).
type CartItemWithProduct struct {
	CartItem
	Product ProductWithSeller `json:"product"`
}
