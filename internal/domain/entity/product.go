package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a secondhand listing put up for sale by a user.
//
// Counter fields follow strict monotonicity rules: Views and SoldCount only
// ever increase, and Stock never drops below zero. All three are mutated
// through atomic server-side arithmetic, never read-modify-write.
//
// OriginalPrice is the pre-discount price shown struck through on the
// listing; nil when the seller did not set one. Images is an ordered list
// of URLs with the first entry being the primary image.
type Product struct {
	ID            int64            `json:"id"`
	SellerID      string           `json:"sellerId"`
	CategoryID    *int64           `json:"categoryId"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Condition     Condition        `json:"condition"`
	Images        []string         `json:"images"`
	Stock         int              `json:"stock"`
	Location      string           `json:"location"`
	IsActive      bool             `json:"isActive"`
	Views         int              `json:"views"`
	SoldCount     int              `json:"soldCount"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// ProductWithSeller is the read-model for listing and detail views: the
// product enriched with its seller and, when set, its category. Computed at
// query time, never stored.
type ProductWithSeller struct {
	Product
	Seller   *User     `json:"seller"`
	Category *Category `json:"category,omitempty"`
}
