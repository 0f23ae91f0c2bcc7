package usecase

import (
	"context"

	"prelovin/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ListingUsecase defines the interface for the seller-side product
// operations. Every mutation verifies ownership; touching somebody else's
// listing is forbidden, which is deliberately distinct from not-found.
type ListingUsecase interface {
	// ListOwn returns all of the seller's products, inactive included,
	// newest-first. Dashboard view.
	ListOwn(ctx context.Context, sellerID string) ([]entity.Product, error)

	// Create publishes a new listing for the seller.
	Create(ctx context.Context, sellerID string, input *CreateProductInput) (*entity.Product, error)

	// Update merges the supplied fields into the seller's listing.
	Update(ctx context.Context, sellerID string, productID int64, input *UpdateProductInput) (*entity.Product, error)

	// Delete removes the listing permanently. Order history referencing it
	// survives with a dangling product reference.
	Delete(ctx context.Context, sellerID string, productID int64) error
}

// --- Input DTOs ---

// CreateProductInput defines the data required to publish a listing.
type CreateProductInput struct {
	CategoryID    *int64           `json:"categoryId"`
	Name          string           `json:"name" validate:"required,min=3,max=200"`
	Description   string           `json:"description" validate:"required"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Condition     entity.Condition `json:"condition" validate:"required"`
	Images        []string         `json:"images"`
	Stock         int              `json:"stock" validate:"min=0"`
	Location      string           `json:"location"`
}

// UpdateProductInput defines the partial fields of a listing update. Nil
// fields are left untouched.
type UpdateProductInput struct {
	CategoryID    *int64            `json:"categoryId"`
	Name          *string           `json:"name" validate:"omitempty,min=3,max=200"`
	Description   *string           `json:"description"`
	Price         *decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal  `json:"originalPrice"`
	Condition     *entity.Condition `json:"condition"`
	Images        *[]string         `json:"images"`
	Stock         *int              `json:"stock" validate:"omitempty,min=0"`
	Location      *string           `json:"location"`
	IsActive      *bool             `json:"isActive"`
}
