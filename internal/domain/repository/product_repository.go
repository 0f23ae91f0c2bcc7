package repository

import (
	"context"
	"errors"

	"prelovin/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Product lookup errors.
var (
	// ErrProductNotFound is returned when no product row exists for the id.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned by DecrementStock when the
	// conditional decrement would drive stock below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductFilters narrows FindActive to a category and/or seller.
// Zero values mean "no constraint".
type ProductFilters struct {
	CategoryID int64
	SellerID   string
}

// ProductUpdate carries the partial fields of a product update. Nil fields
// are left untouched; supplied fields overwrite.
type ProductUpdate struct {
	CategoryID    *int64
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	OriginalPrice *decimal.Decimal
	Condition     *entity.Condition
	Images        *[]string
	Stock         *int
	Location      *string
	IsActive      *bool
}

// ProductRepository defines persistence operations for listings.
type ProductRepository interface {
	// FindActive returns all products with is_active = true matching the
	// optional filters, each enriched with seller and category, ordered
	// newest-first. Inactive products never appear here.
	FindActive(ctx context.Context, filters ProductFilters) ([]entity.ProductWithSeller, error)

	// FindByID retrieves a single product enriched with seller and category
	// regardless of is_active, so detail views keep working for deactivated
	// listings.
	FindByID(ctx context.Context, id int64) (*entity.ProductWithSeller, error)

	// FindBySeller returns the raw (non-enriched) products owned by the
	// seller, newest-first, including inactive ones. Dashboard view.
	FindBySeller(ctx context.Context, sellerID string) ([]entity.Product, error)

	// Create inserts the product with views, soldCount zeroed and isActive
	// defaulted true, filling in the generated id and timestamps.
	Create(ctx context.Context, product *entity.Product) error

	// Update merges the supplied fields into the row and refreshes
	// UpdatedAt, returning the updated row.
	Update(ctx context.Context, id int64, update ProductUpdate) (*entity.Product, error)

	// Delete hard-deletes the row. Historical order items keep their
	// (now dangling) product references.
	Delete(ctx context.Context, id int64) error

	// IncrementViews performs an atomic views = views + 1 on the row.
	// Concurrent increments must not lose updates.
	IncrementViews(ctx context.Context, id int64) error

	// DecrementStock atomically moves quantity units from stock to
	// soldCount, guarded by stock >= quantity. Returns
	// ErrInsufficientStock when the guard fails so the caller can abort
	// the surrounding transaction.
	DecrementStock(ctx context.Context, id int64, quantity int) error
}
