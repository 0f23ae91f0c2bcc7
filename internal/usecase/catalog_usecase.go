package usecase

import (
	"context"

	"prelovin/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Product list sort modes. SortNewest is the default.
const (
	SortNewest     = "newest"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortMostViewed = "most-viewed"
)

// CatalogUsecase defines the interface for the public browse operations.
type CatalogUsecase interface {
	// ListCategories returns all categories in insertion order.
	ListCategories(ctx context.Context) ([]entity.Category, error)

	// ListProducts returns the active listings matching the filters,
	// enriched with seller and category, in the requested sort order.
	ListProducts(ctx context.Context, input *ListProductsInput) ([]entity.ProductWithSeller, error)

	// GetProduct returns a single enriched product regardless of its
	// active flag and records one view on it.
	GetProduct(ctx context.Context, id int64) (*entity.ProductWithSeller, error)
}

// --- Input DTOs ---

// ListProductsInput carries the optional catalog filters. Zero values mean
// "no constraint".
type ListProductsInput struct {
	// Search is matched case-insensitively as a substring of the product
	// name or description.
	Search string `json:"search"`

	// CategorySlug narrows to one category. An unknown slug yields an
	// empty result, not an error.
	CategorySlug string `json:"category"`

	// SellerID narrows to one seller's listings. Drives the public
	// seller-profile page.
	SellerID string `json:"sellerId"`

	// Conditions holds condition slugs (e.g. "seperti-baru"); a product
	// matches when its condition slug is in the set.
	Conditions []string `json:"conditions"`

	// MinPrice and MaxPrice are inclusive bounds.
	MinPrice *decimal.Decimal `json:"minPrice"`
	MaxPrice *decimal.Decimal `json:"maxPrice"`

	// Sort is one of the Sort* constants; unknown values fall back to
	// SortNewest.
	Sort string `json:"sort"`
}
