package impl

import (
	"context"
	"log/slog"

	"prelovin/internal/domain/entity"
	domainerrors "prelovin/internal/domain/errors"
	"prelovin/internal/domain/repository"
	"prelovin/internal/infra/cache"
	"prelovin/internal/usecase"

	"github.com/pkg/errors"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	productRepo repository.ProductRepository
	queryCache  *cache.QueryCache
	logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(
	productRepo repository.ProductRepository,
	queryCache *cache.QueryCache,
	logger *slog.Logger,
) usecase.ListingUsecase {
	return &listingService{
		productRepo: productRepo,
		queryCache:  queryCache,
		logger:      logger,
	}
}

// ListOwn returns the seller's products, inactive included, newest-first.
func (srv *listingService) ListOwn(ctx context.Context, sellerID string) ([]entity.Product, error) {
	products, err := srv.productRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// Create publishes a new listing.
func (srv *listingService) Create(ctx context.Context, sellerID string, input *usecase.CreateProductInput) (*entity.Product, error) {
	if !input.Condition.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product condition")
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	product := &entity.Product{
		SellerID:      sellerID,
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Condition:     input.Condition,
		Images:        input.Images,
		Stock:         input.Stock,
		Location:      input.Location,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.InfoContext(ctx, "product created",
		slog.Int64("productID", product.ID), slog.String("sellerID", sellerID))
	srv.queryCache.Invalidate(ctx, cacheOpActiveProducts)

	return product, nil
}

// Update merges the supplied fields into the seller's listing. A caller who
// does not own the listing gets forbidden, not not-found.
func (srv *listingService) Update(ctx context.Context, sellerID string, productID int64, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := srv.requireOwnership(ctx, sellerID, productID); err != nil {
		return nil, err
	}

	if input.Condition != nil && !input.Condition.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product condition")
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	product, err := srv.productRepo.Update(ctx, productID, repository.ProductUpdate{
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Condition:     input.Condition,
		Images:        input.Images,
		Stock:         input.Stock,
		Location:      input.Location,
		IsActive:      input.IsActive,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.queryCache.Invalidate(ctx, cacheOpActiveProducts)

	return product, nil
}

// Delete removes the listing permanently.
func (srv *listingService) Delete(ctx context.Context, sellerID string, productID int64) error {
	if err := srv.requireOwnership(ctx, sellerID, productID); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.InfoContext(ctx, "product deleted",
		slog.Int64("productID", productID), slog.String("sellerID", sellerID))
	srv.queryCache.Invalidate(ctx, cacheOpActiveProducts)

	return nil
}

func (srv *listingService) requireOwnership(ctx context.Context, sellerID string, productID int64) error {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}
	if product.SellerID != sellerID {
		return domainerrors.ErrNotProductOwner
	}

	return nil
}
