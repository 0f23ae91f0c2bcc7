package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"prelovin/internal/domain/entity"
	domainerrors "prelovin/internal/domain/errors"
	"prelovin/internal/domain/repository"
	"prelovin/internal/infra/cache"
	"prelovin/internal/usecase"

	"github.com/pkg/errors"
)

// Cache operation names. Invalidation after a mutation targets these.
const (
	cacheOpCategories     = "categories"
	cacheOpActiveProducts = "products:active"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	queryCache   *cache.QueryCache
	logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	queryCache *cache.QueryCache,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		queryCache:   queryCache,
		logger:       logger,
	}
}

// ListCategories returns all categories, served from the query cache when
// possible.
func (srv *catalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	key := cache.Key(cacheOpCategories)

	var cached []entity.Category
	if err := srv.queryCache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	srv.queryCache.Set(ctx, key, categories)

	return categories, nil
}

// ListProducts returns active listings matching the filters. The category
// and seller filters run in the database; search, condition, and price
// filters plus sorting are applied in memory over the (cacheable) active
// set.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]entity.ProductWithSeller, error) {
	if input == nil {
		input = &usecase.ListProductsInput{}
	}

	filters := repository.ProductFilters{SellerID: input.SellerID}
	if input.CategorySlug != "" {
		category, err := srv.categoryRepo.FindBySlug(ctx, input.CategorySlug)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				// Unknown slug matches nothing.
				return []entity.ProductWithSeller{}, nil
			}

			return nil, errors.Wrap(err, "failed to resolve category slug")
		}
		filters.CategoryID = category.ID
	}

	products, err := srv.loadActiveProducts(ctx, filters)
	if err != nil {
		return nil, err
	}

	filtered := filterProducts(products, input)
	sortProducts(filtered, input.Sort)

	return filtered, nil
}

// GetProduct returns a single enriched product and records one view on it.
// The view increment failing never fails the read.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.ProductWithSeller, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := srv.productRepo.IncrementViews(ctx, id); err != nil {
		srv.logger.WarnContext(ctx, "failed to increment product views",
			slog.Int64("productID", id), slog.Any("error", err))
	} else {
		product.Views++
	}

	return product, nil
}

func (srv *catalogService) loadActiveProducts(ctx context.Context, filters repository.ProductFilters) ([]entity.ProductWithSeller, error) {
	key := cache.Key(cacheOpActiveProducts, filters.CategoryID, filters.SellerID)

	var cached []entity.ProductWithSeller
	if err := srv.queryCache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	products, err := srv.productRepo.FindActive(ctx, filters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	srv.queryCache.Set(ctx, key, products)

	return products, nil
}

func filterProducts(products []entity.ProductWithSeller, input *usecase.ListProductsInput) []entity.ProductWithSeller {
	conditionSet := make(map[string]struct{}, len(input.Conditions))
	for _, slug := range input.Conditions {
		conditionSet[slug] = struct{}{}
	}
	search := strings.ToLower(strings.TrimSpace(input.Search))

	filtered := make([]entity.ProductWithSeller, 0, len(products))
	for _, product := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(product.Name), search) &&
			!strings.Contains(strings.ToLower(product.Description), search) {
			continue
		}
		if len(conditionSet) > 0 {
			if _, ok := conditionSet[product.Condition.Slug()]; !ok {
				continue
			}
		}
		if input.MinPrice != nil && product.Price.LessThan(*input.MinPrice) {
			continue
		}
		if input.MaxPrice != nil && product.Price.GreaterThan(*input.MaxPrice) {
			continue
		}

		filtered = append(filtered, product)
	}

	return filtered
}

func sortProducts(products []entity.ProductWithSeller, mode string) {
	switch mode {
	case usecase.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case usecase.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case usecase.SortMostViewed:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Views > products[j].Views
		})
	default:
		// Newest first. A zero CreatedAt sorts last.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
