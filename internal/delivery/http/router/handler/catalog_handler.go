package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"prelovin/internal/delivery/http/response"
	domainerrors "prelovin/internal/domain/errors"
	"prelovin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CatalogHandler holds dependencies for public browse handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCategories returns all categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// ListProducts returns the active listings matching the query filters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	input, err := parseListProductsQuery(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct returns one enriched product and counts the view.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

func parseListProductsQuery(c echo.Context) (*usecase.ListProductsInput, error) {
	input := &usecase.ListProductsInput{
		Search:       c.QueryParam("search"),
		CategorySlug: c.QueryParam("category"),
		SellerID:     c.QueryParam("sellerId"),
		Sort:         c.QueryParam("sort"),
	}

	// The condition filter arrives either repeated or comma-separated.
	for _, raw := range c.QueryParams()["condition"] {
		for _, slug := range strings.Split(raw, ",") {
			if slug = strings.TrimSpace(slug); slug != "" {
				input.Conditions = append(input.Conditions, slug)
			}
		}
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid minPrice")
		}
		input.MinPrice = &price
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid maxPrice")
		}
		input.MaxPrice = &price
	}

	return input, nil
}

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}
