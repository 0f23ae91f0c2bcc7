package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListProductsContext(t *testing.T, target string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestParseListProductsQuery_AllFilters(t *testing.T) {
	c := newListProductsContext(t,
		"/api/products?search=jaket&category=fashion&sellerId=seller-1&condition=bagus,layak-pakai&minPrice=50000&maxPrice=900000&sort=price-low")

	input, err := parseListProductsQuery(c)
	require.NoError(t, err)

	assert.Equal(t, "jaket", input.Search)
	assert.Equal(t, "fashion", input.CategorySlug)
	assert.Equal(t, "seller-1", input.SellerID)
	assert.Equal(t, []string{"bagus", "layak-pakai"}, input.Conditions)
	assert.True(t, input.MinPrice.Equal(decimal.RequireFromString("50000")))
	assert.True(t, input.MaxPrice.Equal(decimal.RequireFromString("900000")))
	assert.Equal(t, "price-low", input.Sort)
}

func TestParseListProductsQuery_SellerIDProducesConstraint(t *testing.T) {
	filtered, err := parseListProductsQuery(newListProductsContext(t, "/api/products?sellerId=seller-1"))
	require.NoError(t, err)

	unfiltered, err := parseListProductsQuery(newListProductsContext(t, "/api/products"))
	require.NoError(t, err)

	assert.Equal(t, "seller-1", filtered.SellerID)
	assert.NotEqual(t, unfiltered, filtered)
}

func TestParseListProductsQuery_InvalidPriceRejected(t *testing.T) {
	_, err := parseListProductsQuery(newListProductsContext(t, "/api/products?minPrice=abc"))
	require.Error(t, err)
}
