package handler

import (
	"log/slog"
	"net/http"

	"prelovin/internal/delivery/http/middleware"
	"prelovin/internal/delivery/http/response"
	domainerrors "prelovin/internal/domain/errors"
	"prelovin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for shopping cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCart returns the caller's enriched cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	items, err := h.uc.GetCart(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// AddToCart puts a product into the caller's cart.
func (h *CartHandler) AddToCart(c echo.Context) error {
	var input *usecase.AddToCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.AddToCart(c.Request().Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Added to cart")
}

// UpdateQuantity overwrites a cart line's quantity.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if input.Quantity < 1 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1"))
	}

	item, err := h.uc.UpdateQuantity(c.Request().Context(), middleware.CurrentUserID(c), id, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Cart updated")
}

// RemoveItem deletes a cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveItem(c.Request().Context(), middleware.CurrentUserID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Removed from cart")
}
