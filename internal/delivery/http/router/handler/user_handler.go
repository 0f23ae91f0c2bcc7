package handler

import (
	"log/slog"
	"net/http"

	"prelovin/internal/delivery/http/middleware"
	"prelovin/internal/delivery/http/response"
	"prelovin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCurrentUser returns the authenticated caller's own record, refreshed
// from the identity token claims.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	identity := middleware.CurrentIdentity(c)

	user, err := h.uc.SyncCurrentUser(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// GetPublicProfile returns a user's public seller-page view.
func (h *UserHandler) GetPublicProfile(c echo.Context) error {
	user, err := h.uc.GetPublicProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}
