// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"prelovin/internal/delivery/http/middleware"
	"prelovin/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	ListingHandler *handler.ListingHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	catalogHandler *handler.CatalogHandler
	listingHandler *handler.ListingHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		catalogHandler: params.CatalogHandler,
		listingHandler: params.ListingHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public browse routes
	api.GET("/categories", r.catalogHandler.ListCategories)
	api.GET("/products", r.catalogHandler.ListProducts)
	api.GET("/products/:id", r.catalogHandler.GetProduct)
	api.GET("/users/:id", r.userHandler.GetPublicProfile)

	// Everything below requires a valid identity token
	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/auth/user", r.userHandler.GetCurrentUser)

		// Seller dashboard
		authed.GET("/my-products", r.listingHandler.ListOwn)
		authed.POST("/products", r.listingHandler.Create)
		authed.PATCH("/products/:id", r.listingHandler.Update)
		authed.DELETE("/products/:id", r.listingHandler.Delete)

		// Cart
		authed.GET("/cart", r.cartHandler.GetCart)
		authed.POST("/cart", r.cartHandler.AddToCart)
		authed.PATCH("/cart/:id", r.cartHandler.UpdateQuantity)
		authed.DELETE("/cart/:id", r.cartHandler.RemoveItem)

		// Orders
		authed.POST("/orders", r.orderHandler.PlaceOrder)
		authed.GET("/orders", r.orderHandler.ListOrders)
		authed.GET("/orders/:id", r.orderHandler.GetOrder)
		authed.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus)
	}
}
