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
	"github.com/shopspring/decimal"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager  repository.TransactionManager
	cartRepo   repository.CartRepository
	orderRepo  repository.OrderRepository
	queryCache *cache.QueryCache
	logger     *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	queryCache *cache.QueryCache,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager:  txManager,
		cartRepo:   cartRepo,
		orderRepo:  orderRepo,
		queryCache: queryCache,
		logger:     logger,
	}
}

// PlaceOrder converts the buyer's entire cart into an order.
//
// The total and the line snapshots are computed from current product prices,
// then the order header, its lines, and the per-line stock decrements run in
// one transaction. A line whose conditional decrement affects zero rows
// means the stock guard failed, and the whole order rolls back. The cart is
// cleared only after the commit; a clear failure leaves the order standing.
func (srv *orderService) PlaceOrder(ctx context.Context, buyerID string, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	cartItems, err := srv.cartRepo.FindByUser(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if len(cartItems) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	totalAmount := decimal.Zero
	items := make([]entity.OrderItem, 0, len(cartItems))
	for _, line := range cartItems {
		lineTotal := line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		totalAmount = totalAmount.Add(lineTotal)

		items = append(items, entity.OrderItem{
			ProductID: line.ProductID,
			SellerID:  line.Product.SellerID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
			Status:    entity.OrderStatusPending,
		})
	}

	order := &entity.Order{
		BuyerID:         buyerID,
		Status:          entity.OrderStatusPending,
		TotalAmount:     totalAmount,
		ShippingAddress: input.ShippingAddress,
		ShippingCity:    input.ShippingCity,
		ShippingPhone:   input.ShippingPhone,
		Notes:           input.Notes,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		productRepo := repoFactory.NewProductRepository()

		if err := orderRepo.Create(ctx, order, items); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, item := range items {
			if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WrapMessage("stock ran out during checkout")
				}
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WrapMessage("product removed during checkout")
				}

				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to place order")
	}

	if err := srv.cartRepo.Clear(ctx, buyerID); err != nil {
		// The order is committed; losing the cart clear is recoverable.
		srv.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.Int64("orderID", order.ID), slog.String("buyerID", buyerID),
			slog.Any("error", err))
	}

	srv.logger.InfoContext(ctx, "order placed",
		slog.Int64("orderID", order.ID), slog.String("buyerID", buyerID),
		slog.String("totalAmount", totalAmount.String()))
	srv.queryCache.Invalidate(ctx, cacheOpActiveProducts)

	return order, nil
}

// ListOrders returns the buyer's orders newest-first.
func (srv *orderService) ListOrders(ctx context.Context, buyerID string) ([]entity.OrderWithItems, error) {
	orders, err := srv.orderRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one order with its lines.
func (srv *orderService) GetOrder(ctx context.Context, id int64) (*entity.OrderWithItems, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// UpdateStatus moves the order along the status state machine. The caller
// must be the buyer or a seller of one of the order's lines.
func (srv *orderService) UpdateStatus(ctx context.Context, userID string, id int64, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	current, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !orderParty(current, userID) {
		return nil, domainerrors.ErrNotOrderParty
	}

	if !current.Status.CanTransition(status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			string(current.Status) + " -> " + string(status))
	}

	order, err := srv.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.logger.InfoContext(ctx, "order status updated",
		slog.Int64("orderID", id), slog.String("status", string(status)))

	return order, nil
}

// orderParty reports whether userID is the buyer or one of the line sellers.
func orderParty(order *entity.OrderWithItems, userID string) bool {
	if order.BuyerID == userID {
		return true
	}
	for _, item := range order.Items {
		if item.SellerID == userID {
			return true
		}
	}

	return false
}
