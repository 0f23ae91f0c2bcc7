package impl

import (
	"context"
	"testing"

	"prelovin/internal/domain/entity"
	domainerrors "prelovin/internal/domain/errors"
	"prelovin/internal/domain/repository"
	"prelovin/internal/infra/cache"
	mockRepo "prelovin/internal/mocks/repository"
	"prelovin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	service     usecase.OrderUsecase
	cartRepo    *mockRepo.MockCartRepository
	orderRepo   *mockRepo.MockOrderRepository
	txOrderRepo *mockRepo.MockOrderRepository
	txProdRepo  *mockRepo.MockProductRepository
}

func newTestOrderService(t *testing.T) *orderServiceFixture {
	cartRepo := mockRepo.NewMockCartRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txProdRepo := mockRepo.NewMockProductRepository(t)

	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			ProductRepo: txProdRepo,
			OrderRepo:   txOrderRepo,
		},
	}

	return &orderServiceFixture{
		service:     NewOrderService(txManager, cartRepo, orderRepo, cache.Disabled(), newTestLogger()),
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		txOrderRepo: txOrderRepo,
		txProdRepo:  txProdRepo,
	}
}

func checkoutCart() []entity.CartItemWithProduct {
	camera := productFixture{id: 5, sellerID: "seller-1", name: "Kamera", price: "9500000", stock: 2}.build()
	book := productFixture{id: 6, sellerID: "seller-2", name: "Buku", price: "750000", stock: 5}.build()

	return []entity.CartItemWithProduct{
		{CartItem: entity.CartItem{ID: 1, UserID: "buyer-1", ProductID: 5, Quantity: 1}, Product: camera},
		{CartItem: entity.CartItem{ID: 2, UserID: "buyer-1", ProductID: 6, Quantity: 2}, Product: book},
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	f := newTestOrderService(t)
	ctx := context.Background()

	f.cartRepo.On("FindByUser", ctx, "buyer-1").Return(checkoutCart(), nil)

	f.txOrderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order"), mock.AnythingOfType("[]entity.OrderItem")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*entity.Order)
			order.ID = 77

			items := args.Get(2).([]entity.OrderItem)
			require.Len(t, items, 2)
			assert.Equal(t, "seller-1", items[0].SellerID)
			assert.Equal(t, "9500000", items[0].Price.String())
			assert.Equal(t, entity.OrderStatusPending, items[0].Status)
		}).
		Return(nil)
	f.txProdRepo.On("DecrementStock", ctx, int64(5), 1).Return(nil)
	f.txProdRepo.On("DecrementStock", ctx, int64(6), 2).Return(nil)
	f.cartRepo.On("Clear", ctx, "buyer-1").Return(nil)

	order, err := f.service.PlaceOrder(ctx, "buyer-1", &usecase.PlaceOrderInput{
		ShippingAddress: "Jl. Sudirman 1",
		ShippingCity:    "Jakarta",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	// 9500000*1 + 750000*2
	assert.Equal(t, "11000000", order.TotalAmount.String())
}

func TestOrderService_PlaceOrder_EmptyCartRejected(t *testing.T) {
	f := newTestOrderService(t)
	ctx := context.Background()

	f.cartRepo.On("FindByUser", ctx, "buyer-1").Return([]entity.CartItemWithProduct{}, nil)

	_, err := f.service.PlaceOrder(ctx, "buyer-1", &usecase.PlaceOrderInput{ShippingAddress: "Jl. Sudirman 1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_PlaceOrder_StockGuardFailureAbortsWholeOrder(t *testing.T) {
	f := newTestOrderService(t)
	ctx := context.Background()

	f.cartRepo.On("FindByUser", ctx, "buyer-1").Return(checkoutCart(), nil)
	f.txOrderRepo.On("Create", ctx, mock.Anything, mock.Anything).Return(nil)
	f.txProdRepo.On("DecrementStock", ctx, int64(5), 1).Return(nil)
	f.txProdRepo.On("DecrementStock", ctx, int64(6), 2).Return(repository.ErrInsufficientStock)

	_, err := f.service.PlaceOrder(ctx, "buyer-1", &usecase.PlaceOrderInput{ShippingAddress: "Jl. Sudirman 1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	// Clear was never expected on cartRepo; AssertExpectations on cleanup
	// verifies the cart survived the failed checkout.
}

func TestOrderService_PlaceOrder_CartClearFailureDoesNotFailOrder(t *testing.T) {
	f := newTestOrderService(t)
	ctx := context.Background()

	f.cartRepo.On("FindByUser", ctx, "buyer-1").Return(checkoutCart()[:1], nil)
	f.txOrderRepo.On("Create", ctx, mock.Anything, mock.Anything).Return(nil)
	f.txProdRepo.On("DecrementStock", ctx, int64(5), 1).Return(nil)
	f.cartRepo.On("Clear", ctx, "buyer-1").Return(assert.AnError)

	order, err := f.service.PlaceOrder(ctx, "buyer-1", &usecase.PlaceOrderInput{ShippingAddress: "Jl. Sudirman 1"})
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_UpdateStatus_AllowedTransition(t *testing.T) {
	f := newTestOrderService(t)
	ctx := context.Background()

	f.orderRepo.On("FindByID", ctx, int64(77)).Return(&entity.OrderWithItems{
		Order: entity.Order{ID: 77, BuyerID: "buyer-1", Status: entity.OrderStatusPending},
	}, nil)
	f.orderRepo.On("UpdateStatus", ctx, int64(77), entity.OrderStatusPaid).
		Return(&entity.Order{ID: 77, Status: entity.OrderStatusPaid}, nil)

	order, err := f.service.UpdateStatus(ctx, "buyer-1", 77, entity.OrderStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
}

func TestOrderService_UpdateStatus_LineSellerAllowed(t *testing.T) {
	f := newTestOrderService(t)
	ctx := context.Background()

	f.orderRepo.On("FindByID", ctx, int64(77)).Return(&entity.OrderWithItems{
		Order: entity.Order{ID: 77, BuyerID: "buyer-1", Status: entity.OrderStatusPaid},
		Items: []entity.OrderItemWithProduct{
			{OrderItem: entity.OrderItem{ID: 1, SellerID: "seller-1"}},
		},
	}, nil)
	f.orderRepo.On("UpdateStatus", ctx, int64(77), entity.OrderStatusShipped).
		Return(&entity.Order{ID: 77, Status: entity.OrderStatusShipped}, nil)

	order, err := f.service.UpdateStatus(ctx, "seller-1", 77, entity.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
}

func TestOrderService_UpdateStatus_StrangerForbidden(t *testing.T) {
	f := newTestOrderService(t)
	ctx := context.Background()

	f.orderRepo.On("FindByID", ctx, int64(77)).Return(&entity.OrderWithItems{
		Order: entity.Order{ID: 77, BuyerID: "buyer-1", Status: entity.OrderStatusPending},
		Items: []entity.OrderItemWithProduct{
			{OrderItem: entity.OrderItem{ID: 1, SellerID: "seller-1"}},
		},
	}, nil)

	_, err := f.service.UpdateStatus(ctx, "someone-else", 77, entity.OrderStatusPaid)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotOrderParty)
}

func TestOrderService_UpdateStatus_RejectedTransition(t *testing.T) {
	f := newTestOrderService(t)
	ctx := context.Background()

	f.orderRepo.On("FindByID", ctx, int64(77)).Return(&entity.OrderWithItems{
		Order: entity.Order{ID: 77, BuyerID: "buyer-1", Status: entity.OrderStatusCompleted},
	}, nil)

	_, err := f.service.UpdateStatus(ctx, "buyer-1", 77, entity.OrderStatusCancelled)
	require.Error(t, err)
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	f := newTestOrderService(t)

	_, err := f.service.UpdateStatus(context.Background(), "buyer-1", 77, entity.OrderStatus("refunded"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_ListOrders(t *testing.T) {
	f := newTestOrderService(t)
	ctx := context.Background()

	f.orderRepo.On("FindByBuyer", ctx, "buyer-1").Return([]entity.OrderWithItems{
		{Order: entity.Order{ID: 2, BuyerID: "buyer-1"}},
		{Order: entity.Order{ID: 1, BuyerID: "buyer-1"}},
	}, nil)

	orders, err := f.service.ListOrders(ctx, "buyer-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	f := newTestOrderService(t)
	ctx := context.Background()

	f.orderRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrOrderNotFound)

	_, err := f.service.GetOrder(ctx, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
