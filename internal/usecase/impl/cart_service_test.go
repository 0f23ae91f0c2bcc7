package impl

import (
	"context"
	"testing"

	"prelovin/internal/domain/entity"
	domainerrors "prelovin/internal/domain/errors"
	"prelovin/internal/domain/repository"
	mockRepo "prelovin/internal/mocks/repository"
	"prelovin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartRepository, *mockRepo.MockProductRepository) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(cartRepo, productRepo, newTestLogger())

	return service, cartRepo, productRepo
}

func TestCartService_AddToCart_Success(t *testing.T) {
	service, cartRepo, productRepo := newTestCartService(t)
	ctx := context.Background()

	fixture := productFixture{id: 5, sellerID: "seller-1", name: "Kamera", price: "9500000", stock: 3}.build()
	productRepo.On("FindByID", ctx, int64(5)).Return(&fixture, nil)
	cartRepo.On("Add", ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(&entity.CartItem{ID: 1, UserID: "buyer-1", ProductID: 5, Quantity: 2}, nil)

	item, err := service.AddToCart(ctx, "buyer-1", &usecase.AddToCartInput{ProductID: 5, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), item.ProductID)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartService_AddToCart_OmittedQuantityDefaultsToOne(t *testing.T) {
	service, cartRepo, productRepo := newTestCartService(t)
	ctx := context.Background()

	fixture := productFixture{id: 5, sellerID: "seller-1", name: "Kamera", price: "9500000", stock: 3}.build()
	productRepo.On("FindByID", ctx, int64(5)).Return(&fixture, nil)
	cartRepo.On("Add", ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
		return item.Quantity == 1
	})).Return(&entity.CartItem{ID: 1, UserID: "buyer-1", ProductID: 5, Quantity: 1}, nil)

	item, err := service.AddToCart(ctx, "buyer-1", &usecase.AddToCartInput{ProductID: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartService_AddToCart_ProductNotFound(t *testing.T) {
	service, _, productRepo := newTestCartService(t)
	ctx := context.Background()

	productRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

	_, err := service.AddToCart(ctx, "buyer-1", &usecase.AddToCartInput{ProductID: 99, Quantity: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddToCart_InsufficientStock(t *testing.T) {
	service, _, productRepo := newTestCartService(t)
	ctx := context.Background()

	fixture := productFixture{id: 5, sellerID: "seller-1", name: "Kamera", price: "9500000", stock: 1}.build()
	productRepo.On("FindByID", ctx, int64(5)).Return(&fixture, nil)

	_, err := service.AddToCart(ctx, "buyer-1", &usecase.AddToCartInput{ProductID: 5, Quantity: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestCartService_AddToCart_OwnProductRejected(t *testing.T) {
	service, _, productRepo := newTestCartService(t)
	ctx := context.Background()

	fixture := productFixture{id: 5, sellerID: "seller-1", name: "Kamera", price: "9500000", stock: 3}.build()
	productRepo.On("FindByID", ctx, int64(5)).Return(&fixture, nil)

	_, err := service.AddToCart(ctx, "seller-1", &usecase.AddToCartInput{ProductID: 5, Quantity: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnProduct)
}

func TestCartService_UpdateQuantity_ForbiddenForOtherUsersLine(t *testing.T) {
	service, cartRepo, _ := newTestCartService(t)
	ctx := context.Background()

	cartRepo.On("FindByID", ctx, int64(8)).
		Return(&entity.CartItem{ID: 8, UserID: "someone-else", ProductID: 5, Quantity: 1}, nil)

	_, err := service.UpdateQuantity(ctx, "buyer-1", 8, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotCartOwner)
}

func TestCartService_UpdateQuantity_RejectsZero(t *testing.T) {
	service, _, _ := newTestCartService(t)

	_, err := service.UpdateQuantity(context.Background(), "buyer-1", 8, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_UpdateQuantity_Success(t *testing.T) {
	service, cartRepo, _ := newTestCartService(t)
	ctx := context.Background()

	cartRepo.On("FindByID", ctx, int64(8)).
		Return(&entity.CartItem{ID: 8, UserID: "buyer-1", ProductID: 5, Quantity: 1}, nil)
	cartRepo.On("UpdateQuantity", ctx, int64(8), 3).
		Return(&entity.CartItem{ID: 8, UserID: "buyer-1", ProductID: 5, Quantity: 3}, nil)

	item, err := service.UpdateQuantity(ctx, "buyer-1", 8, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
}

func TestCartService_RemoveItem_IdempotentWhenAlreadyGone(t *testing.T) {
	service, cartRepo, _ := newTestCartService(t)
	ctx := context.Background()

	cartRepo.On("FindByID", ctx, int64(8)).Return(nil, repository.ErrCartItemNotFound)

	err := service.RemoveItem(ctx, "buyer-1", 8)
	require.NoError(t, err)
}

func TestCartService_RemoveItem_ForbiddenForOtherUsersLine(t *testing.T) {
	service, cartRepo, _ := newTestCartService(t)
	ctx := context.Background()

	cartRepo.On("FindByID", ctx, int64(8)).
		Return(&entity.CartItem{ID: 8, UserID: "someone-else", ProductID: 5, Quantity: 1}, nil)

	err := service.RemoveItem(ctx, "buyer-1", 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotCartOwner)
}

func TestCartService_GetCart_PropagatesRepoFailure(t *testing.T) {
	service, cartRepo, _ := newTestCartService(t)
	ctx := context.Background()

	cartRepo.On("FindByUser", ctx, "buyer-1").Return(nil, errors.New("connection refused"))

	_, err := service.GetCart(ctx, "buyer-1")
	require.Error(t, err)
}
