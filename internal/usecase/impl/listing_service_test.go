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

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestListingService(t *testing.T) (usecase.ListingUsecase, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewListingService(productRepo, cache.Disabled(), newTestLogger())

	return service, productRepo
}

func TestListingService_Create_Success(t *testing.T) {
	service, productRepo := newTestListingService(t)
	ctx := context.Background()

	productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*entity.Product)
			product.ID = 10
			assert.Equal(t, "seller-1", product.SellerID)
		}).
		Return(nil)

	product, err := service.Create(ctx, "seller-1", &usecase.CreateProductInput{
		Name:        "Sepeda Lipat",
		Description: "7 speed, frame alloy",
		Price:       decimal.RequireFromString("2200000"),
		Condition:   entity.ConditionBagus,
		Stock:       1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), product.ID)
}

func TestListingService_Create_UnknownConditionRejected(t *testing.T) {
	service, _ := newTestListingService(t)

	_, err := service.Create(context.Background(), "seller-1", &usecase.CreateProductInput{
		Name:        "Sepeda Lipat",
		Description: "7 speed",
		Price:       decimal.RequireFromString("2200000"),
		Condition:   entity.Condition("Rusak"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestListingService_Create_NegativePriceRejected(t *testing.T) {
	service, _ := newTestListingService(t)

	_, err := service.Create(context.Background(), "seller-1", &usecase.CreateProductInput{
		Name:        "Sepeda Lipat",
		Description: "7 speed",
		Price:       decimal.RequireFromString("-1"),
		Condition:   entity.ConditionBagus,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestListingService_Update_ForbiddenForNonOwner(t *testing.T) {
	service, productRepo := newTestListingService(t)
	ctx := context.Background()

	fixture := productFixture{id: 10, sellerID: "seller-1", name: "Sepeda", price: "2200000", stock: 1}.build()
	productRepo.On("FindByID", ctx, int64(10)).Return(&fixture, nil)

	name := "Sepeda Lipat Pacific"
	_, err := service.Update(ctx, "intruder", 10, &usecase.UpdateProductInput{Name: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotProductOwner)
}

func TestListingService_Update_NotFound(t *testing.T) {
	service, productRepo := newTestListingService(t)
	ctx := context.Background()

	productRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

	name := "x"
	_, err := service.Update(ctx, "seller-1", 99, &usecase.UpdateProductInput{Name: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestListingService_Update_Success(t *testing.T) {
	service, productRepo := newTestListingService(t)
	ctx := context.Background()

	fixture := productFixture{id: 10, sellerID: "seller-1", name: "Sepeda", price: "2200000", stock: 1}.build()
	productRepo.On("FindByID", ctx, int64(10)).Return(&fixture, nil)

	stock := 0
	inactive := false
	productRepo.On("Update", ctx, int64(10), mock.AnythingOfType("repository.ProductUpdate")).
		Return(&entity.Product{ID: 10, SellerID: "seller-1", Stock: 0, IsActive: false}, nil)

	product, err := service.Update(ctx, "seller-1", 10, &usecase.UpdateProductInput{
		Stock:    &stock,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, product.IsActive)
}

func TestListingService_Delete_ForbiddenForNonOwner(t *testing.T) {
	service, productRepo := newTestListingService(t)
	ctx := context.Background()

	fixture := productFixture{id: 10, sellerID: "seller-1", name: "Sepeda", price: "2200000", stock: 1}.build()
	productRepo.On("FindByID", ctx, int64(10)).Return(&fixture, nil)

	err := service.Delete(ctx, "intruder", 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotProductOwner)
}

func TestListingService_Delete_Success(t *testing.T) {
	service, productRepo := newTestListingService(t)
	ctx := context.Background()

	fixture := productFixture{id: 10, sellerID: "seller-1", name: "Sepeda", price: "2200000", stock: 1}.build()
	productRepo.On("FindByID", ctx, int64(10)).Return(&fixture, nil)
	productRepo.On("Delete", ctx, int64(10)).Return(nil)

	err := service.Delete(ctx, "seller-1", 10)
	require.NoError(t, err)
}

func TestListingService_ListOwn(t *testing.T) {
	service, productRepo := newTestListingService(t)
	ctx := context.Background()

	productRepo.On("FindBySeller", ctx, "seller-1").Return([]entity.Product{
		{ID: 2, SellerID: "seller-1", IsActive: false},
		{ID: 1, SellerID: "seller-1", IsActive: true},
	}, nil)

	products, err := service.ListOwn(ctx, "seller-1")
	require.NoError(t, err)
	require.Len(t, products, 2)
	// Inactive listings stay visible on the dashboard.
	assert.False(t, products[0].IsActive)
}
