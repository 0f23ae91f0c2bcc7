package repository

import (
	"context"

	"prelovin/internal/domain/entity"
	"prelovin/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a mock bound to the test's lifecycle.
func NewMockProductRepository(t mockConstructorTestingT) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) FindActive(ctx context.Context, filters repository.ProductFilters) ([]entity.ProductWithSeller, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.ProductWithSeller), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*entity.ProductWithSeller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ProductWithSeller), args.Error(1)
}

func (m *MockProductRepository) FindBySeller(ctx context.Context, sellerID string) ([]entity.Product, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, id int64, update repository.ProductUpdate) (*entity.Product, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockProductRepository) IncrementViews(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id int64, quantity int) error {
	args := m.Called(ctx, id, quantity)

	return args.Error(0)
}
